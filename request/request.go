// Adapter that materializes *http.Request objects into ParsedRequest maps.
package request

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/illuscio-dev/parsetools-go/mimetype"
	"github.com/illuscio-dev/parsetools-go/models"
	"github.com/illuscio-dev/parsetools-go/parseerrors"
	"github.com/illuscio-dev/parsetools-go/parsing"
)

// Maximum bytes of a multipart body held in memory before spilling to disk.
// 32 MB, same as the default in the "http" package.
const MultipartMemoryLimit = 32 << 20

// Builds the candidate order for guessing a request body: the declared
// content type is tried first, with the default order backstopping it so a
// declared type outside the built-in candidates (x-www-form-urlencoded, most
// commonly) still gets its body guessed.
func guessOrder(contentType string) []string {
	order := make([]string, 0, len(parsing.DefaultGuessOrder)+1)
	if contentType != "" {
		order = append(order, contentType)
	}
	for _, tag := range parsing.DefaultGuessOrder {
		order = append(order, string(tag))
	}

	return order
}

// Collapse multipart field values the same way query values are collapsed:
// single-valued fields flatten to their string, repeated fields keep the
// slice.
func flattenForm(form map[string][]string) map[string]interface{} {
	fields := make(map[string]interface{}, len(form))
	for key, value := range form {
		if len(value) == 1 {
			fields[key] = value[0]
		} else {
			fields[key] = value
		}
	}

	return fields
}

// Parses a multipart/form-data body into its field values and, when any file
// parts were present, a files mapping.
func parseMultipart(
	req *http.Request,
) (fields map[string]interface{}, files map[string]interface{}, err error) {
	if err := req.ParseMultipartForm(MultipartMemoryLimit); err != nil {
		return nil, nil, parseerrors.DecodeError.New(
			"invalid multipart body", err,
		)
	}

	fields = flattenForm(req.MultipartForm.Value)

	if len(req.MultipartForm.File) > 0 {
		files = make(map[string]interface{}, len(req.MultipartForm.File))
		for key, headers := range req.MultipartForm.File {
			if len(headers) == 1 {
				files[key] = headers[0]
			} else {
				files[key] = headers
			}
		}
	}

	return fields, files, nil
}

/*
Parse fully materializes an inbound HTTP request into a ParsedRequest: the URL
query parameters land under "get", the decoded body under the lowercased
method, and uploaded files under "files" when a multipart request carried any.

The body is either handed to the multipart decoder (when the Content-Type
header says multipart/form-data) or buffered whole and run through the
engine's guess dispatcher seeded with the declared content type.

Parse drains the request body. It must only be invoked once per request; a
second invocation sees an empty body.
*/
func Parse(
	engine parsing.ParseEngine, req *http.Request,
) (models.ParsedRequest, error) {
	if req == nil || req.URL == nil {
		return nil, parseerrors.InvalidInputError.New("not a request", nil)
	}

	// Resolve the request line through the URL parser so the query component
	// parsed below is exactly what the standalone parsers would see.
	resolved, err := engine.Parse(mimetype.URL, req.URL.RequestURI(), false)
	if err != nil {
		return nil, err
	}

	search := ""
	if components, ok := resolved.(map[string]interface{}); ok {
		search, _ = components["search"].(string)
	}

	getResult, err := engine.Parse(mimetype.Query, search, false)
	if err != nil {
		return nil, err
	}
	getParams, _ := getResult.(map[string]interface{})

	method := strings.ToLower(req.Method)
	if method == "" {
		method = "get"
	}

	var body interface{}
	var files map[string]interface{}

	contentType := req.Header.Get("Content-Type")
	if strings.Contains(contentType, "multipart/form-data") {
		body, files, err = parseMultipart(req)
		if err != nil {
			return nil, err
		}
	} else {
		// Single suspension point: the whole body is buffered before any
		// parser sees it.
		buffer := &bytes.Buffer{}
		if req.Body != nil {
			if _, err := buffer.ReadFrom(req.Body); err != nil {
				return nil, parseerrors.DecodeError.New(
					"could not read request body", err,
				)
			}
			_ = req.Body.Close()
		}

		body, err = engine.Guess(buffer.String(), guessOrder(contentType)...)
		if err != nil {
			return nil, err
		}
	}

	parsed := models.ParsedRequest{}
	parsed[method] = body
	// Set last so the query parameters win the key when the method is
	// literally "get".
	parsed[models.GetKey] = getParams
	if files != nil {
		parsed[models.FilesKey] = files
	}

	return parsed, nil
}
