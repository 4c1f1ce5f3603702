package parsing

import (
	"net/url"
	"strings"

	"github.com/illuscio-dev/parsetools-go/parseerrors"
)

// default query-string parser for GuessEngine.
type queryParser struct{}

func (parser *queryParser) Parse(
	engine ParseEngine, data interface{}, strict bool,
) (interface{}, error) {
	// Nil resolves to an empty map whether or not strict mode is requested.
	// Callers depend on this shortcut, so it is applied before any guard.
	if data == nil {
		return map[string]interface{}{}, nil
	}

	text, isText := textOf(data)
	if !isText {
		// Already structured; hand it back untouched.
		return data, nil
	}

	// A fragment marker is invalid in a bare query string, strict or not.
	if strings.Contains(text, "#") {
		return nil, parseerrors.GuardRejectionError.New(
			"fragment marker in query string", nil,
		)
	}

	// A leading slash means a path, not a query.
	if strict && strings.HasPrefix(text, "/") {
		return nil, parseerrors.GuardRejectionError.New(
			"query string starts with a slash", nil,
		)
	}

	text = strings.TrimPrefix(text, "?")

	values, err := url.ParseQuery(text)
	if err != nil {
		return nil, parseerrors.DecodeError.New("invalid query string", err)
	}

	return flattenValues(values), nil
}
