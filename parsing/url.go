package parsing

import (
	"net/url"
	"strings"

	"github.com/illuscio-dev/parsetools-go/parseerrors"
)

// default URL parser for GuessEngine.
type urlParser struct{}

func (parser *urlParser) Parse(
	engine ParseEngine, data interface{}, strict bool,
) (interface{}, error) {
	text, isText := textOf(data)
	if !isText {
		if data != nil {
			// Already structured; hand it back untouched.
			return data, nil
		}
		text = ""
	}

	if text == "" {
		text = "/"
	}

	if strict && !strings.HasPrefix(text, "/") {
		return nil, parseerrors.GuardRejectionError.New(
			"url missing leading slash", nil,
		)
	}

	parsed, err := url.Parse(text)
	if err != nil {
		return nil, parseerrors.DecodeError.New("invalid URL", err)
	}

	query, err := url.ParseQuery(parsed.RawQuery)
	if err != nil {
		return nil, parseerrors.DecodeError.New("invalid query component", err)
	}

	search := ""
	if parsed.RawQuery != "" {
		search = "?" + parsed.RawQuery
	}

	components := map[string]interface{}{
		"scheme":   parsed.Scheme,
		"host":     parsed.Host,
		"hostname": parsed.Hostname(),
		"port":     parsed.Port(),
		"path":     parsed.Path,
		"search":   search,
		"query":    flattenValues(query),
		"fragment": parsed.Fragment,
		"href":     parsed.String(),
	}

	return components, nil
}
