package parsing

import (
	"github.com/clbanning/mxj/v2"
	"github.com/illuscio-dev/parsetools-go/parseerrors"
)

// default XML parser for GuessEngine.
type xmlParser struct{}

func (parser *xmlParser) Parse(
	engine ParseEngine, data interface{}, strict bool,
) (interface{}, error) {
	text, isText := textOf(data)
	if !isText {
		// Already structured; hand it back untouched.
		return data, nil
	}

	decoded, err := mxj.NewMapXml([]byte(text))
	if err != nil {
		return nil, parseerrors.DecodeError.New("invalid XML", err)
	}

	// The decoder yields an empty document for some degenerate input rather
	// than erroring. Treat that as a failure too.
	if len(decoded) == 0 {
		return nil, parseerrors.DecodeError.New("unable to parse XML", nil)
	}

	return map[string]interface{}(decoded), nil
}
