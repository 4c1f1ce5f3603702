package parsing

import (
	"strings"

	"github.com/illuscio-dev/parsetools-go/parseerrors"
	"github.com/ugorji/go/codec"
)

// default JSON parser for GuessEngine.
type jsonParser struct{}

func (parser *jsonParser) Parse(
	engine ParseEngine, data interface{}, strict bool,
) (interface{}, error) {
	guessEngine := engine.(*GuessEngine)

	text, isText := textOf(data)
	if !isText {
		// Round-trip already-structured input through an encode so it comes
		// out of the decode below with the same shape it went in with.
		encoded := make([]byte, 0, 64)
		encoder := codec.NewEncoderBytes(&encoded, guessEngine.jsonHandle)
		if err := encoder.Encode(data); err != nil {
			return nil, parseerrors.DecodeError.New(
				"could not re-encode structured data", err,
			)
		}
		text = string(encoded)
	}

	var result interface{}
	decoder := codec.NewDecoderBytes([]byte(text), guessEngine.jsonHandle)
	if err := decoder.Decode(&result); err != nil {
		return nil, parseerrors.DecodeError.New("invalid JSON", err)
	}

	// A payload with content past the first value ("123,456") is not JSON,
	// even though the decoder stops reading without complaint.
	if rest := text[decoder.NumBytesRead():]; strings.TrimSpace(rest) != "" {
		return nil, parseerrors.DecodeError.New(
			"trailing data after JSON value", nil,
		)
	}

	return result, nil
}
