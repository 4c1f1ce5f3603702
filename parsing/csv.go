package parsing

import (
	"encoding/csv"
	"strings"

	"github.com/illuscio-dev/parsetools-go/parseerrors"
)

// default CSV parser for GuessEngine.
type csvParser struct{}

// Normalizes an already-structured sequence into rows: elements that are
// themselves sequences stay rows, scalars become single-cell rows.
func normalizeRows(elements []interface{}) [][]interface{} {
	rows := make([][]interface{}, len(elements))
	for index, element := range elements {
		switch cells := element.(type) {
		case []interface{}:
			rows[index] = cells
		case []string:
			row := make([]interface{}, len(cells))
			for cellIndex, cell := range cells {
				row[cellIndex] = cell
			}
			rows[index] = row
		default:
			rows[index] = []interface{}{element}
		}
	}

	return rows
}

func (parser *csvParser) Parse(
	engine ParseEngine, data interface{}, strict bool,
) (interface{}, error) {
	// Already-parsed input needs no decoding, only row normalization.
	switch sequence := data.(type) {
	case [][]string:
		return sequence, nil
	case [][]interface{}:
		return sequence, nil
	case []interface{}:
		return normalizeRows(sequence), nil
	case []string:
		elements := make([]interface{}, len(sequence))
		for index, element := range sequence {
			elements[index] = element
		}
		return normalizeRows(elements), nil
	}

	text, isText := textOf(data)
	if !isText {
		return nil, parseerrors.InvalidInputError.New("not a string", nil)
	}

	// A single bare word decodes as a one-cell sheet, which makes csv match
	// nearly any scalar during guessing. Strict mode refuses to decode it.
	if strict && !strings.ContainsAny(text, ",\n") {
		return nil, parseerrors.GuardRejectionError.New(
			"single word is not csv", nil,
		)
	}

	rows, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	if err != nil {
		return nil, parseerrors.DecodeError.New("invalid CSV", err)
	}

	return rows, nil
}
