package parsing

import (
	"reflect"

	"github.com/illuscio-dev/parsetools-go/mimetype"
	"github.com/illuscio-dev/parsetools-go/parseerrors"
	"golang.org/x/xerrors"
)
import "github.com/ugorji/go/codec"

// Type helpers
type parserMapping map[mimetype.Tag]Parser

/*
DefaultGuessOrder is the candidate priority list used by Guess and GuessType
when the caller supplies no order of their own. Order is significant: the
first tag whose strict-mode parse succeeds wins, with no scoring or further
ambiguity resolution.

Guessing is confined to these tags. Entries of a caller-supplied order that
normalize to anything else are dropped, even when a parser is registered for
them -- custom parsers are reachable through Parse only.
*/
var DefaultGuessOrder = []mimetype.Tag{
	mimetype.JSON,
	mimetype.XML,
	mimetype.CSV,
	mimetype.Query,
	mimetype.URL,
}

/*
ParseEngine details the contract for a parse engine. The goal of the parse
engine is to allow a common parsing methodology for any supported content
type, plus a guessing dispatch for payloads whose type the sender never
declared.
*/
type ParseEngine interface {
	// Registers a parser for a given tag.
	SetParser(tag mimetype.Tag, parser Parser)

	// Returns true if the engine has a registered parser for the tag.
	HandlesParse(tag mimetype.Tag) bool

	// Parse data with the parser registered for tag. Strict mode enables the
	// parser's heuristic guards.
	Parse(tag mimetype.Tag, data interface{}, strict bool) (interface{}, error)

	// Try each candidate tag of order in sequence with strict parsing,
	// resolving with the first parser's result that succeeds.
	Guess(data interface{}, order ...string) (interface{}, error)

	// As Guess, but resolves with the winning tag instead of the parsed
	// value. Exhaustion degrades to mimetype.Unknown rather than an error.
	GuessType(data interface{}, order ...string) (mimetype.Tag, error)
}

/*
GuessEngine is the default implementation of the ParseEngine interface.
Implementation is done through an Interface so that the Engine can be extended
through type wrapping.

Instantiation

Use NewParseEngine() to create a new GuessEngine.

Default Tags

• json

• xml

• csv

• query

• url

Strict Mode

Every built-in parser accepts a strict flag. Strict mode exists for the guess
dispatcher: it turns on heuristic rejections (a single bare word is not csv, a
query string never contains '#', a url starts with '/') that keep ambiguous
input from being claimed by the wrong parser. Non-strict parsing applies no
such guards.

Guessing

Guess normalizes the supplied order through mimetype.Normalize, filters it to
the built-in candidate tags, and tries each remaining parser in strict mode,
discarding candidate failures. Only full exhaustion is reported. Candidates
are never tried in parallel; first success in list order wins.

Panics

If a parser panics during execution, that panic is caught and returned as an
error.
*/
type GuessEngine struct {
	// Tag:Parser mapping
	parsers parserMapping

	// JSON handle for the default JSON parser
	jsonHandle *codec.JsonHandle

	// Engine to pass to Parser.Parse() methods.
	passedEngine ParseEngine
}

// Change the engine passed into Parser.Parse()
func (engine *GuessEngine) SetPassedEngine(newEngine ParseEngine) {
	engine.passedEngine = newEngine
}

// Register a parser for a given tag
func (engine *GuessEngine) SetParser(tag mimetype.Tag, parser Parser) {
	engine.parsers[tag] = parser
}

// Whether the GuessEngine has a registered parser for tag.
func (engine *GuessEngine) HandlesParse(tag mimetype.Tag) bool {
	_, ok := engine.parsers[tag]
	return ok
}

// Returns the internal codec.JsonHandle used by the json parser.
func (engine *GuessEngine) JSONHandle() *codec.JsonHandle {
	return engine.jsonHandle
}

// Select what engine to pass into the parser in case we are extending the
// engine type.
func (engine *GuessEngine) getEngine() (passEngine ParseEngine) {
	if engine.passedEngine != nil {
		passEngine = engine.passedEngine
	} else {
		passEngine = engine
	}

	return passEngine
}

// Uses a parser while catching panics to return as errors
func (engine *GuessEngine) safeParse(
	parser Parser, data interface{}, strict bool,
) (result interface{}, err error) {
	defer func() {
		recovered := recover()
		if recovered != nil {
			err = xerrors.Errorf("panic during parse: %w", recovered)
		}
	}()

	passEngine := engine.getEngine()
	result, err = parser.Parse(passEngine, data, strict)

	return result, err
}

func (engine *GuessEngine) Parse(
	tag mimetype.Tag, data interface{}, strict bool,
) (interface{}, error) {
	parser, ok := engine.parsers[tag]
	if !ok {
		return nil, parseerrors.InvalidInputError.New(
			"no parser for "+string(tag), nil,
		)
	}

	return engine.safeParse(parser, data, strict)
}

// Reports whether tag is one of the built-in candidates guessing is confined
// to.
func guessableTag(tag mimetype.Tag) bool {
	for _, known := range DefaultGuessOrder {
		if tag == known {
			return true
		}
	}
	return false
}

// Normalizes a caller-supplied order and filters it down to built-in
// candidate tags with a registered parser. An empty order means the default
// order.
func (engine *GuessEngine) guessCandidates(order []string) []mimetype.Tag {
	tags := DefaultGuessOrder
	if len(order) > 0 {
		tags = make([]mimetype.Tag, 0, len(order))
		for _, entry := range order {
			tags = append(tags, mimetype.Normalize(entry))
		}
	}

	candidates := make([]mimetype.Tag, 0, len(tags))
	for _, tag := range tags {
		if !guessableTag(tag) || !engine.HandlesParse(tag) {
			continue
		}
		candidates = append(candidates, tag)
	}

	return candidates
}

func (engine *GuessEngine) Guess(
	data interface{}, order ...string,
) (interface{}, error) {
	text, isText := textOf(data)
	if !isText {
		// Already structured; hand it back untouched.
		return data, nil
	}
	if text == "" {
		// Nothing to decide between; no parser is attempted.
		return map[string]interface{}{}, nil
	}

	for _, tag := range engine.guessCandidates(order) {
		result, err := engine.safeParse(engine.parsers[tag], text, true)
		if err == nil {
			return result, nil
		}
		// A failed candidate's error is discarded and the next candidate
		// gets its shot.
	}

	return nil, parseerrors.UnableToParseError.New("unable to parse", nil)
}

func (engine *GuessEngine) GuessType(
	data interface{}, order ...string,
) (mimetype.Tag, error) {
	text, isText := textOf(data)
	if !isText || text == "" {
		return mimetype.Unknown, nil
	}

	for _, tag := range engine.guessCandidates(order) {
		_, err := engine.safeParse(engine.parsers[tag], text, true)
		if err == nil {
			return tag, nil
		}
	}

	// Type probing is advisory, so exhaustion degrades to Unknown where
	// Guess would fail outright.
	return mimetype.Unknown, nil
}

func NewParseEngine() *GuessEngine {
	// Create the json handle. Decoded objects must always land as string
	// keyed maps regardless of handle defaults.
	jsonHandle := &codec.JsonHandle{}
	jsonHandle.MapType = reflect.TypeOf(map[string]interface{}(nil))

	// Create the parse engine.
	engine := &GuessEngine{
		parsers:    make(parserMapping),
		jsonHandle: jsonHandle,
	}

	// Add the default parsers.
	engine.SetParser(mimetype.JSON, &jsonParser{})
	engine.SetParser(mimetype.XML, &xmlParser{})
	engine.SetParser(mimetype.CSV, &csvParser{})
	engine.SetParser(mimetype.Query, &queryParser{})
	engine.SetParser(mimetype.URL, &urlParser{})

	return engine
}
