package tests

//revive:disable:import-shadowing reason: Disabled for assert := assert.New(), which is
// the preferred method of using multiple asserts in a test.

import (
	"testing"

	"github.com/illuscio-dev/parsetools-go/mimetype"
	"github.com/illuscio-dev/parsetools-go/parseerrors"
	"github.com/illuscio-dev/parsetools-go/parsing"
	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Minimal custom parser used to prove engine extensibility.
type yamlParser struct{}

func (parser *yamlParser) Parse(
	engine parsing.ParseEngine, data interface{}, strict bool,
) (interface{}, error) {
	text, ok := data.(string)
	if !ok {
		return data, nil
	}

	result := map[string]interface{}{}
	if err := yaml.Unmarshal([]byte(text), &result); err != nil {
		return nil, parseerrors.DecodeError.New("invalid YAML", err)
	}

	return result, nil
}

type panickyParser struct{}

func (parser *panickyParser) Parse(
	engine parsing.ParseEngine, data interface{}, strict bool,
) (interface{}, error) {
	panic(xerrors.New("parse panicked"))
}

func TestCreateEngineDefault(test *testing.T) {
	assert := assert.New(test)

	engine := parsing.NewParseEngine()

	assert.NotNil(engine)
	assert.NotNil(engine.JSONHandle())

	// Test that all the defaults registered appropriately.
	for _, tag := range parsing.DefaultGuessOrder {
		assert.Equal(true, engine.HandlesParse(tag))
	}

	assert.Equal(false, engine.HandlesParse(mimetype.Tag("yaml")))
}

// The json candidate precedes the others, so a payload several parsers could
// claim resolves as JSON.
func TestGuessPrefersJson(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	result, err := engine.Guess(`{"a":"1"}`)

	assert.Nil(err)
	assert.Equal(map[string]interface{}{"a": "1"}, result)
}

func TestGuessCsv(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	result, err := engine.Guess("a,b\nc,d")

	assert.Nil(err)
	assert.Equal([][]string{{"a", "b"}, {"c", "d"}}, result)
}

func TestGuessQuery(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	result, err := engine.Guess("a=1&b=2")

	assert.Nil(err)
	assert.Equal(map[string]interface{}{"a": "1", "b": "2"}, result)
}

// Query's strict guard passes on path-looking strings, leaving them for the
// url parser.
func TestGuessUrl(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	result, err := engine.Guess("/path/to/thing")

	assert.Nil(err)

	components, ok := result.(map[string]interface{})
	if assert.True(ok) {
		assert.Equal("/path/to/thing", components["path"])
	}
}

func TestGuessFromBytes(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	result, err := engine.Guess([]byte(`{"a":"1"}`))

	assert.Nil(err)
	assert.Equal(map[string]interface{}{"a": "1"}, result)
}

// Structured data has nothing left to guess; it is returned untouched.
func TestGuessStructuredPassthrough(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	original := map[string]interface{}{"a": "1"}

	result, err := engine.Guess(original)

	assert.Nil(err)
	assert.Equal(original, result)

	result, err = engine.Guess(nil)

	assert.Nil(err)
	assert.Nil(result)
}

func TestGuessEmptyString(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	result, err := engine.Guess("")

	assert.Nil(err)
	assert.Equal(map[string]interface{}{}, result)
}

// Raw MIME strings are accepted as order entries and normalized before
// dispatch.
func TestGuessOrderNormalization(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	result, err := engine.Guess(
		`{"a":"1"}`, "application/vnd.api+json; charset=utf-8",
	)

	assert.Nil(err)
	assert.Equal(map[string]interface{}{"a": "1"}, result)
}

func TestGuessCustomOrder(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	result, err := engine.Guess("a=1", "query")

	assert.Nil(err)
	assert.Equal(map[string]interface{}{"a": "1"}, result)
}

// An order that filters down to nothing is an exhaustion, same as every
// candidate failing.
func TestGuessFilteredOrder(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	_, err := engine.Guess("a=1", "nonsense/type")

	assert.Error(err)
	parseError, ok := err.(*parseerrors.ParseError)
	if assert.True(ok) {
		assert.True(parseError.IsType(parseerrors.UnableToParseError))
	}
}

// Guess fails on exhaustion where GuessType degrades to Unknown. The
// asymmetry is deliberate: type probing is advisory, value extraction is not.
func TestGuessExhaustionAsymmetry(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	unparseable := "#not parseable by anything"

	_, err := engine.Guess(unparseable)

	assert.Error(err)
	parseError, ok := err.(*parseerrors.ParseError)
	if assert.True(ok) {
		assert.True(parseError.IsType(parseerrors.UnableToParseError))
	}

	tag, err := engine.GuessType(unparseable)

	assert.Nil(err)
	assert.Equal(mimetype.Unknown, tag)
}

func TestGuessType(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	tag, err := engine.GuessType(`{"a":"1"}`)
	assert.Nil(err)
	assert.Equal(mimetype.JSON, tag)

	tag, err = engine.GuessType("a,b\nc,d")
	assert.Nil(err)
	assert.Equal(mimetype.CSV, tag)

	tag, err = engine.GuessType("a=1&b=2")
	assert.Nil(err)
	assert.Equal(mimetype.Query, tag)

	tag, err = engine.GuessType("/path/to/thing")
	assert.Nil(err)
	assert.Equal(mimetype.URL, tag)
}

func TestGuessTypeNonString(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	tag, err := engine.GuessType(map[string]interface{}{"a": "1"})

	assert.Nil(err)
	assert.Equal(mimetype.Unknown, tag)
}

// A parser registered under a tag outside the built-in candidates is
// reachable through Parse but never through Guess.
func TestCustomParserParseOnly(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	yamlTag := mimetype.Tag("yaml")
	engine.SetParser(yamlTag, &yamlParser{})
	assert.Equal(true, engine.HandlesParse(yamlTag))

	result, err := engine.Parse(yamlTag, "name: bob", false)

	assert.Nil(err)
	assert.Equal(map[string]interface{}{"name": "bob"}, result)

	_, err = engine.Guess("name: bob", "yaml")

	assert.Error(err)
	parseError, ok := err.(*parseerrors.ParseError)
	if assert.True(ok) {
		assert.True(parseError.IsType(parseerrors.UnableToParseError))
	}
}

func TestParseUnknownTag(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	_, err := engine.Parse(mimetype.Tag("nope"), "data", false)

	assert.Error(err)
	parseError, ok := err.(*parseerrors.ParseError)
	if assert.True(ok) {
		assert.True(parseError.IsType(parseerrors.InvalidInputError))
	}
}

// A panicking parser is caught by the engine and surfaced as an error.
func TestPanickyParserRecovered(test *testing.T) {
	assert := assert.New(test)
	engine := createEngine(test)

	boomTag := mimetype.Tag("boom")
	engine.SetParser(boomTag, &panickyParser{})

	_, err := engine.Parse(boomTag, "data", false)

	assert.Error(err)
	assert.Contains(err.Error(), "panic during parse")
}
