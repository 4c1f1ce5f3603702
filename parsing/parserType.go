package parsing

// Interface for defining a content parser.
type Parser interface {
	// To be implemented by content parser. Implementation is expected to
	// transform data into a plain structured value. The parse engine which is
	// calling Parse is made available through engine, allowing parsers to
	// access engine-level settings. When strict is true the parser should
	// apply its heuristic guards, rejecting input that only ambiguously
	// matches its format; the guess dispatcher relies on this to avoid
	// false-positive matches.
	Parse(engine ParseEngine, data interface{}, strict bool) (interface{}, error)
}
