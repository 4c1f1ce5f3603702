package parseerrors

// Input has the wrong shape for the operation (nil request, unregistered
// tag, value that is neither text nor structured data).
var InvalidInputError = NewParseErrorType(
	"InvalidInputError",
)

// A strict-mode heuristic guard rejected the input before decoding was
// attempted (single-word CSV, fragment marker in a query string, missing
// leading slash on a URL).
var GuardRejectionError = NewParseErrorType(
	"GuardRejectionError",
)

// The underlying decoder raised an error or produced an invalid / empty
// result.
var DecodeError = NewParseErrorType(
	"DecodeError",
)

// Every candidate in the guess order failed, or the order filtered down to
// nothing.
var UnableToParseError = NewParseErrorType(
	"UnableToParseError",
)

// List of default ParseError definitions.
var ErrorList = [4]*ParseErrorType{
	InvalidInputError,
	GuardRejectionError,
	DecodeError,
	UnableToParseError,
}
