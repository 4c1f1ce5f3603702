package parseerrors

/*
Used to define a category of failure the library can return. Each
ParseErrorType for the library should have a unique Name.

Since types are declared as pointers, to protect against accidental mutation
of the error type by other packages, the underlying fields of this struct are
private and accessed through functions. Define new error types using
NewParseErrorType()
*/
type ParseErrorType struct {
	// Unique human-readable name of the error category.
	name string
}

// Returns a parse error type definition. The default categories declared in
// this package should cover every failure the built-in parsers produce;
// custom parsers may declare their own.
func NewParseErrorType(name string) *ParseErrorType {
	return &ParseErrorType{name: name}
}

// Returns a new parse error to be returned by a parser or the dispatcher.
func (errorType *ParseErrorType) New(
	message string,
	source error,
) *ParseError {
	parseError := ParseError{
		ParseErrorType: errorType,
		Message:        message,
		sourceErr:      source,
	}
	return &parseError
}

// Unique human-readable name of the error category.
func (errorType *ParseErrorType) Name() string {
	return errorType.name
}

// Allows the error type definition itself to also be a valid error for things
// like testing error equality.
func (errorType *ParseErrorType) Error() string {
	return errorType.name
}

// Used to return a specific error instance.
type ParseError struct {
	// The category of error we are returning.
	*ParseErrorType

	// A message detailing what caused the error.
	Message string

	// If this error was returned because of another error, the original error
	// is stored here.
	sourceErr error
}

// Returns true if the underlying type of this error is the same as errorType.
func (parseError *ParseError) IsType(errorType *ParseErrorType) bool {
	return parseError.ParseErrorType.Error() == errorType.Error()
}

// Error string to conform to builtin error interface.
func (parseError *ParseError) Error() string {
	message := parseError.ParseErrorType.Error() + " - " + parseError.Message
	if parseError.sourceErr != nil {
		message += ": " + parseError.sourceErr.Error()
	}
	return message
}

// Implements xerrors.Wrapper interface. Part of how errors are being
// considered for implementation in future GO versions with more traceback
// support.
func (parseError *ParseError) Unwrap() error {
	// implements xerrors.Wrapper
	return parseError.sourceErr
}
