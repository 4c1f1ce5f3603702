/*
Parsetools error model definition and default parse errors.

Every failure a parser or the guess dispatcher can surface falls into a small
set of categories, and callers often need to branch on the category rather
than the message (a strict-mode guard rejection is routine during guessing,
a decode error usually is not).

This package defines two main objects for handling errors:

• ParseErrorType defines a category of parse failure.

• ParseError is an instance of a failure which contains a ParseErrorType.

Default ParseErrorType Variables

Pointers to the ParseErrorType definitions for each failure category are
included in this package.
*/
package parseerrors
