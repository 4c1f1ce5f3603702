// Normalize heterogeneous inbound data into plain in-memory structures.
/*
Parsetool's goal is to make a single interface specification for turning raw
inbound payloads of any supported content type into plain maps and slices, so
that content can be decoded dynamically based on message headers or guessed
outright when the sender declared nothing useful.

Specific objectives

1. Callers hand over raw text (or an already-structured value) and get back a
plain structure without caring which format the sender picked.

2. Data of unknown type can be guessed: an ordered candidate list of parsers
is tried in strict mode until one accepts the payload.

3. Already-parsed values fed back into a parser pass through unchanged, so
pipelines can re-run parsing without tracking what was already decoded.

4. Developers can extend an engine with their own parsers for additional
content types by implementing the Parser interface.
*/
package parsing
