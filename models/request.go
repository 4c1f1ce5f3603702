package models

import (
	"strings"
)

// Key under which URL query parameters are always stored.
const GetKey = "get"

// Key under which uploaded files are stored when a request carried any.
const FilesKey = "files"

/*
ParsedRequest is the fully materialized result of parsing an inbound request:
URL query parameters under "get", the parsed body under the lowercased HTTP
method, and uploaded files under "files" when any were present.

A ParsedRequest holds exactly the keys {get, <method>, [files]}. For a GET
request the body key and the query key coincide; the query parameters win.
*/
type ParsedRequest map[string]interface{}

// URL query parameters of the request.
func (parsed ParsedRequest) Query() map[string]interface{} {
	query, _ := parsed[GetKey].(map[string]interface{})
	return query
}

// Parsed body for the given HTTP method. Method casing is ignored.
func (parsed ParsedRequest) Body(method string) interface{} {
	return parsed[strings.ToLower(method)]
}

// Uploaded files keyed by form field, or nil when the request carried none.
func (parsed ParsedRequest) Files() map[string]interface{} {
	files, _ := parsed[FilesKey].(map[string]interface{})
	return files
}
