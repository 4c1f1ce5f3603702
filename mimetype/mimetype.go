// Enumeration-like type for canonical content type tags.
package mimetype

import (
	"strings"
)

/*
Tag is the short canonical name for a content type, used to look up a parser.
Non default Tags can be used by wrapping a custom string:

	Tag("yaml")
*/
type Tag string

const (
	JSON  = Tag("json")
	XML   = Tag("xml")
	CSV   = Tag("csv")
	Query = Tag("query")
	URL   = Tag("url")
	// Unknown is used when the incoming string reduces to nothing.
	Unknown = Tag("unknown")
)

// Interface for object used to fetch headers such as http.Request.Header or
// http.Response.Header
type headerFetcher interface {
	Get(string) string
}

// Extract the canonical tag from a message / request header.
func FromHeader(headers headerFetcher) Tag {
	return Normalize(headers.Get("Content-Type"))
}

/*
Normalize converts a raw MIME string to its canonical tag. Ignores case and
mime parameters, and respects structured syntax suffixes. For instance, all of
the following will yield "mimetype.JSON":

• "json"

• "application/json"

• "application/JSON; charset=utf-8"

• "application/vnd.api+json"

Normalize never fails; a string that reduces to nothing yields
mimetype.Unknown.
*/
func Normalize(incoming string) Tag {
	// Drop mime parameters ("; charset=utf-8") before reducing.
	incoming = strings.SplitN(incoming, ";", 2)[0]
	incoming = strings.ToLower(incoming)

	if slashIndex := strings.LastIndex(incoming, "/"); slashIndex != -1 {
		incoming = incoming[slashIndex+1:]
	}
	if plusIndex := strings.LastIndex(incoming, "+"); plusIndex != -1 {
		incoming = incoming[plusIndex+1:]
	}

	incoming = strings.TrimSpace(incoming)
	if incoming == "" {
		return Unknown
	}

	return Tag(incoming)
}
