package parsing

import (
	"net/url"
)

// Extract text from raw input. Byte buffers are treated as text.
func textOf(data interface{}) (string, bool) {
	switch text := data.(type) {
	case string:
		return text, true
	case []byte:
		return string(text), true
	}

	return "", false
}

// Collapse a url.Values style multimap into a plain map. Single-valued keys
// are flattened to their string; repeated keys keep the full slice.
func flattenValues(values url.Values) map[string]interface{} {
	result := make(map[string]interface{}, len(values))
	for key, value := range values {
		if len(value) == 1 {
			result[key] = value[0]
		} else {
			result[key] = value
		}
	}

	return result
}
