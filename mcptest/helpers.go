package mcptest

import (
	"github.com/spf13/cast"
)

// Helpers for navigating decoded responses in assertions. Responses are
// plain map[string]any trees; these coerce the interesting parts without
// type-assertion boilerplate at every call site.

// Result extracts the result object of a response.
func Result(response map[string]any) map[string]any {
	return cast.ToStringMap(response["result"])
}

// ErrorObject extracts the error object of a response, nil-safe.
func ErrorObject(response map[string]any) map[string]any {
	return cast.ToStringMap(response["error"])
}

// Items extracts a named list of objects from a result, e.g. "tools",
// "contents" or "messages".
func Items(result map[string]any, key string) []map[string]any {
	raw := cast.ToSlice(result[key])
	items := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		items = append(items, cast.ToStringMap(item))
	}
	return items
}

// Text extracts the text field of a content or message-content object.
func Text(obj map[string]any) string {
	return cast.ToString(obj["text"])
}
