package request

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizeHeaderKey converts a transport header name to the kit's
// canonical form: any CGI-style "HTTP_" prefix is stripped, underscores
// become word breaks, each word is title-cased, and words are joined
// with dashes. "HTTP_X_CUSTOM_HEADER" and "x-custom-header" both yield
// "X-Custom-Header".
//
// A cases.Caser is stateful and not safe for concurrent use, so a fresh
// one is built per call; construction is cheap.
func normalizeHeaderKey(key string) string {
	key = strings.TrimPrefix(key, "HTTP_")
	key = strings.ReplaceAll(key, "_", " ")
	key = cases.Title(language.English).String(strings.ToLower(key))
	return strings.ReplaceAll(key, " ", "-")
}

// Headers returns the request's headers keyed by normalized name. The
// mapping is computed once on first call and cached for the lifetime of
// the exchange; callers must treat it as read-only. Multi-valued
// headers keep their first value.
func (c *Context) Headers() map[string]string {
	if c.headers == nil {
		headers := make(map[string]string, len(c.r.Header))
		for key, vals := range c.r.Header {
			if len(vals) > 0 {
				headers[normalizeHeaderKey(key)] = vals[0]
			}
		}
		c.headers = headers
	}
	return c.headers
}

// Header looks up a single header by name. The name is normalized the
// same way as the mapping keys, so Header("authorization") and
// Header("Authorization") are equivalent. The second return value
// reports presence; lookups never panic.
func (c *Context) Header(name string) (string, bool) {
	v, ok := c.Headers()[normalizeHeaderKey(name)]
	return v, ok
}
