package request

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/apikit/core/expect"
)

// defaultMaxMemory bounds in-memory multipart parsing (10MB); larger
// uploads spill to disk.
const defaultMaxMemory = 10 << 20

// reservedQueryKey is a routing artifact some frontends add to the
// query string. It is hidden from bulk parameter introspection.
const reservedQueryKey = "_q"

// captureParams reads the request's parameters once, at construction.
// GET reads the query string, POST reads the body, and any other verb
// takes the union of query, body, and route parameters (route wins).
func captureParams(r *http.Request, route map[string]string) map[string]any {
	params := make(map[string]any)

	switch strings.ToUpper(r.Method) {
	case http.MethodGet:
		mergeValues(params, r.URL.Query())
	case http.MethodPost:
		mergeBody(params, r)
	default:
		mergeValues(params, r.URL.Query())
		mergeBody(params, r)
		for k, v := range route {
			params[k] = v
		}
	}
	return params
}

// mergeValues folds url.Values into the parameter mapping. Single
// values stay scalar strings; repeated keys become arrays.
func mergeValues(params map[string]any, values url.Values) {
	for key, vals := range values {
		switch len(vals) {
		case 0:
		case 1:
			params[key] = vals[0]
		default:
			arr := make([]any, len(vals))
			for i, v := range vals {
				arr[i] = v
			}
			params[key] = arr
		}
	}
}

// mergeBody folds body parameters into the mapping based on content
// type: urlencoded and multipart forms, or a top-level JSON object.
// Parse failures yield empty defaults; construction never fails.
func mergeBody(params map[string]any, r *http.Request) {
	if r.Body == nil {
		return
	}

	mediaType := r.Header.Get("Content-Type")
	if idx := strings.Index(mediaType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(mediaType[:idx])
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err == nil {
			mergeValues(params, r.PostForm)
		}
	case strings.HasPrefix(mediaType, "multipart/"):
		if _, mparams, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mparams["boundary"] == "" {
			return
		}
		if err := r.ParseMultipartForm(defaultMaxMemory); err == nil && r.MultipartForm != nil {
			mergeValues(params, url.Values(r.MultipartForm.Value))
		}
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			for k, v := range body {
				params[k] = v
			}
		}
	}
}

// Param returns the first parameter value for key rendered as a string,
// or "" when absent. It satisfies handler.Context; ParamValue preserves
// the stored value's shape.
func (c *Context) Param(key string) string {
	v, ok := c.params[key]
	if !ok {
		return ""
	}
	if arr, isArr := v.([]any); isArr {
		if len(arr) == 0 {
			return ""
		}
		v = arr[0]
	}
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// ParamValue returns the stored parameter value for key, or nil when
// absent. Array values are returned as a copy with falsy entries
// (empty string, "0", nil, false, zero) removed, preserving the order
// of the remaining elements. Scalars are returned raw; coercion only
// happens via Expecting.
func (c *Context) ParamValue(key string) any {
	v, ok := c.params[key]
	if !ok {
		return nil
	}
	arr, isArr := v.([]any)
	if !isArr {
		return v
	}
	filtered := make([]any, 0, len(arr))
	for _, item := range arr {
		if !expect.IsFalsy(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SetParam stores value under key, overwriting any previous value.
func (c *Context) SetParam(key string, value any) {
	c.params[key] = value
}

// Params returns a copy of the full parameter mapping minus the
// reserved routing key.
func (c *Context) Params() map[string]any {
	out := make(map[string]any, len(c.params))
	for k, v := range c.params {
		if k == reservedQueryKey {
			continue
		}
		out[k] = v
	}
	return out
}

// RouteParam returns the route parameter for key, or "" when the
// hosting router supplied none.
func (c *Context) RouteParam(key string) string {
	if c.routeParams == nil {
		return ""
	}
	return c.routeParams[key]
}
