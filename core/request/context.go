package request

import (
	"net/http"
	"strings"
	"time"
)

// Context is the kit's default request context: it wraps one inbound
// HTTP exchange and exposes parameter access, verb guards, declarative
// validation, API key enforcement, and envelope response emission.
//
// A Context is created exactly once per exchange (see New and Wrap) and
// must not be shared across exchanges. All methods are intended for the
// single goroutine handling the request.
type Context struct {
	w http.ResponseWriter
	r *http.Request

	method      string
	params      map[string]any
	routeParams map[string]string
	headers     map[string]string
	values      map[any]any

	start       time.Time
	corsEnabled bool
	responded   bool
}

// Option customizes context construction.
type Option func(*Context)

// WithStartTime overrides the timestamp used to compute
// response_time_seconds. Defaults to the construction time.
func WithStartTime(t time.Time) Option {
	return func(c *Context) {
		c.start = t
	}
}

// WithRouteParams supplies route parameters extracted by the hosting
// router (path segments, mount points).
func WithRouteParams(params map[string]string) Option {
	return func(c *Context) {
		c.routeParams = params
	}
}

// WithCORS enables the permissive CORS header on the final response.
func WithCORS() Option {
	return func(c *Context) {
		c.corsEnabled = true
	}
}

// New constructs a request context for one exchange. Construction never
// fails: the request's method, headers, and parameters are captured
// once, and absent data yields empty defaults.
func New(w http.ResponseWriter, r *http.Request, opts ...Option) *Context {
	c := &Context{
		w:      w,
		r:      r,
		method: strings.ToUpper(r.Method),
		start:  time.Now(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.params = captureParams(r, c.routeParams)
	return c
}

// Request returns the HTTP request associated with this context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer associated with this context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Method returns the request's HTTP verb, uppercase-normalized.
func (c *Context) Method() string {
	return c.method
}

// StartTime returns the timestamp the exchange is measured from.
func (c *Context) StartTime() time.Time {
	return c.start
}

// EnableCORS turns on the allow-any-origin header for the final
// response. It has no effect once the context has responded.
func (c *Context) EnableCORS() {
	if !c.responded {
		c.corsEnabled = true
	}
}

// Responded reports whether a terminal response has been produced for
// this exchange.
func (c *Context) Responded() bool {
	return c.responded
}

// SetValue stores a request-scoped value on the context.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Deadline implements context.Context by delegating to the request's context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done implements context.Context by delegating to the request's context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err implements context.Context by delegating to the request's context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns a request-scoped value set via SetValue, falling back
// to the request's context.
func (c *Context) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.r.Context().Value(key)
}
