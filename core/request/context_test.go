package request_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/core/request"
)

func newTestContext(t *testing.T, method, target string, body string, contentType string, opts ...request.Option) *request.Context {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", contentType)
	}
	return request.New(httptest.NewRecorder(), r, opts...)
}

func TestNewCapturesMethodAndParams(t *testing.T) {
	t.Parallel()

	t.Run("get_reads_query_string", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodGet, "/search?q=golang&page=2", "", "")
		assert.Equal(t, http.MethodGet, ctx.Method())
		assert.Equal(t, "golang", ctx.Param("q"))
		assert.Equal(t, "2", ctx.Param("page"))
	})

	t.Run("get_ignores_body", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodGet, "/search?q=x",
			"hidden=1", "application/x-www-form-urlencoded")
		assert.Equal(t, "", ctx.Param("hidden"))
	})

	t.Run("post_reads_form_body", func(t *testing.T) {
		t.Parallel()

		form := url.Values{"email": {"a@b.co"}, "age": {"25"}}
		ctx := newTestContext(t, http.MethodPost, "/users",
			form.Encode(), "application/x-www-form-urlencoded")
		assert.Equal(t, "a@b.co", ctx.Param("email"))
		assert.Equal(t, "25", ctx.Param("age"))
	})

	t.Run("post_ignores_query_string", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodPost, "/users?sneaky=1",
			"email=a%40b.co", "application/x-www-form-urlencoded")
		assert.Equal(t, "", ctx.Param("sneaky"))
		assert.Equal(t, "a@b.co", ctx.Param("email"))
	})

	t.Run("post_reads_json_object_body", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodPost, "/users",
			`{"email":"a@b.co","age":25,"tags":["x","y"]}`, "application/json")
		assert.Equal(t, "a@b.co", ctx.ParamValue("email"))
		assert.Equal(t, float64(25), ctx.ParamValue("age"))
		assert.Equal(t, []any{"x", "y"}, ctx.ParamValue("tags"))
	})

	t.Run("put_unions_query_body_and_route", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodPut, "/users/42?source=query",
			"email=a%40b.co", "application/x-www-form-urlencoded",
			request.WithRouteParams(map[string]string{"id": "42"}))
		assert.Equal(t, "query", ctx.Param("source"))
		assert.Equal(t, "a@b.co", ctx.Param("email"))
		assert.Equal(t, "42", ctx.Param("id"))
		assert.Equal(t, "42", ctx.RouteParam("id"))
	})

	t.Run("malformed_body_yields_empty_params", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodPost, "/users",
			`{"broken`, "application/json")
		assert.Empty(t, ctx.Params())
	})

	t.Run("repeated_query_key_becomes_array", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodGet, "/search?tag=a&tag=b", "", "")
		assert.Equal(t, []any{"a", "b"}, ctx.ParamValue("tag"))
	})
}

func TestParamAccess(t *testing.T) {
	t.Parallel()

	t.Run("absent_param_is_nil", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodGet, "/", "", "")
		assert.Nil(t, ctx.ParamValue("nope"))
		assert.Equal(t, "", ctx.Param("nope"))
	})

	t.Run("array_read_filters_falsy_entries", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodGet, "/", "", "")
		ctx.SetParam("tags", []any{"a", "", "b", 0, nil})
		assert.Equal(t, []any{"a", "b"}, ctx.ParamValue("tags"))
	})

	t.Run("scalar_read_is_raw", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodGet, "/?n=007", "", "")
		assert.Equal(t, "007", ctx.ParamValue("n"), "no coercion at read time")
	})

	t.Run("set_param_overwrites", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodGet, "/?n=1", "", "")
		ctx.SetParam("n", "2")
		assert.Equal(t, "2", ctx.Param("n"))
	})

	t.Run("params_hides_reserved_key", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodGet, "/?_q=users/list&name=bob", "", "")
		params := ctx.Params()
		_, ok := params["_q"]
		assert.False(t, ok)
		assert.Equal(t, "bob", params["name"])
	})

	t.Run("params_returns_a_copy", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodGet, "/?n=1", "", "")
		ctx.Params()["n"] = "mutated"
		assert.Equal(t, "1", ctx.Param("n"))
	})
}

func TestHeaders(t *testing.T) {
	t.Parallel()

	t.Run("normalizes_header_names", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Token token=abc")
		r.Header.Set("X-Custom-Header", "v")
		ctx := request.New(httptest.NewRecorder(), r)

		headers := ctx.Headers()
		assert.Equal(t, "Token token=abc", headers["Authorization"])
		assert.Equal(t, "v", headers["X-Custom-Header"])
	})

	t.Run("lookup_is_case_insensitive", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "secret")
		ctx := request.New(httptest.NewRecorder(), r)

		v, ok := ctx.Header("authorization")
		require.True(t, ok)
		assert.Equal(t, "secret", v)
	})

	t.Run("absent_header_reports_not_found", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(t, http.MethodGet, "/", "", "")
		v, ok := ctx.Header("X-Missing")
		assert.False(t, ok)
		assert.Equal(t, "", v)
	})

	t.Run("concurrent_exchanges_do_not_interfere", func(t *testing.T) {
		t.Parallel()

		var wg sync.WaitGroup
		for range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				r := httptest.NewRequest(http.MethodGet, "/", nil)
				r.Header.Set("Authorization", "secret")
				r.Header.Set("X-Custom-Header", "v")
				ctx := request.New(httptest.NewRecorder(), r)

				v, ok := ctx.Header("authorization")
				assert.True(t, ok)
				assert.Equal(t, "secret", v)
				assert.Equal(t, "v", ctx.Headers()["X-Custom-Header"])
			}()
		}
		wg.Wait()
	})

	t.Run("mapping_is_cached", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-First", "1")
		ctx := request.New(httptest.NewRecorder(), r)

		first := ctx.Headers()
		r.Header.Set("X-Second", "2")
		second := ctx.Headers()
		assert.Equal(t, first, second, "headers are captured once")
		_, ok := second["X-Second"]
		assert.False(t, ok)
	})
}

func TestContextValues(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(t, http.MethodGet, "/", "", "")

	type key struct{}
	ctx.SetValue(key{}, "stored")
	assert.Equal(t, "stored", ctx.Value(key{}))
	assert.Nil(t, ctx.Value("unknown"))
}

func TestWithStartTime(t *testing.T) {
	t.Parallel()

	start := time.Now().Add(-3 * time.Second)
	ctx := newTestContext(t, http.MethodGet, "/", "", "", request.WithStartTime(start))
	assert.Equal(t, start, ctx.StartTime())
}
