package expect

import (
	"encoding/json"
	"maps"
)

// TypeError describes a parameter that was present but failed coercion
// to its declared type. The JSON field names match the wire format of
// the 422 validation response.
type TypeError struct {
	Param     string `json:"param"`
	Expecting string `json:"expecting"`
	Received  string `json:"received"`
	Value     any    `json:"value"`
}

// Result holds the outcome of applying a batch of expectation specs.
// Errors accumulate across the whole batch so the client sees every
// validation problem in one round trip.
type Result struct {
	// Params is the validated and coerced parameter mapping.
	// Only meaningful when Failed reports false.
	Params map[string]any
	// Missing lists required parameters that were absent, keyed by
	// their raw spec string.
	Missing []string
	// Invalid lists parameters that failed type coercion.
	Invalid []TypeError
}

// Failed reports whether any spec in the batch produced an error.
func (r Result) Failed() bool {
	return len(r.Missing) > 0 || len(r.Invalid) > 0
}

// Apply processes each spec independently against a copy of params and
// returns the accumulated result. The input mapping is never mutated.
func Apply(params map[string]any, specs ...string) Result {
	out := make(map[string]any, len(params))
	maps.Copy(out, params)
	res := Result{Params: out}

	for _, raw := range specs {
		applySpec(&res, ParseSpec(raw))
	}
	return res
}

func applySpec(res *Result, sp Spec) {
	kind, knownKind := sp.Kind()
	v, present := res.Params[sp.Name]

	// Client quirk: some clients send the stringified boolean "false"
	// to mean "not provided". For optional non-string typed specs that
	// literal converts to null instead of failing coercion.
	if sp.Optional && present && sp.Type != "" && kind != KindString {
		if s, ok := v.(string); ok && s == "false" {
			deleteRawKey(res.Params, sp)
			res.Params[sp.Name] = nil
			return
		}
	}

	// A parameter is missing when absent, or when falsy, except that
	// boolean false/"0" and integer zero are legitimate values.
	missing := !present ||
		(IsFalsy(v) && kind != KindBool && !(kind == KindInt && isZero(v)))

	if missing {
		if !sp.Optional {
			res.Missing = append(res.Missing, sp.Raw)
			return
		}
		deleteRawKey(res.Params, sp)
		switch {
		case present:
			res.Params[sp.Name] = v
		case sp.HasDefault:
			res.Params[sp.Name] = coerceDefault(sp.Default, kind)
		default:
			res.Params[sp.Name] = nil
		}
		return
	}

	if sp.Type == "" {
		return
	}

	if kind == KindArray {
		applyArray(res, sp, v)
		return
	}

	if !knownKind {
		res.Invalid = append(res.Invalid, TypeError{
			Param:     sp.Name,
			Expecting: sp.Type,
			Received:  typeName(v),
			Value:     v,
		})
		return
	}

	if naturalKind(v) == kind {
		return
	}

	coerced, err := Coerce(v, kind)
	if err != nil {
		// Failed coercion never mutates the stored value.
		res.Invalid = append(res.Invalid, TypeError{
			Param:     sp.Name,
			Expecting: sp.Type,
			Received:  typeName(v),
			Value:     v,
		})
		return
	}
	res.Params[sp.Name] = coerced
}

// applyArray handles the array kind: non-array values are parsed as
// JSON, and an empty array counts as a missing parameter.
func applyArray(res *Result, sp Spec, v any) {
	list, ok := v.([]any)
	if !ok {
		s, isStr := v.(string)
		if !isStr {
			res.Invalid = append(res.Invalid, TypeError{
				Param:     sp.Name,
				Expecting: sp.Type,
				Received:  typeName(v),
				Value:     v,
			})
			return
		}
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err != nil {
			res.Invalid = append(res.Invalid, TypeError{
				Param:     sp.Name,
				Expecting: sp.Type,
				Received:  typeName(v),
				Value:     v,
			})
			return
		}
		list, ok = parsed.([]any)
		if !ok {
			res.Invalid = append(res.Invalid, TypeError{
				Param:     sp.Name,
				Expecting: sp.Type,
				Received:  typeName(parsed),
				Value:     v,
			})
			return
		}
	}

	if len(list) == 0 {
		res.Missing = append(res.Missing, sp.Raw)
		return
	}
	res.Params[sp.Name] = list
}

// coerceDefault converts a declared default to the spec's kind.
// Defaults are author-supplied, so a default that does not survive the
// round-trip check is kept as its raw string rather than reported as a
// client error.
func coerceDefault(def string, kind Kind) any {
	coerced, err := Coerce(def, kind)
	if err != nil {
		return def
	}
	return coerced
}

// deleteRawKey removes the full spec string from the mapping when it
// differs from the bare name. Clients occasionally echo the declaration
// itself as a key; it must never leak into validated params.
func deleteRawKey(params map[string]any, sp Spec) {
	if sp.Raw != sp.Name {
		delete(params, sp.Raw)
	}
}

// IsFalsy reports whether a parameter value is falsy in the loose sense
// HTTP parameters use: nil, false, empty string, "0", numeric zero, and
// empty arrays all count.
func IsFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == "" || val == "0"
	case int:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	}
	return false
}

// isZero reports whether a falsy value is specifically the number zero.
// Integer-typed specs accept zero as a legitimate value.
func isZero(v any) bool {
	switch val := v.(type) {
	case string:
		return val == "0"
	case int:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0
	}
	return false
}
