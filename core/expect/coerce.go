package expect

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotCoercible indicates a value could not be converted to the
// declared kind without information loss.
var ErrNotCoercible = errors.New("value is not coercible to declared type")

// Coerce converts a parameter value to the given kind.
//
// Conversions are validated with a decimal-string round-trip: the
// conversion succeeds only when the string form of the value survives
// the cast unchanged. This rejects casts that silently truncate or
// reinterpret, e.g. "12abc" to int, "007" to int, "1.50" to float.
func Coerce(v any, kind Kind) (any, error) {
	switch kind {
	case KindNone:
		return v, nil
	case KindString:
		return coerceString(v)
	case KindInt:
		return coerceInt(v)
	case KindFloat:
		return coerceFloat(v)
	case KindBool:
		return coerceBool(v)
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrNotCoercible, string(kind))
}

func coerceString(v any) (any, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	}
	return nil, fmt.Errorf("%w: %T to string", ErrNotCoercible, v)
}

func coerceInt(v any) (any, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case string:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil || strconv.FormatInt(n, 10) != val {
			return nil, fmt.Errorf("%w: %q to int", ErrNotCoercible, val)
		}
		return int(n), nil
	case float64:
		// Integral floats round-trip ("12" == "12"), fractional ones don't.
		n := int64(val)
		if strconv.FormatFloat(val, 'g', -1, 64) != strconv.FormatInt(n, 10) {
			return nil, fmt.Errorf("%w: %v to int", ErrNotCoercible, val)
		}
		return int(n), nil
	}
	return nil, fmt.Errorf("%w: %T to int", ErrNotCoercible, v)
}

func coerceFloat(v any) (any, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil || strconv.FormatFloat(f, 'g', -1, 64) != val {
			return nil, fmt.Errorf("%w: %q to float", ErrNotCoercible, val)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: %T to float", ErrNotCoercible, v)
}

func coerceBool(v any) (any, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("%w: %q to bool", ErrNotCoercible, val)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %T to bool", ErrNotCoercible, v)
}

// naturalKind reports the kind a stored value already has. Values with
// a matching natural kind skip coercion entirely.
func naturalKind(v any) Kind {
	switch v.(type) {
	case string:
		return KindString
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	case []any, []string:
		return KindArray
	}
	return KindNone
}

// typeName renders a stored value's type for error reporting.
func typeName(v any) string {
	if v == nil {
		return "null"
	}
	if k := naturalKind(v); k != KindNone {
		return string(k)
	}
	return fmt.Sprintf("%T", v)
}
