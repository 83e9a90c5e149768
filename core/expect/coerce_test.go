package expect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/core/expect"
)

func TestCoerce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		kind     expect.Kind
		expected any
		wantErr  bool
	}{
		// int
		{name: "int_from_decimal_string", value: "25", kind: expect.KindInt, expected: 25},
		{name: "int_from_zero_string", value: "0", kind: expect.KindInt, expected: 0},
		{name: "int_from_negative_string", value: "-7", kind: expect.KindInt, expected: -7},
		{name: "int_rejects_trailing_garbage", value: "12abc", kind: expect.KindInt, wantErr: true},
		{name: "int_rejects_leading_zeros", value: "007", kind: expect.KindInt, wantErr: true},
		{name: "int_rejects_plus_sign", value: "+5", kind: expect.KindInt, wantErr: true},
		{name: "int_rejects_fractional_string", value: "1.5", kind: expect.KindInt, wantErr: true},
		{name: "int_from_integral_float", value: float64(12), kind: expect.KindInt, expected: 12},
		{name: "int_rejects_fractional_float", value: 12.5, kind: expect.KindInt, wantErr: true},
		{name: "int_passthrough", value: 42, kind: expect.KindInt, expected: 42},

		// float
		{name: "float_from_string", value: "1.5", kind: expect.KindFloat, expected: 1.5},
		{name: "float_from_integer_string", value: "10", kind: expect.KindFloat, expected: 10.0},
		{name: "float_rejects_trailing_zero", value: "1.50", kind: expect.KindFloat, wantErr: true},
		{name: "float_rejects_garbage", value: "abc", kind: expect.KindFloat, wantErr: true},
		{name: "float_from_int", value: 3, kind: expect.KindFloat, expected: 3.0},

		// string
		{name: "string_passthrough", value: "hello", kind: expect.KindString, expected: "hello"},
		{name: "string_from_int", value: 42, kind: expect.KindString, expected: "42"},
		{name: "string_from_bool", value: true, kind: expect.KindString, expected: "true"},
		{name: "string_from_float", value: 1.5, kind: expect.KindString, expected: "1.5"},

		// bool
		{name: "bool_from_true", value: "true", kind: expect.KindBool, expected: true},
		{name: "bool_from_false", value: "false", kind: expect.KindBool, expected: false},
		{name: "bool_from_one", value: "1", kind: expect.KindBool, expected: true},
		{name: "bool_from_zero", value: "0", kind: expect.KindBool, expected: false},
		{name: "bool_rejects_garbage", value: "yes", kind: expect.KindBool, wantErr: true},
		{name: "bool_passthrough", value: true, kind: expect.KindBool, expected: true},

		// none
		{name: "none_passthrough", value: "anything", kind: expect.KindNone, expected: "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := expect.Coerce(tt.value, tt.kind)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, expect.ErrNotCoercible)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsFalsy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "nil", value: nil, expected: true},
		{name: "false", value: false, expected: true},
		{name: "true", value: true, expected: false},
		{name: "empty_string", value: "", expected: true},
		{name: "zero_string", value: "0", expected: true},
		{name: "false_string_is_truthy", value: "false", expected: false},
		{name: "zero_int", value: 0, expected: true},
		{name: "zero_float", value: 0.0, expected: true},
		{name: "nonzero_int", value: 7, expected: false},
		{name: "empty_array", value: []any{}, expected: true},
		{name: "nonempty_array", value: []any{"a"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, expect.IsFalsy(tt.value))
		})
	}
}
