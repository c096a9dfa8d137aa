package params

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestP_NormalizesPublicValues(t *testing.T) {
	p := P("a", 1, "b", int64(2), "c", []int{1, 2}, "d", "x", "_fn", func() {})

	assert.Equal(t, 1.0, p.Number("a"))
	assert.Equal(t, 2.0, p.Number("b"))

	c, ok := p.Get("c")
	require.True(t, ok)
	assert.Equal(t, []any{1.0, 2.0}, c)
	assert.Equal(t, "x", p.Text("d"))
	assert.Equal(t, []string{"a", "b", "c", "d", "_fn"}, p.Keys())
}

func TestP_Panics(t *testing.T) {
	assert.Panics(t, func() { P("a") })
	assert.Panics(t, func() { P(1, 2) })
	assert.Panics(t, func() { P("a", map[string]int{}) })
	assert.Panics(t, func() { P("a", math.NaN()) })
	assert.Panics(t, func() { P("a", 1, "a", 2) })
}

func TestPublic(t *testing.T) {
	p := P("a", 1, "_c", 0, "b", 2)
	assert.Equal(t, []string{"a", "b"}, p.Public().Keys())
	assert.Equal(t, "a=1;b=2", p.String())
}

func TestMerge(t *testing.T) {
	t.Run("disjoint", func(t *testing.T) {
		got, err := Merge(P("a", 1), P("b", 2))
		require.NoError(t, err)
		assert.Equal(t, P("a", 1, "b", 2), got)
	})

	t.Run("collision", func(t *testing.T) {
		_, err := Merge(P("a", 1), P("b", 2, "a", 3))

		var dup *DuplicateKeyError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "a", dup.Key)
	})

	t.Run("must merge panics", func(t *testing.T) {
		assert.Panics(t, func() { MustMerge(P("_x", 1), P("_x", 2)) })
	})
}

func TestPublicEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b Params
		want bool
	}{
		{"empty", P(), P(), true},
		{"order insensitive", P("a", 1, "b", 2), P("b", 2, "a", 1), true},
		{"private ignored", P("a", 1, "_c", 0), P("a", 1, "_c", 5), true},
		{"value differs", P("a", 1), P("a", 2), false},
		{"key missing", P("a", 1, "b", 2), P("a", 1), false},
		{"deep arrays", P("a", []int{1, 2}), P("a", []float64{1, 2}), true},
		{"undefined vs missing", P("a", nil), P(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicEquals(tt.a, tt.b))
			assert.Equal(t, tt.want, PublicEquals(tt.b, tt.a))
		})
	}
}

func TestStringifyValue(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    string
		wantErr bool
	}{
		{"undefined", nil, "undefined", false},
		{"integer", 1.0, "1", false},
		{"fraction", 0.5, "0.5", false},
		{"negative", -3.0, "-3", false},
		{"string", "rgba8unorm", `"rgba8unorm"`, false},
		{"bool", true, "true", false},
		{"array", []any{1.0, "x"}, `[1,"x"]`, false},
		{"html is not escaped", "<a>", `"<a>"`, false},
		{"separator in string", "a;b", "", true},
		{"wildcard in string", "*", "", true},
		{"percent in string", "50%", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StringifyValue(tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidValue)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    any
		wantErr bool
	}{
		{"undefined", "undefined", nil, false},
		{"number", "1", 1.0, false},
		{"string", `"x"`, "x", false},
		{"bool", "false", false, false},
		{"array", "[1,2]", []any{1.0, 2.0}, false},
		{"null", "null", nil, true},
		{"object", `{"a":1}`, nil, true},
		{"trailing comma", "2,", nil, true},
		{"bare word", "abc", nil, true},
		{"equals", "1=2", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidValue)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringifyParseRoundTrip(t *testing.T) {
	values := []any{nil, 0.0, -1.5, 1e6, "", "hello world", true, []any{}, []any{1.0, []any{"a"}}}

	for _, v := range values {
		s, err := StringifyValue(v)
		require.NoError(t, err)

		back, err := ParseValue(s)
		require.NoError(t, err, s)
		assert.Equal(t, v, back, s)
	}
}
