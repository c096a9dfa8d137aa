package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/cts/internal/params"
)

func TestParse_Levels(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		level  Level
		suite  string
		file   []string
		test   []string
		params params.Params
	}{
		{"suite root", "webgpu:*", LevelMultiFile, "webgpu", nil, nil, nil},
		{"file prefix", "webgpu:a,b,*", LevelMultiFile, "webgpu", []string{"a", "b"}, nil, nil},
		{"file", "webgpu:a,b:*", LevelMultiTest, "webgpu", []string{"a", "b"}, nil, nil},
		{"test prefix", "webgpu:a,b:c,*", LevelMultiTest, "webgpu", []string{"a", "b"}, []string{"c"}, nil},
		{"test", "webgpu:a,b:c:*", LevelMultiCase, "webgpu", []string{"a", "b"}, []string{"c"}, nil},
		{"case prefix", "webgpu:a,b:c:k=1;*", LevelMultiCase, "webgpu", []string{"a", "b"}, []string{"c"}, params.P("k", 1)},
		{"legacy case wildcard", "webgpu:a,b:c:k=1,*", LevelMultiCase, "webgpu", []string{"a", "b"}, []string{"c"}, params.P("k", 1)},
		{"single case", "webgpu:a,b:c:k=1", LevelSingleCase, "webgpu", []string{"a", "b"}, []string{"c"}, params.P("k", 1)},
		{"single case without params", "webgpu:a:c:", LevelSingleCase, "webgpu", []string{"a"}, []string{"c"}, nil},
		{"string value", `webgpu:a:c:format="rgba8unorm"`, LevelSingleCase, "webgpu", []string{"a"}, []string{"c"}, params.P("format", "rgba8unorm")},
		{"undefined value", "webgpu:a:c:x=undefined;*", LevelMultiCase, "webgpu", []string{"a"}, []string{"c"}, params.P("x", nil)},
		{"array value", "webgpu:a:c:x=[1,2]", LevelSingleCase, "webgpu", []string{"a"}, []string{"c"}, params.P("x", []int{1, 2})},
		{"percent encoded", "webgpu:a:c:s=%22x%22", LevelSingleCase, "webgpu", []string{"a"}, []string{"c"}, params.P("s", "x")},
		{"colon inside params", `webgpu:a:c:s="x:y"`, LevelSingleCase, "webgpu", []string{"a"}, []string{"c"}, params.P("s", "x:y")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Parse(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.level, q.Level())
			assert.Equal(t, tt.suite, q.Suite())
			assert.Equal(t, len(tt.file), len(q.File()))
			if len(tt.file) > 0 {
				assert.Equal(t, tt.file, q.File())
			}
			if len(tt.test) > 0 {
				assert.Equal(t, tt.test, q.Test())
			}
			assert.True(t, params.PublicEquals(tt.params, q.Params()), "params %v", q.Params())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	inputs := []string{
		"",
		"suite1",
		"suite1:",
		"suite1:foo",
		"suite1:f*",
		"suite1:*,foo",
		":*",
		"su-ite:*",
		"suite1::",
		"suite1:bar:",
		"suite1:bar,:",
		"suite1::*",
		"suite1:bar,:*",
		"suite1:foo,*:*",
		"suite1:foo::",
		"suite1:bar:zed,:",
		"suite1:foo:h*",
		"suite1:foo::*",
		"suite1:baz::*",
		"suite1:baz:zed,:*",
		"suite1:baz:zed:*:*",
		"suite1:baz:zed:a=1;b=2*",
		"suite1:baz:zed:a=1;b=2;",
		"suite1:baz:zed:a=1;b=2,",
		"suite1:baz:zed:b=2*",
		"suite1:baz:zed:b=2;a=1;_c=0",
		"suite1:baz:zed:a",
		"suite1:baz:zed:a-b=1",
		"suite1:baz:zed:a=null",
		"suite1:baz:zed:a={}",
		"suite1:baz:zed:a=1;a=2",
		"suite1:baz:zed:a=%",
		"suite1:baz:zed:a=%zz",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Contains(t, err.Error(), "on: "+input)
		})
	}
}

func TestParse_ErrorMessages(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "suite1", want: "malformed query: need at least suite separator"},
		{input: "", want: "malformed query: need at least suite separator"},
		{input: "suite1:f*", want: "wildcard * must be complete last part of a path"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_Hints(t *testing.T) {
	_, err := Parse("webgpu:a,b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "append :*")

	_, err = Parse("webgpu:a,b:c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "case-level query (append :*)")
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
	assert.NotPanics(t, func() { MustParse("webgpu:*") })
}
