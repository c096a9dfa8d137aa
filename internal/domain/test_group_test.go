package domain

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/cts/internal/params"
)

func TestTestGroup_Test(t *testing.T) {
	g := NewTestGroup()

	b := g.Test("buffer,map_async")
	assert.Equal(t, []string{"buffer", "map_async"}, b.TestPath())
	assert.Equal(t, "buffer,map_async", b.Name())

	assert.Panics(t, func() { g.Test("buffer,map_async") }, "duplicate")

	for _, name := range []string{"", "a,", "a b", "a:b", "a;b", "*"} {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, func() { NewTestGroup().Test(name) })
		})
	}
}

func TestTestGroup_Validate(t *testing.T) {
	tests := []struct {
		name    string
		build   func(g *TestGroup)
		wantErr bool
	}{
		{"ok", func(g *TestGroup) { g.Test("a").Params(params.Options("x", 1, 2)).Fn(noop) }, false},
		{"no body", func(g *TestGroup) { g.Test("a") }, true},
		{"duplicate cases", func(g *TestGroup) {
			g.Test("a").Params(params.List(params.P("x", 1, "_p", 1), params.P("x", 1, "_p", 2))).Fn(noop)
		}, true},
		{"key order does not make cases distinct", func(g *TestGroup) {
			g.Test("a").Params(params.List(params.P("x", 1, "y", 2), params.P("y", 2, "x", 1))).Fn(noop)
		}, true},
		{"unimplemented", func(g *TestGroup) { g.Test("a").Unimplemented() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTestGroup()
			tt.build(g)

			err := g.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTest)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestTestBuilder_Cases(t *testing.T) {
	g := NewTestGroup()
	single := g.Test("single")
	single.Fn(noop)

	cases := slices.Collect(single.Cases())
	require.Len(t, cases, 1)
	assert.Empty(t, cases[0])

	combined := g.Test("combined").Params(params.Options("a", 1, 2).CombineOptions("b", "x", "y"))
	assert.Len(t, slices.Collect(combined.Cases()), 4)
	// Restartable.
	assert.Len(t, slices.Collect(combined.Cases()), 4)
}

func TestTestBuilder_Unimplemented(t *testing.T) {
	b := NewTestGroup().Test("later").Desc("maps buffers")
	b.Unimplemented()

	assert.Equal(t, "TODO: unimplemented. maps buffers", b.Description())

	err := b.fn(context.Background(), nil)
	assert.ErrorIs(t, err, skipUnimplemented)
}
