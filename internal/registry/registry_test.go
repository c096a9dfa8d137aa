package registry

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/cts/internal/adapter"
	"gooze.dev/pkg/cts/internal/domain"
	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/query"
)

func specWith(tests ...string) func() *domain.SpecFile {
	return func() *domain.SpecFile {
		g := domain.NewTestGroup()
		for _, name := range tests {
			g.Test(name).Fn(func(context.Context, *domain.Fixture) error { return nil })
		}

		return &domain.SpecFile{Description: "spec", G: g}
	}
}

func TestRegistry_Listing(t *testing.T) {
	r := New()
	r.RegisterReadme("webgpu", "", "WebGPU conformance")
	r.RegisterReadme("webgpu", "api", "API tests")
	r.Register("webgpu", "api/buffer", specWith("map"))
	r.Register("webgpu", "shader/validation", specWith("f16"))
	r.Register("webgpu", "api/adapter", specWith("info"))
	r.Register("unittests", "query", specWith("parse"))

	entries, err := r.Listing(context.Background(), "webgpu")
	require.NoError(t, err)

	assert.Equal(t, []m.ListingEntry{
		{File: []string{}, Readme: "WebGPU conformance"},
		{File: []string{"api"}, Readme: "API tests"},
		{File: []string{"api", "adapter"}},
		{File: []string{"api", "buffer"}},
		{File: []string{"shader", "validation"}},
	}, entries)

	assert.Equal(t, []string{"unittests", "webgpu"}, r.Suites())

	_, err = r.Listing(context.Background(), "missing")
	require.ErrorIs(t, err, adapter.ErrSuiteNotFound)
}

func TestRegistry_RegisterTwicePanics(t *testing.T) {
	r := New()
	r.Register("s", "a", specWith("t"))

	assert.Panics(t, func() { r.Register("s", "a", specWith("t")) })
}

func TestRegistry_ImportSpecFile(t *testing.T) {
	r := New()

	var builds atomic.Int32

	r.Register("s", "a/b", func() *domain.SpecFile {
		builds.Add(1)
		return specWith("t")()
	})

	var wg sync.WaitGroup

	specs := make([]*domain.SpecFile, 8)
	for i := range specs {
		wg.Add(1)

		go func() {
			defer wg.Done()

			spec, err := r.ImportSpecFile(context.Background(), "s", []string{"a", "b"})
			assert.NoError(t, err)

			specs[i] = spec
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), builds.Load())

	for _, spec := range specs {
		assert.Same(t, specs[0], spec)
	}
}

func TestRegistry_ImportSpecFileErrors(t *testing.T) {
	r := New()
	r.Register("s", "panics", func() *domain.SpecFile {
		domain.NewTestGroup().Test("bad name")
		return nil
	})
	r.Register("s", "empty", func() *domain.SpecFile { return &domain.SpecFile{} })

	tests := []struct {
		file    []string
		wantErr string
	}{
		{[]string{"missing"}, ErrNotRegistered.Error()},
		{[]string{"panics"}, "build s/panics"},
		{[]string{"empty"}, "no test group"},
	}

	for _, tt := range tests {
		t.Run(tt.file[0], func(t *testing.T) {
			_, err := r.ImportSpecFile(context.Background(), "s", tt.file)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	// Errors are memoized like successes.
	_, err := r.ImportSpecFile(context.Background(), "s", []string{"panics"})
	assert.Error(t, err)
}

func TestRegistry_WithLoader(t *testing.T) {
	r := New()
	r.RegisterReadme("s", "", "suite s")
	r.Register("s", "a", specWith("x", "y"))
	r.Register("s", "b", specWith("z"))

	leaves, err := domain.NewLoader(r, r).LoadCases(context.Background(), query.MustParse("s:*"))
	require.NoError(t, err)

	names := make([]string, len(leaves))
	for i, l := range leaves {
		names[i] = l.Query().String()
	}

	assert.Equal(t, []string{"s:a:x:", "s:a:y:", "s:b:z:"}, names)
}
