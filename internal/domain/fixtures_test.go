package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gooze.dev/pkg/cts/internal/adapter"
	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/params"
)

func noop(context.Context, *Fixture) error { return nil }

var testListings = map[string][]m.ListingEntry{
	"suite1": {
		{File: []string{}, Readme: "desc 1a"},
		{File: []string{"foo"}},
		{File: []string{"bar"}, Readme: "desc 1c"},
		{File: []string{"bar", "buzz", "buzz"}},
		{File: []string{"baz"}},
	},
	"suite2": {
		{File: []string{}, Readme: "desc 2a"},
		{File: []string{"foof"}},
	},
	"suite3": {
		{File: []string{"ok"}},
		{File: []string{"missing"}},
		{File: []string{"todo"}},
	},
}

func testSpecs() map[string]*SpecFile {
	foo := NewTestGroup()
	foo.Test("hello").Fn(noop)
	foo.Test("bonjour").Fn(noop)
	foo.Test("hola").Fn(noop)

	buzz := NewTestGroup()
	buzz.Test("zap").Fn(noop)

	baz := NewTestGroup()
	baz.Test("wye").Params(params.List(params.P(), params.P("x", 1))).Fn(noop)
	baz.Test("zed").Params(params.List(
		params.P("a", 1, "b", 2, "_c", 0),
		params.P("b", 3, "a", 1, "_c", 0),
	)).Fn(noop)

	foof := NewTestGroup()
	foof.Test("blah").Fn(func(_ context.Context, t *Fixture) error {
		t.Debug("OK")
		return nil
	})
	foof.Test("bleh").Params(params.List(params.P("a", 1))).Fn(func(_ context.Context, t *Fixture) error {
		t.Debug("OK")
		t.Debug("OK")

		return nil
	})
	foof.Test("bluh,a").Fn(func(_ context.Context, t *Fixture) error {
		t.Fail("bye")
		return nil
	})

	ok := NewTestGroup()
	ok.Test("fine").Desc("TODO: more coverage").Fn(noop)

	return map[string]*SpecFile{
		"suite1/foo":           {Description: "desc 1b", G: foo},
		"suite1/bar/buzz/buzz": {Description: "desc 1d", G: buzz},
		"suite1/baz":           {Description: "desc 1e", G: baz},
		"suite2/foof":          {Description: "desc 2b", G: foof},
		"suite3/ok":            {Description: "fine", G: ok},
		"suite3/todo":          {Description: "TODO: write tests", G: NewTestGroup()},
	}
}

// fakeSource serves testListings and testSpecs, recording every import.
type fakeSource struct {
	mu      sync.Mutex
	specs   map[string]*SpecFile
	imports []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{specs: testSpecs()}
}

func (f *fakeSource) Listing(_ context.Context, suite string) ([]m.ListingEntry, error) {
	entries, ok := testListings[suite]
	if !ok {
		return nil, fmt.Errorf("%w: %s", adapter.ErrSuiteNotFound, suite)
	}

	return entries, nil
}

func (f *fakeSource) ImportSpecFile(_ context.Context, suite string, file []string) (*SpecFile, error) {
	key := suite + "/" + strings.Join(file, "/")

	f.mu.Lock()
	defer f.mu.Unlock()

	f.imports = append(f.imports, key)

	spec, ok := f.specs[key]
	if !ok {
		return nil, errors.New("[test] mock file " + key + " does not exist")
	}

	return spec, nil
}

func (f *fakeSource) importedFiles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.imports...)
}

func newTestLoader() (Loader, *fakeSource) {
	src := newFakeSource()
	return NewLoader(src, src), src
}
