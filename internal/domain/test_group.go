// Package domain builds test trees from queries and runs their cases.
package domain

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"gooze.dev/pkg/cts/internal/params"
	"gooze.dev/pkg/cts/internal/query"
)

// CaseFunc is the body of a test. It runs once per case, or once per
// subcase when the test declares subcases.
type CaseFunc func(ctx context.Context, t *Fixture) error

// SpecFile is what a spec source file provides to the loader.
type SpecFile struct {
	Description string
	G           *TestGroup
}

// TestGroup holds the tests of one spec file in declaration order.
type TestGroup struct {
	tests []*TestBuilder
	names map[string]bool
}

// NewTestGroup returns an empty group.
func NewTestGroup() *TestGroup {
	return &TestGroup{names: make(map[string]bool)}
}

// Test declares a test. name is a test path such as "buffer,map"; every
// segment must be a valid query part and names must be unique within the
// group. Invalid declarations panic since they are authoring errors.
func (g *TestGroup) Test(name string) *TestBuilder {
	testPath := strings.Split(name, query.PathSeparator)
	for _, part := range testPath {
		if !query.ValidPart(part) {
			panic(fmt.Sprintf("invalid test name %q: part %q must match %s", name, part, "^[a-zA-Z0-9_]+$"))
		}
	}

	if g.names[name] {
		panic(fmt.Sprintf("duplicate test name %q", name))
	}

	g.names[name] = true

	b := &TestBuilder{testPath: testPath}
	g.tests = append(g.tests, b)

	return b
}

// Tests yields the declared tests in order.
func (g *TestGroup) Tests() iter.Seq[*TestBuilder] {
	return func(yield func(*TestBuilder) bool) {
		for _, t := range g.tests {
			if !yield(t) {
				return
			}
		}
	}
}

// Validate checks that every test has a body and that no two cases of a
// test share the same public params.
func (g *TestGroup) Validate() error {
	for _, t := range g.tests {
		if t.fn == nil {
			return fmt.Errorf("test %q has no body: %w", t.Name(), ErrInvalidTest)
		}

		var seen []params.Params

		for p := range t.Cases() {
			for _, prev := range seen {
				if params.PublicEquals(prev, p) {
					return fmt.Errorf("test %q has duplicate cases {%s}: %w", t.Name(), p, ErrInvalidTest)
				}
			}

			seen = append(seen, p)
		}
	}

	return nil
}

// TestBuilder declares the description, params and body of one test.
type TestBuilder struct {
	testPath      []string
	description   string
	space         params.Space
	subcases      func(params.Params) params.Space
	fn            CaseFunc
	unimplemented bool
}

// Desc sets the description. A description mentioning TODO is counted in
// tree statistics.
func (b *TestBuilder) Desc(description string) *TestBuilder {
	b.description = strings.TrimSpace(description)
	return b
}

// Params sets the case parameter space. Without it the test has a single
// case with no params.
func (b *TestBuilder) Params(space params.Space) *TestBuilder {
	b.space = space
	return b
}

// Subcases runs each case body once per record of fn(caseParams). Subcase
// params are merged into the case params but are not part of the case query.
func (b *TestBuilder) Subcases(fn func(params.Params) params.Space) *TestBuilder {
	b.subcases = fn
	return b
}

// Fn sets the test body.
func (b *TestBuilder) Fn(fn CaseFunc) {
	b.fn = fn
}

// Unimplemented declares a placeholder test that always skips.
func (b *TestBuilder) Unimplemented() {
	b.unimplemented = true
	if !strings.Contains(b.description, "TODO") {
		b.description = strings.TrimSpace("TODO: unimplemented. " + b.description)
	}

	b.fn = func(context.Context, *Fixture) error {
		return skipUnimplemented
	}
}

// Name returns the test path joined with the path separator.
func (b *TestBuilder) Name() string {
	return strings.Join(b.testPath, query.PathSeparator)
}

// TestPath returns a copy of the test path.
func (b *TestBuilder) TestPath() []string {
	return append([]string(nil), b.testPath...)
}

// Description returns the test description.
func (b *TestBuilder) Description() string {
	return b.description
}

// Cases yields the params of every case, private params included.
func (b *TestBuilder) Cases() iter.Seq[params.Params] {
	if b.space == nil {
		return func(yield func(params.Params) bool) {
			yield(params.Params{})
		}
	}

	return b.space.All()
}

func (b *TestBuilder) subcaseParams(caseParams params.Params) iter.Seq[params.Params] {
	if b.subcases == nil {
		return nil
	}

	return b.subcases(caseParams).All()
}
