package unittests

import (
	"context"
	"errors"

	"gooze.dev/pkg/cts/internal/domain"
	"gooze.dev/pkg/cts/internal/params"
	"gooze.dev/pkg/cts/internal/registry"
)

func init() {
	registry.Register(Suite, "params", paramsSpec)
}

func paramsSpec() *domain.SpecFile {
	g := domain.NewTestGroup()

	g.Test("combine").
		Desc("Combining spaces yields the cartesian product in declaration order.").
		Params(params.Options("x", 1, 2, 3).CombineOptions("y", 1, 2)).
		Fn(func(_ context.Context, t *domain.Fixture) error {
			space := params.Options("a", 1, 2).CombineOptions("b", "p", "q", "r")

			t.Expect(params.Count(space) == 6, "got %d records, want 6", params.Count(space))
			t.Expect(params.Count(space) == params.Count(space), "space is not re-iterable")

			first := params.Collect(space)[0]
			t.Expect(first.Number("a") == 1 && first.Text("b") == "p", "first record is %s", first)

			return nil
		})

	g.Test("filter").
		Params(params.Bool("flag")).
		Fn(func(_ context.Context, t *domain.Fixture) error {
			keepEven := params.Options("n", 0, 1, 2, 3, 4).Filter(func(p params.Params) bool {
				return int(p.Number("n"))%2 == 0
			})
			dropEven := params.Options("n", 0, 1, 2, 3, 4).Unless(func(p params.Params) bool {
				return int(p.Number("n"))%2 == 0
			})

			t.Expect(params.Count(keepEven) == 3, "filter kept %d records, want 3", params.Count(keepEven))
			t.Expect(params.Count(dropEven) == 2, "unless kept %d records, want 2", params.Count(dropEven))

			return nil
		})

	g.Test("merge_collision").Fn(func(_ context.Context, t *domain.Fixture) error {
		_, err := params.Merge(params.P("a", 1), params.P("a", 2))

		var dup *params.DuplicateKeyError
		t.Expect(errors.As(err, &dup), "got %v, want a DuplicateKeyError", err)

		return nil
	})

	g.Test("subcases").
		Params(params.Options("x", 1, 2)).
		Subcases(func(params.Params) params.Space { return params.Options("y", "a", "b") }).
		Fn(func(_ context.Context, t *domain.Fixture) error {
			p := t.Params()
			t.Expect(p.Number("x") > 0, "missing case param x in %s", p)
			t.Expect(p.Text("y") != "", "missing subcase param y in %s", p)

			return nil
		})

	g.Test("expand").Unimplemented()

	return &domain.SpecFile{
		Description: "Unit tests for parameter space building.",
		G:           g,
	}
}
