package unittests

import (
	"context"

	"gooze.dev/pkg/cts/internal/domain"
	"gooze.dev/pkg/cts/internal/params"
	"gooze.dev/pkg/cts/internal/query"
	"gooze.dev/pkg/cts/internal/registry"
)

func init() {
	registry.Register(Suite, "query", querySpec)
}

var roundTripQueries = []string{
	"suite:*",
	"suite:a,*",
	"suite:a,b,*",
	"suite:a,b:*",
	"suite:a,b:c,*",
	"suite:a,b:c:*",
	"suite:a,b:c:x=1;*",
	"suite:a,b:c:x=1;y=2",
	`suite:a,b:c:x="s";y=true`,
	"suite:a,b:c:",
}

var malformedQueries = []string{
	"suite",
	"suite:a",
	"suite:a,*:b:*",
	"suite:a:b",
	"suite::*",
	"suite:a:b:x",
}

var orderings = []struct {
	a, b string
	want query.Ordering
}{
	{"suite:*", "suite:*", query.Equal},
	{"suite:*", "suite:a,*", query.StrictSuperset},
	{"suite:a,*", "suite:a,b:*", query.StrictSuperset},
	{"suite:a,b:*", "suite:a,b:c:x=1", query.StrictSuperset},
	{"suite:a,b:c:x=1;*", "suite:a,b:c:x=1;y=2", query.StrictSuperset},
	{"suite:a,b:c:x=1", "suite:a,b:c:x=2", query.Unordered},
	{"suite:a,*", "suite:b,*", query.Unordered},
	{"suite:a,b:*", "suite:a,*", query.StrictSubset},
}

func querySpec() *domain.SpecFile {
	g := domain.NewTestGroup()

	g.Test("round_trip").
		Desc("Parsing and stringifying a query is the identity on canonical strings.").
		Params(params.Options("i", indexes(len(roundTripQueries))...)).
		Fn(func(_ context.Context, t *domain.Fixture) error {
			s := roundTripQueries[int(t.Params().Number("i"))]

			q, err := query.Parse(s)
			if !t.ExpectOK(err) {
				return nil
			}

			t.Expect(q.String() == s, "%s became %s", s, q.String())

			return nil
		})

	g.Test("compare").
		Desc("Compare orders queries by subset and is antisymmetric.").
		Params(params.Options("i", indexes(len(orderings))...)).
		Fn(func(_ context.Context, t *domain.Fixture) error {
			tc := orderings[int(t.Params().Number("i"))]
			a, b := query.MustParse(tc.a), query.MustParse(tc.b)

			got := query.Compare(a, b)
			t.Expect(got == tc.want, "compare(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)

			inverse := query.Compare(b, a)
			t.Expect(inverse == tc.want.Inverse(), "compare(%s, %s) = %s, want %s", tc.b, tc.a, inverse, tc.want.Inverse())

			return nil
		})

	g.Test("malformed").
		Params(params.Options("i", indexes(len(malformedQueries))...)).
		Fn(func(_ context.Context, t *domain.Fixture) error {
			s := malformedQueries[int(t.Params().Number("i"))]

			_, err := query.Parse(s)
			t.ExpectError(err, query.ErrMalformed)

			return nil
		})

	return &domain.SpecFile{
		Description: "Unit tests for query parsing, stringifying and comparison.",
		G:           g,
	}
}

func indexes(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = i
	}

	return out
}
