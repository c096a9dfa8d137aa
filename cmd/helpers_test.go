package cmd

import (
	"context"
	"testing"

	"gooze.dev/pkg/cts/internal/domain"
	"gooze.dev/pkg/cts/internal/registry"
)

// useTestLoader swaps the package loader for one over a private registry
// holding cmdtest:math with a passing and a failing test.
func useTestLoader(t *testing.T) {
	t.Helper()

	r := registry.New()
	r.RegisterReadme("cmdtest", "", "command tests")
	r.Register("cmdtest", "math", func() *domain.SpecFile {
		g := domain.NewTestGroup()
		g.Test("add").Fn(func(_ context.Context, f *domain.Fixture) error {
			f.Expect(1+1 == 2, "1+1 != 2")
			return nil
		})
		g.Test("broken").Fn(func(_ context.Context, f *domain.Fixture) error {
			f.Fail("always broken")
			return nil
		})

		return &domain.SpecFile{Description: "math", G: g}
	})

	originalLoader := loader
	loader = domain.NewLoader(r, r)
	t.Cleanup(func() { loader = originalLoader })
}
