package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/cts/internal/model"
)

func named(q string, s m.Status) m.NamedResult {
	return m.NamedResult{Query: q, Result: m.Result{Status: s}}
}

func TestDiffResults(t *testing.T) {
	before := []m.NamedResult{
		named("s:a:x:", m.StatusPass),
		named("s:a:y:", m.StatusPass),
		named("s:a:z:", m.StatusSkip),
	}
	after := []m.NamedResult{
		named("s:a:z:", m.StatusSkip),
		named("s:a:y:", m.StatusFail),
		named("s:a:x:", m.StatusPass),
	}

	diff, err := DiffResults("run1", before, "run2", after)
	require.NoError(t, err)

	assert.Equal(t, "--- run1\n+++ run2\n@@ -2 +2 @@\n-s:a:y: pass\n+s:a:y: fail\n", diff)

	same, err := DiffResults("run1", before, "run2", before)
	require.NoError(t, err)
	assert.Empty(t, same)
}
