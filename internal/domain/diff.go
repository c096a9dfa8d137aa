package domain

import (
	"fmt"
	"slices"

	"github.com/pmezard/go-difflib/difflib"

	m "gooze.dev/pkg/cts/internal/model"
)

// DiffResults renders a unified diff of the per-case statuses of two runs.
// Lines are ordered by query so runs of different shapes line up.
func DiffResults(fromName string, from []m.NamedResult, toName string, to []m.NamedResult) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        statusLines(from),
		B:        statusLines(to),
		FromFile: fromName,
		ToFile:   toName,
		Context:  0,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff results: %w", err)
	}

	return text, nil
}

func statusLines(results []m.NamedResult) []string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = fmt.Sprintf("%s %s\n", r.Query, r.Result.Status)
	}

	slices.Sort(lines)

	return lines
}
