package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/cts/internal/adapter"
	adaptermocks "gooze.dev/pkg/cts/internal/adapter/mocks"
	controllermocks "gooze.dev/pkg/cts/internal/controller/mocks"
	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/query"
)

func expectUILifecycle(ui *controllermocks.MockUI) {
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()
}

func TestWorkflow_Run(t *testing.T) {
	loader, _ := newTestLoader()
	ui := controllermocks.NewMockUI(t)
	results := adaptermocks.NewMockResultStore(t)

	expectUILifecycle(ui)
	ui.EXPECT().DisplayStartingCase(mock.Anything, mock.Anything).Return().Times(8)
	ui.EXPECT().DisplayCompletedCase(mock.Anything, mock.Anything).Return().Times(8)
	ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, 2, 0, 1, 8).Return().Once()
	ui.EXPECT().
		DisplaySummary(mock.Anything, mock.MatchedBy(func(r []m.NamedResult) bool { return len(r) == 8 })).
		Return().
		Once()
	ui.EXPECT().DisplayRunSaved(mock.Anything, "run-1").Return().Once()
	ui.EXPECT().Wait(mock.Anything).Return().Once()

	results.EXPECT().
		SaveRun(mock.Anything, mock.AnythingOfType("time.Time"), []string{"suite1:*"}, mock.Anything).
		Return("run-1", nil).
		Once()

	wf := NewWorkflow(loader, adaptermocks.NewMockExpectationStore(t), results, ui)

	summary, err := wf.Run(context.Background(), RunArgs{Queries: queries("suite1:*"), Parallel: 2})
	require.NoError(t, err)
	assert.Equal(t, m.Summary{Total: 8, Passed: 8}, summary)
	assert.True(t, summary.OK())
}

func TestWorkflow_RunExpectations(t *testing.T) {
	loader, _ := newTestLoader()
	ui := controllermocks.NewMockUI(t)
	store := adaptermocks.NewMockExpectationStore(t)

	expectUILifecycle(ui)
	ui.EXPECT().DisplayStartingCase(mock.Anything, mock.Anything).Return()
	ui.EXPECT().DisplayCompletedCase(mock.Anything, mock.Anything).Return()
	ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, 0, 0, 1, 3).Return().Once()
	ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return().Once()
	ui.EXPECT().
		DisplayResultsJSON(mock.Anything, mock.MatchedBy(func(data []byte) bool {
			return assert.Contains(t, string(data), `"query": "suite2:foof:blah:"`)
		})).
		Return().
		Once()
	ui.EXPECT().Wait(mock.Anything).Return().Once()

	store.EXPECT().
		LoadExpectations("expectations.yaml").
		Return([]m.QueryExpectation{{Query: "suite2:foof:blah:", Expectation: m.ExpectSkip}}, nil).
		Once()
	store.EXPECT().
		SaveExpectations("failing.yaml", []m.QueryExpectation{{Query: "suite2:foof:bluh,a:", Expectation: m.ExpectFail}}).
		Return(nil).
		Once()

	wf := NewWorkflow(loader, store, nil, ui)

	summary, err := wf.Run(context.Background(), RunArgs{
		Queries:               queries("suite2:*"),
		ExpectationsPath:      "expectations.yaml",
		WriteExpectationsPath: "failing.yaml",
		Verbose:               true,
	})
	require.NoError(t, err)
	assert.Equal(t, m.Summary{Total: 3, Passed: 1, Skipped: 1, Failed: 1}, summary)
	assert.False(t, summary.OK())
}

func TestWorkflow_RunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    RunArgs
		wantErr error
	}{
		{"unknown file", RunArgs{Queries: queries("suite1:nope,*")}, ErrNoMatchingCases},
		{"everything filtered", RunArgs{Queries: queries("suite1:*"), Filters: []string{"absent"}}, ErrNoMatchingCases},
		{"bad expectation", RunArgs{
			Queries:      queries("suite1:foo:*"),
			Expectations: []m.QueryExpectation{{Query: "suite1:*", Expectation: "sometimes"}},
		}, ErrInvalidExpectation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newTestLoader()
			ui := controllermocks.NewMockUI(t)

			expectUILifecycle(ui)
			ui.EXPECT().DisplayStartingCase(mock.Anything, mock.Anything).Return().Maybe()
			ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

			_, err := NewWorkflow(loader, adaptermocks.NewMockExpectationStore(t), nil, ui).Run(context.Background(), tt.args)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWorkflow_RunExpectationsFileError(t *testing.T) {
	loader, _ := newTestLoader()
	store := adaptermocks.NewMockExpectationStore(t)
	store.EXPECT().LoadExpectations("missing.yaml").Return(nil, errors.New("no such file")).Once()

	// The UI is never started when expectations cannot be read.
	wf := NewWorkflow(loader, store, nil, controllermocks.NewMockUI(t))

	_, err := wf.Run(context.Background(), RunArgs{Queries: queries("suite1:*"), ExpectationsPath: "missing.yaml"})
	require.ErrorContains(t, err, "no such file")
}

func TestWorkflow_RunStoreError(t *testing.T) {
	loader, _ := newTestLoader()
	ui := controllermocks.NewMockUI(t)
	results := adaptermocks.NewMockResultStore(t)

	expectUILifecycle(ui)
	ui.EXPECT().DisplayStartingCase(mock.Anything, mock.Anything).Return()
	ui.EXPECT().DisplayCompletedCase(mock.Anything, mock.Anything).Return()
	ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, 0, 0, 1, 3).Return().Once()
	ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return().Once()

	results.EXPECT().SaveRun(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("disk full")).Once()

	_, err := NewWorkflow(loader, adaptermocks.NewMockExpectationStore(t), results, ui).
		Run(context.Background(), RunArgs{Queries: queries("suite1:foo:*")})
	require.ErrorContains(t, err, "store run: disk full")
}

func TestWorkflow_RunStoreDisabled(t *testing.T) {
	loader, _ := newTestLoader()
	ui := controllermocks.NewMockUI(t)

	expectUILifecycle(ui)
	ui.EXPECT().DisplayStartingCase(mock.Anything, mock.Anything).Return()
	ui.EXPECT().DisplayCompletedCase(mock.Anything, mock.Anything).Return()
	ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, 0, 0, 1, 3).Return().Once()
	ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return().Once()
	ui.EXPECT().Wait(mock.Anything).Return().Once()

	results := adapter.NewLazyResultStore(func() string { return "" })

	summary, err := NewWorkflow(loader, adaptermocks.NewMockExpectationStore(t), results, ui).
		Run(context.Background(), RunArgs{Queries: queries("suite1:foo:*")})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
}

func TestWorkflow_List(t *testing.T) {
	t.Run("cases", func(t *testing.T) {
		loader, _ := newTestLoader()
		ui := controllermocks.NewMockUI(t)

		expectUILifecycle(ui)
		ui.EXPECT().DisplayQueries(mock.Anything, []string{
			"suite1:baz:zed:a=1;b=2",
			"suite1:baz:zed:b=3;a=1",
		}).Return().Once()
		ui.EXPECT().Wait(mock.Anything).Return().Once()

		err := NewWorkflow(loader, nil, nil, ui).List(context.Background(), ListArgs{
			Queries: queries("suite1:baz:*"),
			Filters: []string{"zed"},
		})
		require.NoError(t, err)
	})

	t.Run("tree", func(t *testing.T) {
		loader, _ := newTestLoader()
		ui := controllermocks.NewMockUI(t)

		expectUILifecycle(ui)
		ui.EXPECT().
			DisplayTree(mock.Anything, mock.MatchedBy(func(tree string) bool {
				return assert.Contains(t, tree, "suite1:foo:hello:")
			})).
			Return().
			Once()
		ui.EXPECT().Wait(mock.Anything).Return().Once()

		err := NewWorkflow(loader, nil, nil, ui).List(context.Background(), ListArgs{
			Queries: queries("suite1:foo:*"),
			Tree:    true,
		})
		require.NoError(t, err)
	})

	t.Run("tree error", func(t *testing.T) {
		loader, _ := newTestLoader()
		ui := controllermocks.NewMockUI(t)

		expectUILifecycle(ui)

		err := NewWorkflow(loader, nil, nil, ui).List(context.Background(), ListArgs{
			Queries: queries("suite1:nope:*"),
			Tree:    true,
		})
		require.Error(t, err)
	})
}

func TestWorkflow_Variants(t *testing.T) {
	loader, _ := newTestLoader()
	ui := controllermocks.NewMockUI(t)

	expectUILifecycle(ui)
	ui.EXPECT().DisplayQueries(mock.Anything, []string{
		"suite1:foo:*",
		"suite1:bar,buzz,buzz:*",
		"suite1:baz:wye:",
		"suite1:baz:wye:x=1;*",
		"suite1:baz:zed,*",
	}).Return().Once()
	ui.EXPECT().Wait(mock.Anything).Return().Once()

	err := NewWorkflow(loader, nil, nil, ui).Variants(context.Background(), VariantsArgs{
		Root:         query.MustParse("suite1:*"),
		Expectations: []m.QueryExpectation{{Query: "suite1:baz:wye:", Expectation: m.ExpectFail}},
	})
	require.NoError(t, err)
}

func TestWorkflow_History(t *testing.T) {
	loader, _ := newTestLoader()

	t.Run("without store", func(t *testing.T) {
		err := NewWorkflow(loader, nil, nil, controllermocks.NewMockUI(t)).History(context.Background(), 10)
		require.ErrorIs(t, err, ErrNoResultStore)
	})

	t.Run("lists runs", func(t *testing.T) {
		ui := controllermocks.NewMockUI(t)
		results := adaptermocks.NewMockResultStore(t)

		runs := []m.RunInfo{{ID: "a", StartedAt: time.Unix(0, 0)}, {ID: "b", StartedAt: time.Unix(1, 0)}}
		results.EXPECT().ListRuns(mock.Anything, 10).Return(runs, nil).Once()

		expectUILifecycle(ui)
		ui.EXPECT().DisplayRuns(mock.Anything, runs).Return().Once()
		ui.EXPECT().Wait(mock.Anything).Return().Once()

		require.NoError(t, NewWorkflow(loader, nil, results, ui).History(context.Background(), 10))
	})
}

func TestWorkflow_Diff(t *testing.T) {
	loader, _ := newTestLoader()
	ui := controllermocks.NewMockUI(t)
	results := adaptermocks.NewMockResultStore(t)

	results.EXPECT().LoadRun(mock.Anything, "run1").Return(m.RunInfo{ID: "run1"}, []m.NamedResult{
		{Query: "s:a:x:", Result: m.Result{Status: m.StatusPass}},
		{Query: "s:a:y:", Result: m.Result{Status: m.StatusPass}},
	}, nil).Once()
	results.EXPECT().LoadRun(mock.Anything, "run2").Return(m.RunInfo{ID: "run2"}, []m.NamedResult{
		{Query: "s:a:x:", Result: m.Result{Status: m.StatusPass}},
		{Query: "s:a:y:", Result: m.Result{Status: m.StatusFail}},
	}, nil).Once()

	expectUILifecycle(ui)
	ui.EXPECT().DisplayDiff(mock.Anything, "--- run1\n+++ run2\n@@ -2 +2 @@\n-s:a:y: pass\n+s:a:y: fail\n").Return().Once()
	ui.EXPECT().Wait(mock.Anything).Return().Once()

	require.NoError(t, NewWorkflow(loader, nil, results, ui).Diff(context.Background(), DiffArgs{From: "run1", To: "run2"}))
}

func TestWorkflow_DiffUnknownRun(t *testing.T) {
	loader, _ := newTestLoader()
	results := adaptermocks.NewMockResultStore(t)

	results.EXPECT().LoadRun(mock.Anything, "nope").Return(m.RunInfo{}, nil, errors.New("run not found")).Once()

	err := NewWorkflow(loader, nil, results, controllermocks.NewMockUI(t)).Diff(context.Background(), DiffArgs{From: "nope", To: "x"})
	require.ErrorContains(t, err, "load run nope")
}
