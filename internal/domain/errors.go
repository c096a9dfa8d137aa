package domain

import (
	"errors"

	"gooze.dev/pkg/cts/internal/logging"
)

var (
	// ErrSpecNotFound is returned when a spec file the query names cannot be imported.
	ErrSpecNotFound = errors.New("spec file not found")
	// ErrNoMatchingCases is returned when a query selects no case at all.
	ErrNoMatchingCases = errors.New("query does not match any cases")
	// ErrUnorderedQuery is returned when a query lies outside the runner's root.
	ErrUnorderedQuery = errors.New("query is not within the root query")
	// ErrUnmatchedSubquery is returned when a subquery to expand names no tree node.
	ErrUnmatchedSubquery = errors.New("subqueriesToExpand entry did not match anything")
	// ErrInvalidTest reports an authoring error in a spec file.
	ErrInvalidTest = errors.New("invalid test")
	// ErrCaseTimeout is recorded when a case body outlives its deadline.
	ErrCaseTimeout = errors.New("case timed out")
)

var skipUnimplemented = &logging.SkipError{Reason: "unimplemented"}
