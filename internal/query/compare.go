package query

import (
	"gooze.dev/pkg/cts/internal/params"
)

// Ordering relates the case sets selected by two queries.
type Ordering int

// Orderings of a relative to b in Compare(a, b).
const (
	Unordered Ordering = iota
	StrictSuperset
	Equal
	StrictSubset
)

func (o Ordering) String() string {
	switch o {
	case StrictSuperset:
		return "superset"
	case Equal:
		return "equal"
	case StrictSubset:
		return "subset"
	default:
		return "unordered"
	}
}

// Inverse returns the ordering of b relative to a.
func (o Ordering) Inverse() Ordering {
	switch o {
	case StrictSuperset:
		return StrictSubset
	case StrictSubset:
		return StrictSuperset
	default:
		return o
	}
}

// Compare computes the ordering of a relative to b. Levels are compared
// coarsest first; a level decides the result as soon as its paths differ
// or either side stops with a wildcard there.
func Compare(a, b Query) Ordering {
	if a.suite != b.suite {
		return Unordered
	}

	fileOrdering := comparePaths(a.file, b.file)
	if fileOrdering != Equal || a.IsMultiFile() || b.IsMultiFile() {
		return compareOneLevel(fileOrdering, a.IsMultiFile(), b.IsMultiFile())
	}

	testOrdering := comparePaths(a.test, b.test)
	if testOrdering != Equal || a.IsMultiTest() || b.IsMultiTest() {
		return compareOneLevel(testOrdering, a.IsMultiTest(), b.IsMultiTest())
	}

	paramsOrdering := compareParamsPaths(a.params, b.params)
	if paramsOrdering != Equal || a.IsMultiCase() || b.IsMultiCase() {
		return compareOneLevel(paramsOrdering, a.IsMultiCase(), b.IsMultiCase())
	}

	return Equal
}

// compareOneLevel folds a path ordering with whether each side ends in a
// wildcard at this level ("big").
func compareOneLevel(ordering Ordering, aIsBig, bIsBig bool) Ordering {
	switch {
	case ordering == Unordered:
		return Unordered
	case aIsBig && bIsBig:
		return ordering
	case !aIsBig && !bIsBig:
		// Equal paths without wildcards are handled by the caller, so
		// different-length exact paths never overlap.
		return Unordered
	case aIsBig && ordering != StrictSubset:
		return StrictSuperset
	case bIsBig && ordering != StrictSuperset:
		return StrictSubset
	default:
		return Unordered
	}
}

// comparePaths treats a shorter matching prefix as the superset.
func comparePaths(a, b []string) Ordering {
	shorter := min(len(a), len(b))
	for i := 0; i < shorter; i++ {
		if a[i] != b[i] {
			return Unordered
		}
	}

	switch {
	case len(a) == len(b):
		return Equal
	case len(a) < len(b):
		return StrictSuperset
	default:
		return StrictSubset
	}
}

func compareParamsPaths(a, b params.Params) Ordering {
	a, b = a.Public(), b.Public()

	shorter := min(len(a), len(b))
	for i := 0; i < shorter; i++ {
		if a[i].Key != b[i].Key || !params.ValueEquals(a[i].Value, b[i].Value) {
			return Unordered
		}
	}

	switch {
	case len(a) == len(b):
		return Equal
	case len(a) < len(b):
		return StrictSuperset
	default:
		return StrictSubset
	}
}

// Subset is the answer of SubsetOf.
type Subset int

// Subset answers.
const (
	SubsetNo Subset = iota
	SubsetEqual
	SubsetStrict
)

// SubsetOf reports whether sub selects a subset of the cases sup selects.
func SubsetOf(sub, sup Query) Subset {
	switch Compare(sub, sup) {
	case Equal:
		return SubsetEqual
	case StrictSubset:
		return SubsetStrict
	default:
		return SubsetNo
	}
}

// Contains reports whether sup selects every case sub selects.
func Contains(sup, sub Query) bool {
	return SubsetOf(sub, sup) != SubsetNo
}
