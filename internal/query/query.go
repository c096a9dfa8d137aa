// Package query implements the hierarchical test query: its four levels,
// the string grammar, and the ordering relation between queries.
package query

import (
	"fmt"
	"regexp"
	"slices"

	"gooze.dev/pkg/cts/internal/params"
)

// Level is the specificity of a query.
type Level int

// Query levels, coarsest first.
const (
	LevelMultiFile  Level = 1
	LevelMultiTest  Level = 2
	LevelMultiCase  Level = 3
	LevelSingleCase Level = 4
)

func (l Level) String() string {
	switch l {
	case LevelMultiFile:
		return "multi-file"
	case LevelMultiTest:
		return "multi-test"
	case LevelMultiCase:
		return "multi-case"
	case LevelSingleCase:
		return "single-case"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

var validPart = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidPart reports whether s may be used as a suite name, path segment,
// test segment or param key.
func ValidPart(s string) bool {
	return validPart.MatchString(s)
}

// InvalidPartError reports a query part that does not match the identifier
// grammar and so cannot be rendered unambiguously.
type InvalidPartError struct {
	What string
	Part string
}

func (e *InvalidPartError) Error() string {
	return fmt.Sprintf("invalid %s %q: must match %s", e.What, e.Part, validPart)
}

// Is makes errors.Is(err, ErrMalformed) hold for invalid parts.
func (e *InvalidPartError) Is(target error) bool {
	return target == ErrMalformed
}

// Query is an immutable test query. Use the level constructors or Parse to
// obtain one; the zero value is not a valid query.
type Query struct {
	level  Level
	suite  string
	file   []string
	test   []string
	params params.Params
}

// New validates and builds a query at the given level. Parts that the level
// does not carry must be empty. Private params are dropped.
func New(level Level, suite string, file, test []string, p params.Params) (Query, error) {
	if level < LevelMultiFile || level > LevelSingleCase {
		return Query{}, fmt.Errorf("%w: unknown level %d", ErrMalformed, level)
	}

	if !ValidPart(suite) {
		return Query{}, &InvalidPartError{What: "suite", Part: suite}
	}

	for _, part := range file {
		if !ValidPart(part) {
			return Query{}, &InvalidPartError{What: "file path part", Part: part}
		}
	}

	if level == LevelMultiFile && (len(test) > 0 || len(p) > 0) {
		return Query{}, fmt.Errorf("%w: file-level query cannot carry a test path or params", ErrMalformed)
	}

	if level >= LevelMultiTest && len(file) == 0 {
		return Query{}, fmt.Errorf("%w: file part of test-level query was empty (::)", ErrMalformed)
	}

	for _, part := range test {
		if !ValidPart(part) {
			return Query{}, &InvalidPartError{What: "test path part", Part: part}
		}
	}

	if level == LevelMultiTest && len(p) > 0 {
		return Query{}, fmt.Errorf("%w: test-level query cannot carry params", ErrMalformed)
	}

	if level >= LevelMultiCase && len(test) == 0 {
		return Query{}, fmt.Errorf("%w: test part of case-level query was empty (::)", ErrMalformed)
	}

	public := p.Public()
	for i, e := range public {
		if !ValidPart(e.Key) {
			return Query{}, &InvalidPartError{What: "param key", Part: e.Key}
		}

		if _, err := params.StringifyValue(e.Value); err != nil {
			return Query{}, fmt.Errorf("%w: param %q: %w", ErrMalformed, e.Key, err)
		}

		if _, dup := public[:i].Get(e.Key); dup {
			return Query{}, fmt.Errorf("%w: %w", ErrMalformed, &params.DuplicateKeyError{Key: e.Key})
		}
	}

	return Query{
		level:  level,
		suite:  suite,
		file:   slices.Clone(file),
		test:   slices.Clone(test),
		params: public,
	}, nil
}

func must(q Query, err error) Query {
	if err != nil {
		panic(err)
	}

	return q
}

// MultiFile selects every test under a file path prefix: suite:a,b,*.
func MultiFile(suite string, file []string) Query {
	return must(New(LevelMultiFile, suite, file, nil, nil))
}

// MultiTest selects every test of a file under a test path prefix:
// suite:a,b:c,*.
func MultiTest(suite string, file, test []string) Query {
	return must(New(LevelMultiTest, suite, file, test, nil))
}

// MultiCase selects every case of a test whose params start with p:
// suite:a,b:c:k=1;*.
func MultiCase(suite string, file, test []string, p params.Params) Query {
	return must(New(LevelMultiCase, suite, file, test, p))
}

// SingleCase selects exactly one case: suite:a,b:c:k=1.
func SingleCase(suite string, file, test []string, p params.Params) Query {
	return must(New(LevelSingleCase, suite, file, test, p))
}

// Level returns the specificity of q.
func (q Query) Level() Level { return q.level }

// Suite returns the suite name.
func (q Query) Suite() string { return q.suite }

// File returns a copy of the file path parts.
func (q Query) File() []string { return slices.Clone(q.file) }

// Test returns a copy of the test path parts.
func (q Query) Test() []string { return slices.Clone(q.test) }

// Params returns a copy of the public params.
func (q Query) Params() params.Params { return q.params.Clone() }

// IsMultiFile reports whether the file path ends in a wildcard.
func (q Query) IsMultiFile() bool { return q.level == LevelMultiFile }

// IsMultiTest reports whether the test path ends in a wildcard.
func (q Query) IsMultiTest() bool { return q.level == LevelMultiTest }

// IsMultiCase reports whether the params end in a wildcard.
func (q Query) IsMultiCase() bool { return q.level == LevelMultiCase }

// DepthInLevel is the number of parts at the query's own level.
func (q Query) DepthInLevel() int {
	switch q.level {
	case LevelMultiFile:
		return len(q.file)
	case LevelMultiTest:
		return len(q.test)
	default:
		return len(q.params)
	}
}

// IsZero reports whether q is the zero value.
func (q Query) IsZero() bool { return q.level == 0 }

// Equal reports whether a and b select the same set of cases.
func (q Query) Equal(other Query) bool {
	return Compare(q, other) == Equal
}

// Parent returns the next coarser query by dropping one part, and false
// when q is already a suite root.
func (q Query) Parent() (Query, bool) {
	switch q.level {
	case LevelSingleCase:
		return must(New(LevelMultiCase, q.suite, q.file, q.test, q.params)), true
	case LevelMultiCase:
		if len(q.params) > 0 {
			return must(New(LevelMultiCase, q.suite, q.file, q.test, q.params[:len(q.params)-1])), true
		}

		return must(New(LevelMultiTest, q.suite, q.file, q.test, nil)), true
	case LevelMultiTest:
		if len(q.test) > 0 {
			return must(New(LevelMultiTest, q.suite, q.file, q.test[:len(q.test)-1], nil)), true
		}

		return must(New(LevelMultiFile, q.suite, q.file[:len(q.file)-1], nil, nil)), true
	case LevelMultiFile:
		if len(q.file) > 0 {
			return must(New(LevelMultiFile, q.suite, q.file[:len(q.file)-1], nil, nil)), true
		}
	}

	return Query{}, false
}
