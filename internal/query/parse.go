package query

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gooze.dev/pkg/cts/internal/params"
)

// ErrMalformed wraps every error returned by Parse.
var ErrMalformed = errors.New("malformed query")

const exampleQueries = "webgpu:a,b,* or webgpu:a,b,c:*"

// Parse parses a query string. The input may be percent-encoded.
func Parse(s string) (Query, error) {
	q, err := parse(s)
	if err != nil {
		return Query{}, fmt.Errorf("%w\n  on: %s", err, s)
	}

	return q, nil
}

// MustParse is Parse that panics on error.
func MustParse(s string) Query {
	return must(Parse(s))
}

func parse(s string) (Query, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return Query{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	// suite, file, test, params; the params part keeps any further separators.
	bigParts := strings.SplitN(decoded, BigSeparator, 4)
	if len(bigParts) < 2 {
		return Query{}, fmt.Errorf("%w: need at least suite separator (%s)", ErrMalformed, BigSeparator)
	}

	suite := bigParts[0]

	file, fileWildcard, err := parseBigPart(bigParts[1], PathSeparator)
	if err != nil {
		return Query{}, err
	}

	if len(bigParts) == 2 {
		if !fileWildcard {
			return Query{}, fmt.Errorf(
				"%w: file-level query without wildcard %s; did you want a file-level query (append %s%s) or test-level query (append %s%s)?",
				ErrMalformed, Wildcard, PathSeparator, Wildcard, BigSeparator, Wildcard)
		}

		return New(LevelMultiFile, suite, file, nil, nil)
	}

	if fileWildcard {
		return Query{}, fmt.Errorf("%w: wildcard %s must be at the end of the query string", ErrMalformed, Wildcard)
	}

	test, testWildcard, err := parseBigPart(bigParts[2], PathSeparator)
	if err != nil {
		return Query{}, err
	}

	if len(bigParts) == 3 {
		if !testWildcard {
			return Query{}, fmt.Errorf(
				"%w: test-level query without wildcard %s; did you want a test-level query (append %s%s) or case-level query (append %s%s)?",
				ErrMalformed, Wildcard, PathSeparator, Wildcard, BigSeparator, Wildcard)
		}

		if len(file) == 0 {
			return Query{}, fmt.Errorf("%w: file part of test-level query was empty (::)", ErrMalformed)
		}

		return New(LevelMultiTest, suite, file, test, nil)
	}

	if testWildcard {
		return Query{}, fmt.Errorf("%w: wildcard %s must be at the end of the query string", ErrMalformed, Wildcard)
	}

	paramsPart := bigParts[3]
	if strings.HasSuffix(paramsPart, legacyCaseWildcard) {
		paramsPart = strings.TrimSuffix(paramsPart, legacyCaseWildcard) + ParamSeparator + Wildcard
	}

	entries, paramsWildcard, err := parseBigPart(paramsPart, ParamSeparator)
	if err != nil {
		return Query{}, err
	}

	if len(test) == 0 {
		return Query{}, fmt.Errorf("%w: test part of case-level query was empty (::)", ErrMalformed)
	}

	p := make(params.Params, 0, len(entries))
	for _, entry := range entries {
		key, value, err := parseSingleParam(entry)
		if err != nil {
			return Query{}, err
		}

		p = append(p, params.Param{Key: key, Value: value})
	}

	if paramsWildcard {
		return New(LevelMultiCase, suite, file, test, p)
	}

	return New(LevelSingleCase, suite, file, test, p)
}

func parseBigPart(s, separator string) ([]string, bool, error) {
	if s == "" {
		return nil, false, nil
	}

	parts := strings.Split(s, separator)

	endsWithWildcard := false

	for i, part := range parts {
		if i == len(parts)-1 {
			endsWithWildcard = part == Wildcard
		}

		if strings.Contains(part, Wildcard) && !endsWithWildcard {
			return nil, false, fmt.Errorf(
				"%w: wildcard %s must be complete last part of a path (e.g. %s)",
				ErrMalformed, Wildcard, exampleQueries)
		}
	}

	if endsWithWildcard {
		parts = parts[:len(parts)-1]
	}

	return parts, endsWithWildcard, nil
}

func parseSingleParam(s string) (string, any, error) {
	if s == "" {
		return "", nil, fmt.Errorf("%w: param in a query must not be blank (is there a trailing separator?)", ErrMalformed)
	}

	key, rawValue, found := strings.Cut(s, ParamKVSeparator)
	if !found {
		return "", nil, fmt.Errorf("%w: param in a query must be of form key=value", ErrMalformed)
	}

	if !params.IsPublicKey(key) {
		return "", nil, fmt.Errorf("%w: param in a query must not be private (start with _)", ErrMalformed)
	}

	if !ValidPart(key) {
		return "", nil, fmt.Errorf("%w: param key names must match %s", ErrMalformed, validPart)
	}

	value, err := params.ParseValue(rawValue)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return key, value, nil
}
