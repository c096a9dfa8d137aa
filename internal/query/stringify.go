package query

import (
	"fmt"
	"strings"

	"gooze.dev/pkg/cts/internal/params"
)

// String renders q in canonical form. Parse(q.String()) yields q again.
// It panics if a part would render ambiguously.
func (q Query) String() string {
	if q.IsZero() {
		return ""
	}

	checkParts("suite", []string{q.suite})
	checkParts("file path part", q.file)
	checkParts("test path part", q.test)

	var b strings.Builder

	b.WriteString(q.suite)
	b.WriteString(BigSeparator)

	if q.level == LevelMultiFile {
		b.WriteString(joinWithWildcard(q.file, PathSeparator))
		return b.String()
	}

	b.WriteString(strings.Join(q.file, PathSeparator))
	b.WriteString(BigSeparator)

	if q.level == LevelMultiTest {
		b.WriteString(joinWithWildcard(q.test, PathSeparator))
		return b.String()
	}

	b.WriteString(strings.Join(q.test, PathSeparator))
	b.WriteString(BigSeparator)

	entries := make([]string, 0, len(q.params))
	for _, e := range q.params.Public() {
		checkParts("param key", []string{e.Key})
		entries = append(entries, params.StringifySingle(e.Key, e.Value))
	}

	if q.level == LevelMultiCase {
		b.WriteString(joinWithWildcard(entries, ParamSeparator))
	} else {
		b.WriteString(strings.Join(entries, ParamSeparator))
	}

	return b.String()
}

func joinWithWildcard(parts []string, separator string) string {
	if len(parts) == 0 {
		return Wildcard
	}

	return strings.Join(parts, separator) + separator + Wildcard
}

func checkParts(what string, parts []string) {
	for _, part := range parts {
		if !ValidPart(part) {
			panic(&InvalidPartError{What: what, Part: part})
		}
	}
}

// selectivelyUnescaped are the characters EncodeSelectively leaves readable
// after percent-encoding.
var selectivelyUnescaped = strings.NewReplacer(
	"%22", `"`,
	"%2C", ",",
	"%3A", ":",
	"%3B", ";",
	"%3D", "=",
	"%5B", "[",
	"%5D", "]",
	"%7B", "{",
	"%7D", "}",
)

// EncodeSelectively percent-encodes s for use in a URL query string while
// keeping the query grammar's punctuation readable.
func EncodeSelectively(s string) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedURIComponent(c) {
			b.WriteByte(c)
			continue
		}

		fmt.Fprintf(&b, "%%%02X", c)
	}

	return selectivelyUnescaped.Replace(b.String())
}

func isUnreservedURIComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("-_.!~*'()", c) >= 0
}
