// Package params holds case parameter records and the combinators that
// generate parameter spaces for test cases.
package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// UndefinedValue is the query spelling of a nil parameter value.
const UndefinedValue = "undefined"

// privateKeyPrefix marks a parameter key as private: it never appears in
// queries and is ignored by public comparisons.
const privateKeyPrefix = "_"

// badValueChars may not appear in a stringified public value.
const badValueChars = "=;*%"

// ErrInvalidValue is returned for public values outside the supported set.
var ErrInvalidValue = errors.New("invalid public param value")

// DuplicateKeyError reports a key present in both records of a merge.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate param key %q", e.Key)
}

// Param is a single key/value entry of a record.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered parameter record. Order is significant for queries
// and tree construction; equality of public params is not.
type Params []Param

// IsPublicKey reports whether key is visible in queries.
func IsPublicKey(key string) bool {
	return !strings.HasPrefix(key, privateKeyPrefix)
}

// P builds a record from alternating keys and values. Public values are
// normalized; it panics on malformed input since records are usually
// literals in test definitions.
func P(kv ...any) Params {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("params.P: odd number of arguments (%d)", len(kv)))
	}

	out := make(Params, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("params.P: key at %d is %T, not string", i, kv[i]))
		}

		value := kv[i+1]
		if IsPublicKey(key) {
			normalized, err := Normalize(value)
			if err != nil {
				panic(fmt.Sprintf("params.P: key %q: %v", key, err))
			}

			value = normalized
		}

		if _, dup := out.Get(key); dup {
			panic(&DuplicateKeyError{Key: key})
		}

		out = append(out, Param{Key: key, Value: value})
	}

	return out
}

// Get returns the value stored under key.
func (p Params) Get(key string) (any, bool) {
	for _, e := range p {
		if e.Key == key {
			return e.Value, true
		}
	}

	return nil, false
}

// Number returns the numeric value under key, or 0.
func (p Params) Number(key string) float64 {
	v, _ := p.Get(key)
	f, _ := v.(float64)

	return f
}

// Text returns the string value under key, or "".
func (p Params) Text(key string) string {
	v, _ := p.Get(key)
	s, _ := v.(string)

	return s
}

// Flag returns the boolean value under key, or false.
func (p Params) Flag(key string) bool {
	v, _ := p.Get(key)
	b, _ := v.(bool)

	return b
}

// Keys returns the keys in record order.
func (p Params) Keys() []string {
	keys := make([]string, len(p))
	for i, e := range p {
		keys[i] = e.Key
	}

	return keys
}

// Public returns a copy of p without private entries.
func (p Params) Public() Params {
	out := make(Params, 0, len(p))
	for _, e := range p {
		if IsPublicKey(e.Key) {
			out = append(out, e)
		}
	}

	return out
}

// Clone returns a shallow copy of p.
func (p Params) Clone() Params {
	if p == nil {
		return Params{}
	}

	out := make(Params, len(p))
	copy(out, p)

	return out
}

// String renders the public entries as k=v;k=v.
func (p Params) String() string {
	parts := make([]string, 0, len(p))
	for _, e := range p.Public() {
		parts = append(parts, StringifySingle(e.Key, e.Value))
	}

	return strings.Join(parts, ";")
}

// Merge concatenates a and b. Keys may not collide.
func Merge(a, b Params) (Params, error) {
	out := make(Params, 0, len(a)+len(b))
	out = append(out, a...)

	for _, e := range b {
		if _, dup := a.Get(e.Key); dup {
			return nil, &DuplicateKeyError{Key: e.Key}
		}

		out = append(out, e)
	}

	return out, nil
}

// MustMerge is Merge that panics with *DuplicateKeyError on collision.
func MustMerge(a, b Params) Params {
	out, err := Merge(a, b)
	if err != nil {
		panic(err)
	}

	return out
}

// PublicEquals compares the public entries of a and b ignoring order.
func PublicEquals(a, b Params) bool {
	pa, pb := a.Public(), b.Public()
	if len(pa) != len(pb) {
		return false
	}

	for _, e := range pa {
		v, ok := pb.Get(e.Key)
		if !ok || !ValueEquals(e.Value, v) {
			return false
		}
	}

	return true
}

// ValueEquals compares two public values structurally.
func ValueEquals(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// Normalize maps a Go value onto the public value set: nil, bool, float64,
// string, or []any of those. Every numeric kind becomes float64.
func Normalize(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: non-finite number %v", ErrInvalidValue, f)
		}

		return f, nil
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			elem, err := Normalize(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}

			out[i] = elem
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}

// StringifyValue renders a public value the way it appears in a query.
func StringifyValue(v any) (string, error) {
	if v == nil {
		return UndefinedValue, nil
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	s := strings.TrimSuffix(buf.String(), "\n")
	if strings.ContainsAny(s, badValueChars) {
		return "", fmt.Errorf("%w: %s contains one of %q", ErrInvalidValue, s, badValueChars)
	}

	return s, nil
}

// ParseValue decodes a query value: "undefined" or a JSON number, string,
// boolean, or array of those.
func ParseValue(s string) (any, error) {
	if strings.ContainsAny(s, badValueChars) {
		return nil, fmt.Errorf("%w: %q must not contain any of %q", ErrInvalidValue, s, badValueChars)
	}

	if s == UndefinedValue {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidValue, s, err)
	}

	if err := checkDecoded(v); err != nil {
		return nil, fmt.Errorf("%w: %q", err, s)
	}

	return v, nil
}

func checkDecoded(v any) error {
	switch t := v.(type) {
	case bool, float64, string:
		return nil
	case []any:
		for _, e := range t {
			if e == nil {
				continue
			}

			if err := checkDecoded(e); err != nil {
				return err
			}
		}

		return nil
	case nil:
		return fmt.Errorf("%w: null is not a param value, use %s", ErrInvalidValue, UndefinedValue)
	default:
		return fmt.Errorf("%w: objects are not param values", ErrInvalidValue)
	}
}

// StringifySingle renders one public entry as key=value. It panics when the
// value cannot be rendered unambiguously.
func StringifySingle(key string, value any) string {
	s, err := StringifyValue(value)
	if err != nil {
		panic(fmt.Sprintf("param %q: %v", key, err))
	}

	return key + "=" + s
}
