package params

import (
	"fmt"
	"iter"
)

// Space is anything that can enumerate parameter records. Enumeration must
// be restartable: every call to All walks the space from the start.
type Space interface {
	All() iter.Seq[Params]
}

// node is one variant of the builder expression tree.
type node interface {
	isNode()
}

type seedNode struct {
	records []Params
}

type combineNode struct {
	left  node
	right Space
}

type expandNode struct {
	left node
	fn   func(Params) Space
}

type filterNode struct {
	left node
	pred func(Params) bool
	keep bool
}

type excludeNode struct {
	left     node
	excluded Space
}

func (seedNode) isNode()    {}
func (combineNode) isNode() {}
func (expandNode) isNode()  {}
func (filterNode) isNode()  {}
func (excludeNode) isNode() {}

// Builder is an immutable parameter space. Every combinator returns a new
// Builder and leaves the receiver untouched.
type Builder struct {
	root node
}

// Begin returns a space with one empty record.
func Begin() Builder {
	return Builder{root: seedNode{records: []Params{{}}}}
}

// List returns a space over the given literal records.
func List(records ...Params) Builder {
	cp := make([]Params, len(records))
	for i, r := range records {
		cp[i] = r.Clone()
	}

	return Builder{root: seedNode{records: cp}}
}

// Options returns one single-key record per value.
func Options(name string, values ...any) Builder {
	records := make([]Params, len(values))
	for i, v := range values {
		records[i] = P(name, v)
	}

	return Builder{root: seedNode{records: records}}
}

// Bool is Options(name, false, true).
func Bool(name string) Builder {
	return Options(name, false, true)
}

// Combine returns the Cartesian product of b and other, with other varying
// fastest. Colliding keys panic with *DuplicateKeyError.
func (b Builder) Combine(other Space) Builder {
	return Builder{root: combineNode{left: b.node(), right: other}}
}

// CombineOptions is shorthand for Combine(Options(name, values...)).
func (b Builder) CombineOptions(name string, values ...any) Builder {
	return b.Combine(Options(name, values...))
}

// Expand is a dependent Combine: the right-hand space is computed from each
// left-hand record.
func (b Builder) Expand(fn func(Params) Space) Builder {
	return Builder{root: expandNode{left: b.node(), fn: fn}}
}

// Filter keeps records for which pred returns true.
func (b Builder) Filter(pred func(Params) bool) Builder {
	return Builder{root: filterNode{left: b.node(), pred: pred, keep: true}}
}

// Unless drops records for which pred returns true.
func (b Builder) Unless(pred func(Params) bool) Builder {
	return Builder{root: filterNode{left: b.node(), pred: pred, keep: false}}
}

// Exclude drops records whose public params equal any record of excluded.
func (b Builder) Exclude(excluded Space) Builder {
	return Builder{root: excludeNode{left: b.node(), excluded: excluded}}
}

// All enumerates the space.
func (b Builder) All() iter.Seq[Params] {
	return eval(b.node())
}

func (b Builder) node() node {
	if b.root == nil {
		return seedNode{records: []Params{{}}}
	}

	return b.root
}

// Count walks s and returns the number of records.
func Count(s Space) int {
	n := 0
	for range s.All() {
		n++
	}

	return n
}

// Collect walks s into a slice.
func Collect(s Space) []Params {
	var out []Params
	for p := range s.All() {
		out = append(out, p)
	}

	return out
}

func eval(n node) iter.Seq[Params] {
	switch n := n.(type) {
	case seedNode:
		return func(yield func(Params) bool) {
			for _, r := range n.records {
				if !yield(r.Clone()) {
					return
				}
			}
		}
	case combineNode:
		return func(yield func(Params) bool) {
			for a := range eval(n.left) {
				for b := range n.right.All() {
					if !yield(MustMerge(a, b)) {
						return
					}
				}
			}
		}
	case expandNode:
		return func(yield func(Params) bool) {
			for a := range eval(n.left) {
				for b := range n.fn(a).All() {
					if !yield(MustMerge(a, b)) {
						return
					}
				}
			}
		}
	case filterNode:
		return func(yield func(Params) bool) {
			for a := range eval(n.left) {
				if n.pred(a) != n.keep {
					continue
				}

				if !yield(a) {
					return
				}
			}
		}
	case excludeNode:
		return func(yield func(Params) bool) {
			excluded := Collect(n.excluded)

			for a := range eval(n.left) {
				if containsPublic(excluded, a) {
					continue
				}

				if !yield(a) {
					return
				}
			}
		}
	default:
		panic(fmt.Sprintf("params: unknown builder node %T", n))
	}
}

func containsPublic(records []Params, p Params) bool {
	for _, r := range records {
		if PublicEquals(r, p) {
			return true
		}
	}

	return false
}

// Seq adapts a plain record sequence to Space. The function is called again
// on every walk, so it must produce a fresh sequence each time.
type Seq func() iter.Seq[Params]

// All implements Space.
func (s Seq) All() iter.Seq[Params] {
	return s()
}
