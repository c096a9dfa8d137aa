package domain

import (
	"fmt"
	"iter"
	"strings"

	"gooze.dev/pkg/cts/internal/query"
)

// Node is either a *Subtree or a *Leaf.
type Node interface {
	Query() query.Query
}

// Counts are statistics aggregated over a subtree.
type Counts struct {
	Tests         int
	Cases         int
	NodesWithTODO int
}

// Subtree is an inner node of a test tree. Its query is a MultiFile,
// MultiTest or MultiCase query covering all of its descendants.
type Subtree struct {
	query        query.Query
	ReadableName string
	Description  string
	Collapsible  bool
	Counts       Counts

	children []Node
	index    map[string]Node
}

// Query returns the query covering the subtree.
func (s *Subtree) Query() query.Query {
	return s.query
}

// Children returns the children in insertion order.
func (s *Subtree) Children() []Node {
	return s.children
}

func newSubtree(q query.Query, name string, collapsible bool) *Subtree {
	return &Subtree{query: q, ReadableName: name, Collapsible: collapsible, index: make(map[string]Node)}
}

func (s *Subtree) getOrInsert(name string, create func() *Subtree) *Subtree {
	if child, ok := s.index[name]; ok {
		if sub, ok := child.(*Subtree); ok {
			return sub
		}
	}

	child := create()
	s.index[name] = child
	s.children = append(s.children, child)

	return child
}

func (s *Subtree) insertLeaf(name string, leaf *Leaf) {
	s.index[name] = leaf
	s.children = append(s.children, leaf)
}

// setDescription sets the description and counts it if it mentions TODO.
func (s *Subtree) setDescription(description string) {
	s.Description = strings.TrimSpace(description)
	if strings.Contains(s.Description, "TODO") {
		s.Counts.NodesWithTODO++
	}
}

// CollapseOptions control Tree.CollapsedNodes.
type CollapseOptions struct {
	// AlwaysExpandThroughLevel expands every subtree at or above this
	// level even when it is collapsible. Zero means LevelMultiFile.
	AlwaysExpandThroughLevel query.Level
	// IncludeIntermediateNodes also yields every expanded subtree.
	IncludeIntermediateNodes bool
	// IncludeEmptySubtrees yields subtrees without children.
	IncludeEmptySubtrees bool
}

// Tree is the result of loading a query.
type Tree struct {
	query query.Query
	root  *Subtree
	// LoadErrors are import failures of files inside a wildcard that did
	// not prevent loading the rest of the tree.
	LoadErrors []error
}

// Query returns the query the tree was loaded for.
func (t *Tree) Query() query.Query {
	return t.query
}

// Root returns the suite-level subtree.
func (t *Tree) Root() *Subtree {
	return t.root
}

// Leaves yields every case in tree order. The sequence is restartable.
func (t *Tree) Leaves() iter.Seq[*Leaf] {
	return func(yield func(*Leaf) bool) {
		iterateLeaves(t.root, yield)
	}
}

func iterateLeaves(s *Subtree, yield func(*Leaf) bool) bool {
	for _, child := range s.children {
		switch c := child.(type) {
		case *Leaf:
			if !yield(c) {
				return false
			}
		case *Subtree:
			if !iterateLeaves(c, yield) {
				return false
			}
		}
	}

	return true
}

// CollapsedNodes yields leaves and collapsed subtrees. A collapsible subtree
// below opts.AlwaysExpandThroughLevel is yielded as one opaque node.
func (t *Tree) CollapsedNodes(opts CollapseOptions) iter.Seq[Node] {
	if opts.AlwaysExpandThroughLevel == 0 {
		opts.AlwaysExpandThroughLevel = query.LevelMultiFile
	}

	return func(yield func(Node) bool) {
		iterateCollapsed(t.root, opts, yield)
	}
}

// CollapsedQueries is CollapsedNodes with default options, as queries.
func (t *Tree) CollapsedQueries() iter.Seq[query.Query] {
	return func(yield func(query.Query) bool) {
		for n := range t.CollapsedNodes(CollapseOptions{}) {
			if !yield(n.Query()) {
				return
			}
		}
	}
}

func iterateCollapsed(s *Subtree, opts CollapseOptions, yield func(Node) bool) bool {
	if opts.IncludeIntermediateNodes && !yield(s) {
		return false
	}

	for _, child := range s.children {
		sub, ok := child.(*Subtree)
		if !ok {
			if !yield(child) {
				return false
			}

			continue
		}

		collapsed := sub.Collapsible && sub.query.Level() > opts.AlwaysExpandThroughLevel

		switch {
		case len(sub.children) > 0 && !collapsed:
			if !iterateCollapsed(sub, opts, yield) {
				return false
			}
		case len(sub.children) > 0 || opts.IncludeEmptySubtrees:
			if !yield(sub) {
				return false
			}
		}
	}

	return true
}

// String renders the tree one node per line, indented by depth.
func (t *Tree) String() string {
	var b strings.Builder

	writeSubtree(&b, t.root, 0)

	return b.String()
}

func writeSubtree(b *strings.Builder, s *Subtree, depth int) {
	indent := strings.Repeat("  ", depth)

	fmt.Fprintf(b, "%s%s", indent, s.query)

	if s.Description != "" {
		fmt.Fprintf(b, " %q", firstLine(s.Description))
	}

	b.WriteString("\n")

	for _, child := range s.children {
		switch c := child.(type) {
		case *Subtree:
			writeSubtree(b, c, depth+1)
		case *Leaf:
			fmt.Fprintf(b, "%s  %s\n", indent, c.query)
		}
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// finalizeCounts adds the counts of every descendant into each subtree.
func finalizeCounts(s *Subtree) Counts {
	total := s.Counts

	for _, child := range s.children {
		switch c := child.(type) {
		case *Subtree:
			sub := finalizeCounts(c)
			total.Tests += sub.Tests
			total.Cases += sub.Cases
			total.NodesWithTODO += sub.NodesWithTODO
		case *Leaf:
			total.Cases++
		}
	}

	s.Counts = total

	return total
}
