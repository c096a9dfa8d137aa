package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"gooze.dev/pkg/cts/internal/adapter"
	"gooze.dev/pkg/cts/internal/params"
	"gooze.dev/pkg/cts/internal/query"
)

// SpecImporter resolves a spec file of a suite. Implementations are
// expected to memoize: the loader imports a file once per tree.
type SpecImporter interface {
	ImportSpecFile(ctx context.Context, suite string, file []string) (*SpecFile, error)
}

// Loader expands queries into trees of runnable cases.
type Loader interface {
	// LoadTree loads every case matched by q. Subtrees equal to one of
	// subqueriesToExpand, or containing one, are not collapsible.
	LoadTree(ctx context.Context, q query.Query, subqueriesToExpand []query.Query) (*Tree, error)
	// LoadCases returns the leaves of LoadTree(q) in tree order.
	LoadCases(ctx context.Context, q query.Query) ([]*Leaf, error)
}

type loader struct {
	adapter.ListingSource
	SpecImporter
}

// NewLoader creates a Loader reading listings from listing and spec files
// from importer.
func NewLoader(listing adapter.ListingSource, importer SpecImporter) Loader {
	return &loader{
		ListingSource: listing,
		SpecImporter:  importer,
	}
}

func (l *loader) LoadCases(ctx context.Context, q query.Query) ([]*Leaf, error) {
	tree, err := l.LoadTree(ctx, q, nil)
	if err != nil {
		return nil, err
	}

	return slices.Collect(tree.Leaves()), nil
}

func (l *loader) LoadTree(ctx context.Context, q query.Query, subqueriesToExpand []query.Query) (*Tree, error) {
	suite := q.Suite()

	entries, err := l.Listing(ctx, suite)
	if err != nil {
		return nil, fmt.Errorf("listing for suite %q: %w", suite, err)
	}

	ex := newExpander(subqueriesToExpand)
	b := &treeBuilder{suite: suite, ex: ex}

	rootQuery := query.MultiFile(suite, nil)
	tree := &Tree{query: q, root: newSubtree(rootQuery, rootQuery.String(), ex.collapsible(rootQuery))}
	foundCase := false

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if len(entry.File) == 0 {
			if entry.IsReadme() {
				tree.root.setDescription(entry.Readme)
			}

			continue
		}

		fileQuery, err := query.New(query.LevelMultiFile, suite, entry.File, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("listing entry of suite %q: %w", suite, err)
		}

		if query.Compare(fileQuery, q) == query.Unordered {
			continue
		}

		if entry.IsReadme() {
			b.addDirPath(tree.root, entry.File).setDescription(entry.Readme)
			continue
		}

		found, err := l.loadFile(ctx, b, tree, q, entry.File)
		if err != nil {
			return nil, err
		}

		foundCase = foundCase || found
	}

	if unseen := ex.unseen(); len(unseen) > 0 {
		names := make([]string, len(unseen))
		for i, u := range unseen {
			names[i] = u.String()
		}

		return nil, fmt.Errorf("%w (could be wrong, or could be redundant with a previous subquery):\n  %s",
			ErrUnmatchedSubquery, strings.Join(names, "\n  "))
	}

	if !foundCase {
		return nil, fmt.Errorf("%w: %s", ErrNoMatchingCases, q)
	}

	finalizeCounts(tree.root)

	return tree, nil
}

// loadFile imports one spec file and adds its matching cases to the tree.
func (l *loader) loadFile(ctx context.Context, b *treeBuilder, tree *Tree, q query.Query, file []string) (bool, error) {
	fileQuery := query.MultiTest(b.suite, file, nil)

	spec, err := l.ImportSpecFile(ctx, b.suite, file)
	if err == nil {
		err = spec.G.Validate()
	}

	if err != nil {
		switch query.Compare(fileQuery, q) {
		case query.Equal, query.StrictSuperset:
			return false, fmt.Errorf("%w: %s: %w", ErrSpecNotFound, fileQuery, err)
		default:
			slog.Error("Failed to import spec file", "file", fileQuery.String(), "error", err)

			tree.LoadErrors = append(tree.LoadErrors, fmt.Errorf("%s: %w", fileQuery, err))

			return false, nil
		}
	}

	fileNode := b.addFilePath(tree.root, file)
	fileNode.setDescription(spec.Description)

	hasTests := false
	foundCase := false

	for t := range spec.G.Tests() {
		hasTests = true

		testQuery := query.MultiCase(b.suite, file, t.testPath, nil)
		if query.Compare(testQuery, q) == query.Unordered {
			continue
		}

		testNode := b.addTestPath(fileNode, file, t.testPath)
		testNode.Counts.Tests = 1

		if t.description != "" {
			testNode.setDescription(t.description)
		}

		for p := range t.Cases() {
			caseQuery, err := query.New(query.LevelSingleCase, b.suite, file, t.testPath, p)
			if err != nil {
				return false, fmt.Errorf("%s: case {%s}: %w", testQuery, p, err)
			}

			switch query.Compare(caseQuery, q) {
			case query.Unordered, query.StrictSuperset:
				continue
			default:
			}

			b.addLeaf(testNode, caseQuery, t, p)

			foundCase = true
		}
	}

	if !hasTests && !strings.Contains(spec.Description, "TODO") {
		return false, fmt.Errorf("%s has no tests; its description must mention TODO: %w", fileQuery, ErrInvalidTest)
	}

	return foundCase, nil
}

// expander tracks which subqueries to expand have matched a node.
type expander struct {
	queries []query.Query
	seen    []bool
}

func newExpander(queries []query.Query) *expander {
	return &expander{queries: queries, seen: make([]bool, len(queries))}
}

// collapsible reports whether no subquery to expand lies strictly inside q,
// marking subqueries equal to q as seen.
func (e *expander) collapsible(q query.Query) bool {
	result := true

	for i, toExpand := range e.queries {
		switch query.Compare(toExpand, q) {
		case query.Equal:
			e.seen[i] = true
		case query.StrictSubset:
			result = false
		case query.Unordered, query.StrictSuperset:
		}
	}

	return result
}

func (e *expander) unseen() []query.Query {
	var out []query.Query

	for i, q := range e.queries {
		if !e.seen[i] {
			out = append(out, q)
		}
	}

	return out
}

// treeBuilder inserts the node chain of each case:
// directories "a,*", the file "b:*", test prefixes "t,*", the test "t:*",
// params prefixes "k=v;*" and finally the leaf.
type treeBuilder struct {
	suite string
	ex    *expander
}

func (b *treeBuilder) insert(parent *Subtree, name string, q query.Query) *Subtree {
	return parent.getOrInsert(name, func() *Subtree {
		return newSubtree(q, name, b.ex.collapsible(q))
	})
}

func (b *treeBuilder) addDirPath(root *Subtree, dir []string) *Subtree {
	node := root

	for i, part := range dir {
		node = b.insert(node, part+query.PathSeparator+query.Wildcard, query.MultiFile(b.suite, dir[:i+1]))
	}

	return node
}

func (b *treeBuilder) addFilePath(root *Subtree, file []string) *Subtree {
	dir := b.addDirPath(root, file[:len(file)-1])
	name := file[len(file)-1] + query.BigSeparator + query.Wildcard

	return b.insert(dir, name, query.MultiTest(b.suite, file, nil))
}

func (b *treeBuilder) addTestPath(fileNode *Subtree, file, testPath []string) *Subtree {
	node := fileNode

	for i, part := range testPath {
		node = b.insert(node, part+query.PathSeparator+query.Wildcard, query.MultiTest(b.suite, file, testPath[:i+1]))
	}

	name := testPath[len(testPath)-1] + query.BigSeparator + query.Wildcard

	return b.insert(node, name, query.MultiCase(b.suite, file, testPath, nil))
}

func (b *treeBuilder) addLeaf(testNode *Subtree, caseQuery query.Query, t *TestBuilder, p params.Params) {
	node := testNode
	public := caseQuery.Params()
	file := caseQuery.File()

	for i, kv := range public {
		name := params.StringifySingle(kv.Key, kv.Value) + query.ParamSeparator + query.Wildcard
		node = b.insert(node, name, query.MultiCase(b.suite, file, t.testPath, public[:i+1]))
	}

	b.ex.collapsible(caseQuery)

	node.insertLeaf(public.String(), &Leaf{query: caseQuery, test: t, params: p})
}
