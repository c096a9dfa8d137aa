package adapter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/cts/internal/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLocalListingFSAdapter_Crawl(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "README.txt"), "  the suite\n")
	writeFile(t, filepath.Join(root, "api", "README.txt"), "api tests")
	writeFile(t, filepath.Join(root, "api", "buffer", "map.spec.go"), "package buffer")
	writeFile(t, filepath.Join(root, "api", "buffer", "create.spec.go"), "package buffer")
	writeFile(t, filepath.Join(root, "api", "helpers.go"), "package api")
	writeFile(t, filepath.Join(root, "shader", "validation.spec.go"), "package shader")
	writeFile(t, filepath.Join(root, "_skipped", "x.spec.go"), "package skipped")
	writeFile(t, filepath.Join(root, ".hidden", "y.spec.go"), "package hidden")

	entries, err := NewLocalListingFSAdapter("").Crawl(root)
	require.NoError(t, err)

	assert.Equal(t, []m.ListingEntry{
		{File: []string{}, Readme: "the suite"},
		{File: []string{"api"}, Readme: "api tests"},
		{File: []string{"api", "buffer", "create"}},
		{File: []string{"api", "buffer", "map"}},
		{File: []string{"shader", "validation"}},
	}, entries)
}

func TestLocalListingFSAdapter_Crawl_MissingRoot(t *testing.T) {
	_, err := NewLocalListingFSAdapter("").Crawl(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLocalListingFSAdapter_SaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "listings")
	a := NewLocalListingFSAdapter(dir)

	entries := []m.ListingEntry{
		{File: []string{}, Readme: "root"},
		{File: []string{"a", "b"}},
	}

	require.NoError(t, a.SaveListing("webgpu", entries))

	got, err := a.Listing(context.Background(), "webgpu")
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	_, err = a.Listing(context.Background(), "other")
	require.ErrorIs(t, err, ErrSuiteNotFound)

	writeFile(t, filepath.Join(dir, "broken.json"), "{")
	_, err = a.Listing(context.Background(), "broken")
	assert.Error(t, err)
}

func TestLocalListingFSAdapter_WriteListing(t *testing.T) {
	var buf bytes.Buffer

	err := NewLocalListingFSAdapter("").WriteListing(&buf, []m.ListingEntry{
		{File: []string{}, Readme: "root"},
		{File: []string{"a"}},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `[{"file":[],"readme":"root"},{"file":["a"]}]`, buf.String())
}

func TestSortListing(t *testing.T) {
	entries := []m.ListingEntry{
		{File: []string{"b"}},
		{File: []string{"a", "z"}},
		{File: []string{"a"}, Readme: "dir a"},
		{File: []string{}, Readme: "root"},
		{File: []string{"a", "b"}},
	}

	SortListing(entries)

	assert.Equal(t, []m.ListingEntry{
		{File: []string{}, Readme: "root"},
		{File: []string{"a"}, Readme: "dir a"},
		{File: []string{"a", "b"}},
		{File: []string{"a", "z"}},
		{File: []string{"b"}},
	}, entries)
}
