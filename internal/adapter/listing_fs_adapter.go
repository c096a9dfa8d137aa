// Package adapter contains the storage, process and filesystem adapters
// used by the cts domain and commands.
package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	m "gooze.dev/pkg/cts/internal/model"
)

// ErrSuiteNotFound is returned when no listing exists for a suite.
var ErrSuiteNotFound = errors.New("suite not found")

const (
	readmeFile     = "README.txt"
	specFileSuffix = ".spec.go"
	listingSuffix  = ".json"
)

// ListingSource provides the ordered listing of a suite.
type ListingSource interface {
	Listing(ctx context.Context, suite string) ([]m.ListingEntry, error)
}

// ListingFSAdapter crawls test content trees and stores their listings as
// JSON files named after the suite.
type ListingFSAdapter interface {
	ListingSource
	// Crawl builds a listing from a suite source directory: every
	// README.txt becomes a directory entry and every *.spec.go file a
	// spec file entry.
	Crawl(root string) ([]m.ListingEntry, error)
	// WriteListing writes entries as the JSON listing format.
	WriteListing(w io.Writer, entries []m.ListingEntry) error
	// SaveListing writes the listing of suite into the listing directory.
	SaveListing(suite string, entries []m.ListingEntry) error
}

// LocalListingFSAdapter reads <dir>/<suite>.json listings.
type LocalListingFSAdapter struct {
	dir string
}

// NewLocalListingFSAdapter creates an adapter rooted at dir.
func NewLocalListingFSAdapter(dir string) *LocalListingFSAdapter {
	return &LocalListingFSAdapter{dir: dir}
}

// Listing loads the JSON listing of suite.
func (a *LocalListingFSAdapter) Listing(_ context.Context, suite string) ([]m.ListingEntry, error) {
	path := filepath.Join(a.dir, suite+listingSuffix)

	// #nosec G304 - listing paths come from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSuiteNotFound, suite)
		}

		return nil, err
	}

	var entries []m.ListingEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return entries, nil
}

// Crawl walks root and returns its listing sorted by path, each directory
// entry ahead of the files below it.
func (a *LocalListingFSAdapter) Crawl(root string) ([]m.ListingEntry, error) {
	var entries []m.ListingEntry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}

			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		switch {
		case name == readmeFile:
			// #nosec G304 - path comes from walking the crawl root
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			entries = append(entries, m.ListingEntry{
				File:   splitRel(filepath.Dir(rel)),
				Readme: strings.TrimSpace(string(data)),
			})
		case strings.HasSuffix(name, specFileSuffix):
			entries = append(entries, m.ListingEntry{
				File: splitRel(strings.TrimSuffix(rel, specFileSuffix)),
			})
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("crawl %s: %w", root, err)
	}

	SortListing(entries)

	return entries, nil
}

// WriteListing encodes entries as indented JSON.
func (a *LocalListingFSAdapter) WriteListing(w io.Writer, entries []m.ListingEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(entries)
}

// SaveListing writes <dir>/<suite>.json.
func (a *LocalListingFSAdapter) SaveListing(suite string, entries []m.ListingEntry) error {
	if err := os.MkdirAll(a.dir, 0o750); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(a.dir, suite+listingSuffix))
	if err != nil {
		return err
	}

	if err := a.WriteListing(f, entries); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// SortListing orders entries by path with directory entries first.
func SortListing(entries []m.ListingEntry) {
	slices.SortStableFunc(entries, func(a, b m.ListingEntry) int {
		if c := slices.Compare(a.File, b.File); c != 0 {
			return c
		}

		switch {
		case a.IsReadme() && !b.IsReadme():
			return -1
		case !a.IsReadme() && b.IsReadme():
			return 1
		default:
			return 0
		}
	})
}

func splitRel(rel string) []string {
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == "" {
		return []string{}
	}

	return strings.Split(rel, "/")
}
