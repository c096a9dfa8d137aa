// Package registry maps suite file paths to lazily built spec files.
// Suite packages register their spec files from init functions.
package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gooze.dev/pkg/cts/internal/adapter"
	"gooze.dev/pkg/cts/internal/domain"
	m "gooze.dev/pkg/cts/internal/model"
)

// ErrNotRegistered is returned for a file no suite package registered.
var ErrNotRegistered = errors.New("spec file not registered")

// Registry holds spec files and readmes per suite. It implements both
// adapter.ListingSource and domain.SpecImporter.
type Registry struct {
	mu     sync.Mutex
	suites map[string]*suite
}

type suite struct {
	readmes map[string]string
	files   map[string]*specEntry
}

type specEntry struct {
	once  sync.Once
	build func() *domain.SpecFile
	spec  *domain.SpecFile
	err   error
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{suites: make(map[string]*suite)}
}

// Default is the registry suite packages register into.
var Default = New()

// Register adds a spec file to Default. See Registry.Register.
func Register(suiteName, file string, build func() *domain.SpecFile) {
	Default.Register(suiteName, file, build)
}

// RegisterReadme adds a directory description to Default.
func RegisterReadme(suiteName, dir, readme string) {
	Default.RegisterReadme(suiteName, dir, readme)
}

func (r *Registry) suite(name string) *suite {
	s, ok := r.suites[name]
	if !ok {
		s = &suite{readmes: make(map[string]string), files: make(map[string]*specEntry)}
		r.suites[name] = s
	}

	return s
}

// Register adds the spec file at a slash-separated path such as
// "api/buffer". build runs at most once, on first import. Registering a
// path twice panics.
func (r *Registry) Register(suiteName, file string, build func() *domain.SpecFile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.suite(suiteName)
	if _, exists := s.files[file]; exists {
		panic(fmt.Sprintf("registry: %s:%s registered twice", suiteName, file))
	}

	s.files[file] = &specEntry{build: build}
}

// RegisterReadme describes a directory. An empty dir describes the suite.
func (r *Registry) RegisterReadme(suiteName, dir, readme string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.suite(suiteName).readmes[dir] = strings.TrimSpace(readme)
}

// Suites returns the registered suite names, sorted.
func (r *Registry) Suites() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.suites))
	for name := range r.suites {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Listing derives the listing of a suite from its registrations.
func (r *Registry) Listing(_ context.Context, suiteName string) ([]m.ListingEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.suites[suiteName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", adapter.ErrSuiteNotFound, suiteName)
	}

	entries := make([]m.ListingEntry, 0, len(s.readmes)+len(s.files))

	for dir, readme := range s.readmes {
		entries = append(entries, m.ListingEntry{File: splitPath(dir), Readme: readme})
	}

	for file := range s.files {
		entries = append(entries, m.ListingEntry{File: splitPath(file)})
	}

	adapter.SortListing(entries)

	return entries, nil
}

// ImportSpecFile builds the spec file on first use and returns the same
// value afterwards. A panicking build is reported as an error.
func (r *Registry) ImportSpecFile(_ context.Context, suiteName string, file []string) (*domain.SpecFile, error) {
	key := strings.Join(file, "/")

	r.mu.Lock()

	var entry *specEntry
	if s, ok := r.suites[suiteName]; ok {
		entry = s.files[key]
	}

	r.mu.Unlock()

	if entry == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotRegistered, suiteName, key)
	}

	entry.once.Do(func() {
		defer func() {
			if p := recover(); p != nil {
				entry.err = fmt.Errorf("build %s/%s: %v", suiteName, key, p)
			}
		}()

		entry.spec = entry.build()
		if entry.spec == nil || entry.spec.G == nil {
			entry.err = fmt.Errorf("build %s/%s: no test group", suiteName, key)
		}
	})

	return entry.spec, entry.err
}

func splitPath(p string) []string {
	if p == "" {
		return []string{}
	}

	return strings.Split(p, "/")
}
