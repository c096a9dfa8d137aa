package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/cts/internal/model"
)

// ExpectationStore reads and writes expectation files.
type ExpectationStore interface {
	LoadExpectations(path string) ([]m.QueryExpectation, error)
	SaveExpectations(path string, expectations []m.QueryExpectation) error
}

type expectationsFile struct {
	Expectations []m.QueryExpectation `yaml:"expectations"`
}

// YAMLExpectationStore stores expectations as YAML:
//
//	expectations:
//	  - query: webgpu:api,buffer,*
//	    expectation: fail
type YAMLExpectationStore struct{}

// NewYAMLExpectationStore returns a YAMLExpectationStore.
func NewYAMLExpectationStore() *YAMLExpectationStore {
	return &YAMLExpectationStore{}
}

// LoadExpectations reads path. An empty path yields no expectations.
func (s *YAMLExpectationStore) LoadExpectations(path string) ([]m.QueryExpectation, error) {
	if path == "" {
		return nil, nil
	}

	// #nosec G304 - expectation paths come from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("expectations file %s: %w", path, err)
		}

		return nil, err
	}

	var file expectationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	for i, e := range file.Expectations {
		if !e.Expectation.Valid() {
			return nil, fmt.Errorf("%s: entry %d (%s): unknown expectation %q", path, i, e.Query, e.Expectation)
		}
	}

	return file.Expectations, nil
}

// SaveExpectations writes expectations to path.
func (s *YAMLExpectationStore) SaveExpectations(path string, expectations []m.QueryExpectation) error {
	data, err := yaml.Marshal(expectationsFile{Expectations: expectations})
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
