// Package unittests registers the self-test suite of the cts framework.
// Each *.spec.go file registers one spec file from its init function.
package unittests

import "gooze.dev/pkg/cts/internal/registry"

// Suite is the suite name used in queries, as in unittests:logger:*.
const Suite = "unittests"

func init() {
	registry.RegisterReadme(Suite, "", "Unit tests for the CTS framework.")
}
