// Package main is the entry point for the cts CLI.
package main

import (
	"gooze.dev/pkg/cts/cmd"

	// Test suites.
	_ "gooze.dev/pkg/cts/suites/unittests"
	_ "gooze.dev/pkg/cts/suites/webgpu"
)

func main() {
	cmd.Execute()
}
