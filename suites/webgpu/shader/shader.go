// Package shader holds the webgpu:shader,* spec files.
package shader

import "gooze.dev/pkg/cts/internal/registry"

const suite = "webgpu"

func init() {
	registry.RegisterReadme(suite, "shader", "Tests of the WGSL shading language front end.")
}
