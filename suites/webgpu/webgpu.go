// Package webgpu registers a sample WebGPU conformance suite. Shader tests
// compile WGSL with naga; API tests check WebGPU usage rules on gputypes.
package webgpu

import (
	"gooze.dev/pkg/cts/internal/registry"

	// Spec files.
	_ "gooze.dev/pkg/cts/suites/webgpu/api"
	_ "gooze.dev/pkg/cts/suites/webgpu/shader"
)

func init() {
	registry.RegisterReadme("webgpu", "", "WebGPU conformance test suite.")
}
