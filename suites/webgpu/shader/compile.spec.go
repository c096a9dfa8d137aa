package shader

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"

	"gooze.dev/pkg/cts/internal/domain"
	"gooze.dev/pkg/cts/internal/params"
	"gooze.dev/pkg/cts/internal/registry"
)

func init() {
	registry.Register(suite, "shader/compile", compileSpec)
}

const spirvMagic = 0x07230203

var stageSources = map[string]string{
	"vertex": `
@vertex
fn main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`,
	"fragment": `
@fragment
fn main(@location(0) color: vec4<f32>) -> @location(0) vec4<f32> {
    return color;
}
`,
	"compute": `
@compute @workgroup_size(1)
fn main() {
}
`,
}

var malformedSources = map[string]string{
	"unclosed_brace": `@compute @workgroup_size(1) fn main() {`,
	"missing_paren":  `@compute @workgroup_size(1) fn main( {}`,
	"bad_token":      `@compute @workgroup_size(1) fn main() { let x = 1 $ 2; }`,
}

// checkSPIRV reports whether words starts with a SPIR-V header.
func checkSPIRV(t *domain.Fixture, words []byte) bool {
	if !t.Expect(len(words) >= 20, "SPIR-V output is %d bytes, shorter than its header", len(words)) {
		return false
	}

	magic := binary.LittleEndian.Uint32(words)

	return t.Expect(magic == spirvMagic, "SPIR-V magic is 0x%08x, want 0x%08x", magic, spirvMagic)
}

func compileSpec() *domain.SpecFile {
	g := domain.NewTestGroup()

	g.Test("stage").
		Desc("A minimal entry point of each shader stage compiles to SPIR-V.").
		Params(params.Options("stage", "vertex", "fragment", "compute")).
		Fn(func(_ context.Context, t *domain.Fixture) error {
			source := stageSources[t.Params().Text("stage")]

			words, err := naga.CompileWithOptions(source, naga.CompileOptions{Validate: false})
			if !t.ExpectOK(err) {
				return nil
			}

			checkSPIRV(t, words)

			return nil
		})

	g.Test("workgroup_size").
		Desc("Compute entry points accept workgroup sizes in one to three dimensions.").
		Params(params.Options("x", 1, 8, 64).
			CombineOptions("dims", 1, 2, 3).
			Unless(func(p params.Params) bool { return p.Number("x") == 64 && p.Number("dims") == 3 })).
		Fn(func(_ context.Context, t *domain.Fixture) error {
			p := t.Params()

			size := fmt.Sprint(p.Number("x"))
			for range int(p.Number("dims")) - 1 {
				size += ", 1"
			}

			source := fmt.Sprintf("@compute @workgroup_size(%s)\nfn main() {\n}\n", size)
			t.Debug("source: %s", source)

			words, err := naga.Compile(source)
			if !t.ExpectOK(err) {
				return nil
			}

			checkSPIRV(t, words)

			return nil
		})

	g.Test("malformed").
		Desc("Syntax errors are reported instead of producing SPIR-V.").
		Params(params.Options("case", "unclosed_brace", "missing_paren", "bad_token")).
		Fn(func(_ context.Context, t *domain.Fixture) error {
			source := malformedSources[t.Params().Text("case")]

			words, err := naga.Compile(source)
			t.Expect(err != nil, "compiled %d bytes from malformed source", len(words))

			return nil
		})

	g.Test("overrides").
		Desc("TODO: pipeline-overridable constants need a device to specialize.").
		Unimplemented()

	return &domain.SpecFile{
		Description: "WGSL to SPIR-V compilation of shader entry points.",
		G:           g,
	}
}
