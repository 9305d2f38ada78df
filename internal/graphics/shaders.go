package graphics

import (
	"embed"
	"fmt"
	"strings"

	"voxelgl/internal/shading"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS

// PipelineSources is a matched vertex/fragment source pair, fully assembled
// with the preamble for one pipeline configuration.
type PipelineSources struct {
	Vertex   string
	Fragment string
}

func mustRead(name string) string {
	data, err := shaderFS.ReadFile("shaders/" + name)
	if err != nil {
		// The sources are embedded; a missing file is a build defect.
		panic(fmt.Sprintf("embedded shader %s: %v", name, err))
	}
	return string(data)
}

func assemble(body string, defines ...string) string {
	var b strings.Builder
	b.WriteString("#version 410 core\n")
	for _, d := range defines {
		b.WriteString(d)
	}
	b.WriteString(body)
	return b.String()
}

func epsilonDefine() string {
	return fmt.Sprintf("#define UV_EPSILON %g\n", shading.UVEpsilon)
}

// ChunkSources assembles the expanded-format chunk pipeline. The attribute
// layout's shifts and masks are injected as defines so the GLSL decode is
// generated from the same constants the mesher encodes with. filteringSafe
// selects the derivative-aware sampling path; the implicit-derivative
// variant is only valid with mips and multisampling off.
func ChunkSources(layout shading.Layout, variant shading.Variant, filteringSafe bool) PipelineSources {
	fragDefines := []string{variant.Directional.GLSLDefine(), epsilonDefine()}
	if !filteringSafe {
		fragDefines = append(fragDefines, "#define FILTERING_UNSAFE 1\n")
	}
	return PipelineSources{
		Vertex:   assemble(mustRead("chunk.vert"), layout.GLSLDefines(), shading.FaceNormalsGLSL()),
		Fragment: assemble(mustRead("chunk.frag"), fragDefines...),
	}
}

// ChunkPackedSources assembles the packed-format chunk pipeline (older path:
// one uint32 attribute, flat per-face colors, separate model matrix).
func ChunkPackedSources(layout shading.Layout, variant shading.Variant) PipelineSources {
	return PipelineSources{
		Vertex:   assemble(mustRead("chunk_packed.vert"), layout.GLSLDefines(), shading.FaceNormalsGLSL()),
		Fragment: assemble(mustRead("chunk_packed.frag"), variant.Directional.GLSLDefine()),
	}
}

// ModelSources assembles the standalone-model pipeline (flat 24-bit vertex
// colors, symmetric directional term).
func ModelSources(variant shading.Variant) PipelineSources {
	return PipelineSources{
		Vertex:   assemble(mustRead("model.vert"), shading.FaceNormalsGLSL()),
		Fragment: assemble(mustRead("model.frag"), variant.Directional.GLSLDefine()),
	}
}

// SkyboxSources assembles the procedural sky background pipeline.
func SkyboxSources() PipelineSources {
	return PipelineSources{
		Vertex:   assemble(mustRead("skybox.vert")),
		Fragment: assemble(mustRead("skybox.frag")),
	}
}

// TargetSources assembles the solid-color block-highlight pipeline.
func TargetSources() PipelineSources {
	return PipelineSources{
		Vertex:   assemble(mustRead("target.vert")),
		Fragment: assemble(mustRead("target.frag")),
	}
}
