package graphics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxelgl/internal/shading"
)

func TestChunkSourcesPreamble(t *testing.T) {
	src := ChunkSources(shading.LayoutFaceOcclLight, shading.VariantWorld, true)

	require.True(t, strings.HasPrefix(src.Vertex, "#version 410 core\n"))
	require.True(t, strings.HasPrefix(src.Fragment, "#version 410 core\n"))

	// The vertex decode is generated from the mesher's packing constants.
	assert.Contains(t, src.Vertex, "#define FACE_SHIFT 0u")
	assert.Contains(t, src.Vertex, "#define FACE_MASK 7u")
	assert.Contains(t, src.Vertex, "#define OCCL_SHIFT 3u")
	assert.Contains(t, src.Vertex, "#define OCCL_MASK 3u")
	assert.Contains(t, src.Vertex, "#define LIGHT_SHIFT 5u")
	assert.Contains(t, src.Vertex, "#define LIGHT_MASK 15u")
	// The #ifdef guard is always present in the source; only the define
	// itself depends on the layout.
	assert.NotContains(t, src.Vertex, "#define OCCL_COARSE")
	assert.Contains(t, src.Vertex, "#ifdef OCCL_COARSE")
	assert.Contains(t, src.Vertex, "FACE_NORMALS")

	assert.Contains(t, src.Fragment, "#define DIRECTIONAL_MODE 0")
	assert.Contains(t, src.Fragment, "#define UV_EPSILON 1e-07")
}

func TestChunkSourcesCoarseLayout(t *testing.T) {
	src := ChunkSources(shading.LayoutCoarseOcclusion, shading.VariantWorld, true)
	assert.Contains(t, src.Vertex, "#define OCCL_MASK 31u")
	assert.Contains(t, src.Vertex, "#define OCCL_COARSE 1")
	assert.Contains(t, src.Vertex, "#define LIGHT_SHIFT 8u")
}

func TestChunkFragmentFilteringPaths(t *testing.T) {
	safe := ChunkSources(shading.LayoutFaceOcclLight, shading.VariantWorld, true).Fragment
	unsafe := ChunkSources(shading.LayoutFaceOcclLight, shading.VariantWorld, false).Fragment

	assert.NotContains(t, safe, "#define FILTERING_UNSAFE")
	assert.Contains(t, unsafe, "#define FILTERING_UNSAFE 1")

	// The safe path takes derivatives of the clamped coordinate before the
	// wrap, then samples with explicit gradients. Inspect only the #else
	// branch; the unsafe branch also wraps.
	elseIdx := strings.Index(safe, "#else")
	require.NotEqual(t, -1, elseIdx)
	safeBranch := safe[elseIdx:]

	clampIdx := strings.Index(safe, "clamp(v_UV")
	dfdxIdx := strings.Index(safeBranch, "dFdx(localUV)")
	modIdx := strings.Index(safeBranch, "mod(localUV, v_Size)")
	gradIdx := strings.Index(safeBranch, "textureGrad")
	require.NotEqual(t, -1, clampIdx)
	require.NotEqual(t, -1, dfdxIdx)
	require.NotEqual(t, -1, modIdx)
	require.NotEqual(t, -1, gradIdx)
	assert.Less(t, clampIdx, elseIdx, "clamp before both branches")
	assert.Less(t, dfdxIdx, modIdx, "derivatives before wrap")
	assert.Less(t, modIdx, gradIdx, "wrap before sample")
}

func TestFragmentForcesOpaqueAlpha(t *testing.T) {
	for name, frag := range map[string]string{
		"chunk":        ChunkSources(shading.LayoutFaceOcclLight, shading.VariantWorld, true).Fragment,
		"chunk_packed": ChunkPackedSources(shading.LayoutFaceOcclLight, shading.VariantWorld).Fragment,
		"model":        ModelSources(shading.VariantModel).Fragment,
		"target":       TargetSources().Fragment,
	} {
		assert.Contains(t, frag, ", 1.0)", "%s output alpha", name)
	}
}

func TestModelSourcesDirectionalMode(t *testing.T) {
	src := ModelSources(shading.VariantModel)
	assert.Contains(t, src.Fragment, "#define DIRECTIONAL_MODE 1")
}

func TestFlatVaryings(t *testing.T) {
	src := ChunkSources(shading.LayoutFaceOcclLight, shading.VariantWorld, true)
	assert.Contains(t, src.Vertex, "flat out vec3 v_Normal;")
	assert.Contains(t, src.Vertex, "flat out float v_Occlusion;")
	assert.Contains(t, src.Vertex, "flat out float v_Light;")
	assert.Contains(t, src.Fragment, "flat in vec3 v_Normal;")
	// UVs interpolate normally.
	assert.Contains(t, src.Fragment, "\nin vec2 v_UV;")
}

func TestSkyboxSourcesAssemble(t *testing.T) {
	src := SkyboxSources()
	assert.Contains(t, src.Fragment, "u_SunDirection")
	assert.Contains(t, src.Fragment, "u_HeightFalloff")
	assert.True(t, strings.HasPrefix(src.Vertex, "#version 410 core\n"))
}
