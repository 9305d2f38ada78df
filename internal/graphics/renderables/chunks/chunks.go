// Package chunks renders world geometry from either of the two chunk vertex
// formats: the expanded per-vertex tile-bounds format sampled from the
// shared atlas, and the compact packed-attribute format shaded with flat
// per-face colors. The two formats are mutually exclusive per mesh, selected
// by which Set call the mesher uses.
package chunks

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"voxelgl/internal/config"
	"voxelgl/internal/graphics"
	renderer "voxelgl/internal/graphics/renderer"
	"voxelgl/internal/mesh"
	"voxelgl/internal/profiling"
	"voxelgl/internal/shading"
)

// Default face tint for the untextured packed path, one entry per face code.
var defaultFaceColors = [6]mgl32.Vec3{
	{0.80, 0.80, 0.80},
	{0.70, 0.70, 0.70},
	{0.95, 0.95, 0.95},
	{0.55, 0.55, 0.55},
	{0.85, 0.85, 0.85},
	{0.65, 0.65, 0.65},
}

// Chunks implements chunk rendering over both vertex formats.
type Chunks struct {
	atlasShader  *graphics.Shader
	packedShader *graphics.Shader

	layout  shading.Layout
	variant shading.Variant

	atlasTexture uint32

	meshes       map[Key]*chunkMesh // expanded format
	packedMeshes map[Key]*chunkMesh
}

// NewChunks creates the chunk renderable for one attribute layout and
// shading variant. The layout is fixed at pipeline creation; it is never
// inferred from vertex data.
func NewChunks(layout shading.Layout, variant shading.Variant, atlasTexture uint32) *Chunks {
	return &Chunks{
		layout:       layout,
		variant:      variant,
		atlasTexture: atlasTexture,
		meshes:       make(map[Key]*chunkMesh),
		packedMeshes: make(map[Key]*chunkMesh),
	}
}

// Init compiles both pipelines against the active layout and uploads the
// static uniforms.
func (c *Chunks) Init() error {
	cfg := config.Current()

	var err error
	c.atlasShader, err = graphics.NewShader(
		graphics.ChunkSources(c.layout, c.variant, !cfg.UnsafeFiltering))
	if err != nil {
		return err
	}
	c.packedShader, err = graphics.NewShader(
		graphics.ChunkPackedSources(c.layout, c.variant))
	if err != nil {
		return err
	}

	occl := cfg.OcclusionTable
	c.atlasShader.Use()
	c.atlasShader.SetFloatArray("u_OcclusionTable", occl[:])
	c.atlasShader.SetInt("u_Atlas", 0)

	c.packedShader.Use()
	c.packedShader.SetFloatArray("u_OcclusionTable", occl[:])
	for i, fc := range defaultFaceColors {
		c.packedShader.SetVector3(faceColorUniform(i), fc.X(), fc.Y(), fc.Z())
	}
	return nil
}

func faceColorUniform(i int) string {
	return "u_FaceColors[" + string(rune('0'+i)) + "]"
}

// SetMesh uploads (or replaces) an expanded-format chunk mesh. Vertices
// carry world-space positions; no model matrix is involved on this path.
func (c *Chunks) SetMesh(key Key, verts []mesh.ChunkVertex, indices []uint32) {
	m := c.ensureMesh(c.meshes, key)
	if len(verts) == 0 || len(indices) == 0 {
		m.indexCount = 0
		return
	}

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*mesh.ChunkVertexStride,
		unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	stride := int32(mesh.ChunkVertexStride)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 2, gl.FLOAT, false, stride, gl.PtrOffset(7*4))
	gl.EnableVertexAttribArray(4)
	gl.VertexAttribPointer(4, 2, gl.FLOAT, false, stride, gl.PtrOffset(9*4))
	gl.EnableVertexAttribArray(5)
	gl.VertexAttribIPointer(5, 1, gl.UNSIGNED_INT, stride, gl.PtrOffset(11*4))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4,
		unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	m.indexCount = int32(len(indices))
}

// SetPackedMesh uploads a packed-format chunk mesh with its model matrix
// (the older path keeps chunk-local positions and positions via u_Model).
func (c *Chunks) SetPackedMesh(key Key, verts []mesh.PackedVertex, indices []uint32, model mgl32.Mat4) {
	m := c.ensureMesh(c.packedMeshes, key)
	m.model = model
	if len(verts) == 0 || len(indices) == 0 {
		m.indexCount = 0
		return
	}

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*mesh.PackedVertexStride,
		unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	stride := int32(mesh.PackedVertexStride)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribIPointer(1, 1, gl.UNSIGNED_INT, stride, gl.PtrOffset(3*4))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4,
		unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	m.indexCount = int32(len(indices))
}

// RemoveMesh drops a chunk's meshes on both paths.
func (c *Chunks) RemoveMesh(key Key) {
	for _, set := range []map[Key]*chunkMesh{c.meshes, c.packedMeshes} {
		if m, ok := set[key]; ok {
			deleteMesh(m)
			delete(set, key)
		}
	}
}

func (c *Chunks) ensureMesh(set map[Key]*chunkMesh, key Key) *chunkMesh {
	m := set[key]
	if m == nil {
		m = &chunkMesh{model: mgl32.Ident4()}
		gl.GenVertexArrays(1, &m.vao)
		gl.GenBuffers(1, &m.vbo)
		gl.GenBuffers(1, &m.ebo)
		set[key] = m
	}
	return m
}

// Render draws all chunk meshes.
func (c *Chunks) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderChunks")()

	cfg := config.Current()
	sun := cfg.SunDirectionVec()

	if len(c.meshes) > 0 {
		c.atlasShader.Use()
		c.atlasShader.SetMatrix4("u_ViewProj", &ctx.ViewProj[0])
		c.atlasShader.SetVector3("u_SunDirection", sun.X(), sun.Y(), sun.Z())
		c.atlasShader.SetFloat("u_SunFraction", cfg.WorldSunFraction)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, c.atlasTexture)

		for _, m := range c.meshes {
			if m.indexCount == 0 {
				continue
			}
			gl.BindVertexArray(m.vao)
			gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
		}
	}

	if len(c.packedMeshes) > 0 {
		c.packedShader.Use()
		c.packedShader.SetMatrix4("u_ViewProj", &ctx.ViewProj[0])
		c.packedShader.SetVector3("u_SunDirection", sun.X(), sun.Y(), sun.Z())
		c.packedShader.SetFloat("u_SunFraction", cfg.WorldSunFraction)

		for _, m := range c.packedMeshes {
			if m.indexCount == 0 {
				continue
			}
			c.packedShader.SetMatrix4("u_Model", &m.model[0])
			gl.BindVertexArray(m.vao)
			gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
		}
	}

	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (c *Chunks) Dispose() {
	for _, set := range []map[Key]*chunkMesh{c.meshes, c.packedMeshes} {
		for _, m := range set {
			deleteMesh(m)
		}
	}
	c.meshes = map[Key]*chunkMesh{}
	c.packedMeshes = map[Key]*chunkMesh{}
	if c.atlasShader != nil {
		c.atlasShader.Delete()
	}
	if c.packedShader != nil {
		c.packedShader.Delete()
	}
}

func deleteMesh(m *chunkMesh) {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}
