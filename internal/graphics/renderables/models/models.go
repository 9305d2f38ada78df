// Package models renders standalone voxel models (items, characters) with
// flat per-vertex colors and the symmetric directional term. Each instance
// positions a registered mesh with its own model matrix.
package models

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

// Instance places one registered mesh in the world.
type Instance struct {
	MeshID uint32
	Pos    mgl32.Vec3
	Scale  float32
	RotY   float32
	// RotOffset is applied before rotating, so models spin around their
	// visual center instead of their corner.
	RotOffset mgl32.Vec3
}

// Matrix builds the instance's model matrix: scale, recenter, rotate around
// Y, then translate into place.
func (in Instance) Matrix() mgl32.Mat4 {
	scale := in.Scale
	if scale == 0 {
		scale = 1
	}
	m := mgl32.Translate3D(
		in.Pos.X()+in.RotOffset.X(),
		in.Pos.Y()+in.RotOffset.Y(),
		in.Pos.Z()+in.RotOffset.Z(),
	)
	m = m.Mul4(mgl32.HomogRotate3DY(in.RotY))
	m = m.Mul4(mgl32.Translate3D(-in.RotOffset.X(), -in.RotOffset.Y(), -in.RotOffset.Z()))
	m = m.Mul4(mgl32.Scale3D(scale, scale, scale))
	return m
}

type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Models implements the standalone-model render path.
type Models struct {
	shader    *graphics.Shader
	variant   shading.Variant
	meshes    map[uint32]*glMesh
	instances []Instance
}

// NewModels creates the model renderable with the model shading variant.
func NewModels() *Models {
	return &Models{
		variant: shading.VariantModel,
		meshes:  make(map[uint32]*glMesh),
	}
}

// Init compiles the model pipeline and uploads static uniforms.
func (ms *Models) Init() error {
	var err error
	ms.shader, err = graphics.NewShader(graphics.ModelSources(ms.variant))
	if err != nil {
		return err
	}
	occl := config.Current().OcclusionTable
	ms.shader.Use()
	ms.shader.SetFloatArray("u_OcclusionTable", occl[:])
	return nil
}

// RegisterMesh uploads a model mesh under an id; instances reference it.
func (ms *Models) RegisterMesh(id uint32, verts []mesh.ModelVertex, indices []uint32) {
	m := ms.meshes[id]
	if m == nil {
		m = &glMesh{}
		gl.GenVertexArrays(1, &m.vao)
		gl.GenBuffers(1, &m.vbo)
		gl.GenBuffers(1, &m.ebo)
		ms.meshes[id] = m
	}
	if len(verts) == 0 || len(indices) == 0 {
		m.indexCount = 0
		return
	}

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*mesh.ModelVertexStride,
		unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	stride := int32(mesh.ModelVertexStride)
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

// SetInstances replaces the drawn instances for this frame onward.
func (ms *Models) SetInstances(instances []Instance) {
	ms.instances = instances
}

// Render draws all instances.
func (ms *Models) Render(ctx renderer.RenderContext) {
	if len(ms.instances) == 0 {
		return
	}
	defer profiling.Track("renderer.renderModels")()

	cfg := config.Current()
	sun := cfg.SunDirectionVec()

	ms.shader.Use()
	ms.shader.SetMatrix4("u_ViewProj", &ctx.ViewProj[0])
	ms.shader.SetVector3("u_SunDirection", sun.X(), sun.Y(), sun.Z())
	ms.shader.SetFloat("u_SunFraction", cfg.ModelSunFraction)

	for _, in := range ms.instances {
		m := ms.meshes[in.MeshID]
		if m == nil || m.indexCount == 0 {
			continue
		}
		model := in.Matrix()
		ms.shader.SetMatrix4("u_Model", &model[0])
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	}
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (ms *Models) Dispose() {
	for _, m := range ms.meshes {
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
	ms.meshes = map[uint32]*glMesh{}
	if ms.shader != nil {
		ms.shader.Delete()
	}
}
