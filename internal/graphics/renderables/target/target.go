// Package target renders the pointed-block highlight: a solid-color line
// outline of the face under the crosshair. No texturing, no brightness
// model.
package target

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"voxelgl/internal/graphics"
	renderer "voxelgl/internal/graphics/renderer"
	"voxelgl/internal/mesh"
	"voxelgl/internal/shading"
)

// Target implements the block-highlight render path.
type Target struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32

	active   bool
	blockPos mgl32.Vec3
	face     shading.FaceCode
	color    mgl32.Vec4
}

// NewTarget creates the highlight renderable.
func NewTarget() *Target {
	return &Target{color: mgl32.Vec4{0, 0, 0, 1}}
}

// Init compiles the solid-color pipeline and allocates the line buffer.
func (t *Target) Init() error {
	var err error
	t.shader, err = graphics.NewShader(graphics.TargetSources())
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &t.vao)
	gl.GenBuffers(1, &t.vbo)
	gl.BindVertexArray(t.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 8*3*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	return nil
}

// SetTarget points the highlight at a block face; Clear hides it.
func (t *Target) SetTarget(blockPos mgl32.Vec3, face shading.FaceCode) {
	t.blockPos = blockPos
	t.face = face
	t.active = true

	outline := mesh.TargetFaceOutline(face)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(outline)*3*4, unsafe.Pointer(&outline[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Clear hides the highlight.
func (t *Target) Clear() {
	t.active = false
}

// Render draws the face outline if a block is targeted.
func (t *Target) Render(ctx renderer.RenderContext) {
	if !t.active {
		return
	}
	model := mgl32.Translate3D(t.blockPos.X(), t.blockPos.Y(), t.blockPos.Z())

	t.shader.Use()
	t.shader.SetMatrix4("u_ViewProj", &ctx.ViewProj[0])
	t.shader.SetMatrix4("u_Model", &model[0])
	t.shader.SetVector4("u_Color", t.color[0], t.color[1], t.color[2], t.color[3])

	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.LINES, 0, 8)
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (t *Target) Dispose() {
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
	}
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}
