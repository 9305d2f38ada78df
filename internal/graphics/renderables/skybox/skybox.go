// Package skybox renders the procedural sky: a far cube centered on the
// camera whose fragments evaluate atmosphere, scatter and sun terms from the
// view direction alone. It consumes no mesh data from the world.
package skybox

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"voxelgl/internal/graphics"
	renderer "voxelgl/internal/graphics/renderer"
	"voxelgl/internal/shading"
)

// far is the cube half-extent; it must stay inside the camera far plane.
const far = 900.0

// Skybox implements the background sky pass.
type Skybox struct {
	shader     *graphics.Shader
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	sky        shading.Sky
}

// NewSkybox creates the sky renderable with the given tuning.
func NewSkybox(sky shading.Sky) *Skybox {
	return &Skybox{sky: sky}
}

// cube returns the six far quads and their fixed index pattern.
func cube() ([]float32, []uint32) {
	faces := [6][4][3]float32{
		// east, west, up, down, south, north
		{{far, -far, -far}, {far, -far, far}, {far, far, -far}, {far, far, far}},
		{{-far, -far, -far}, {-far, -far, far}, {-far, far, -far}, {-far, far, far}},
		{{-far, far, -far}, {-far, far, far}, {far, far, -far}, {far, far, far}},
		{{-far, -far, -far}, {-far, -far, far}, {far, -far, -far}, {far, -far, far}},
		{{-far, -far, far}, {-far, far, far}, {far, -far, far}, {far, far, far}},
		{{-far, -far, -far}, {-far, far, -far}, {far, -far, -far}, {far, far, -far}},
	}
	pattern := [6]uint32{0, 1, 2, 3, 2, 1}

	verts := make([]float32, 0, 6*4*3)
	indices := make([]uint32, 0, 6*6)
	for i, face := range faces {
		for _, v := range face {
			verts = append(verts, v[0], v[1], v[2])
		}
		for _, p := range pattern {
			indices = append(indices, p+uint32(i*4))
		}
	}
	return verts, indices
}

// Init compiles the sky pipeline and uploads the cube and tuning.
func (s *Skybox) Init() error {
	var err error
	s.shader, err = graphics.NewShader(graphics.SkyboxSources())
	if err != nil {
		return err
	}

	verts, indices := cube()
	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.GenBuffers(1, &s.ebo)

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
	s.indexCount = int32(len(indices))

	sky := s.sky
	s.shader.Use()
	s.shader.SetVector3("u_SunDirection", sky.SunDirection.X(), sky.SunDirection.Y(), sky.SunDirection.Z())
	s.shader.SetVector3("u_SkyColor", sky.SkyColor.X(), sky.SkyColor.Y(), sky.SkyColor.Z())
	s.shader.SetVector3("u_ScatterTint", sky.ScatterTint.X(), sky.ScatterTint.Y(), sky.ScatterTint.Z())
	s.shader.SetVector3("u_SunColor", sky.SunColor.X(), sky.SunColor.Y(), sky.SunColor.Z())
	s.shader.SetFloat("u_HeightFalloff", sky.HeightFalloff)
	s.shader.SetFloat("u_DiscPower", sky.DiscPower)
	s.shader.SetFloat("u_GlowPower", sky.GlowPower)
	return nil
}

// SetSun updates the sun direction (for a moving sun).
func (s *Skybox) SetSun(dir mgl32.Vec3) {
	s.sky.SunDirection = dir.Normalize()
	s.shader.Use()
	s.shader.SetVector3("u_SunDirection", s.sky.SunDirection.X(), s.sky.SunDirection.Y(), s.sky.SunDirection.Z())
}

// Render draws the sky cube centered on the camera. Both cube faces matter
// when the camera turns, so face culling is suspended for the pass.
func (s *Skybox) Render(ctx renderer.RenderContext) {
	model := mgl32.Translate3D(ctx.CameraPos.X(), ctx.CameraPos.Y(), ctx.CameraPos.Z())

	s.shader.Use()
	s.shader.SetMatrix4("u_ViewProj", &ctx.ViewProj[0])
	s.shader.SetMatrix4("u_Model", &model[0])

	gl.Disable(gl.CULL_FACE)
	gl.BindVertexArray(s.vao)
	gl.DrawElements(gl.TRIANGLES, s.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	gl.Enable(gl.CULL_FACE)
}

// Dispose cleans up OpenGL resources
func (s *Skybox) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.ebo != 0 {
		gl.DeleteBuffers(1, &s.ebo)
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}
