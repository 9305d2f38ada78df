package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame context for all renderables
type RenderContext struct {
	View      mgl32.Mat4
	Proj      mgl32.Mat4
	ViewProj  mgl32.Mat4
	CameraPos mgl32.Vec3
	DT        float64
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
