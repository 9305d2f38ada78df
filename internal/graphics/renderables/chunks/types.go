package chunks

import "github.com/go-gl/mathgl/mgl32"

// Key identifies one chunk mesh.
type Key struct {
	X, Y, Z int
}

type chunkMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	// model is only used by the packed path; the expanded path bakes world
	// position into vertex positions.
	model mgl32.Mat4
}
