package shading

import "github.com/go-gl/mathgl/mgl32"

// FaceCode is a 3-bit face direction code.
type FaceCode uint8

const (
	FacePosX FaceCode = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// faceNormals is total over the 3-bit domain; codes 6 and 7 should never be
// produced by a conforming mesher but fall back to -Z so malformed input
// still yields a defined unit vector.
var faceNormals = [8]mgl32.Vec3{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
	{0, 0, -1},
	{0, 0, -1},
}

// FaceNormal maps a face code to its unit normal.
func FaceNormal(code FaceCode) mgl32.Vec3 {
	return faceNormals[code&0x7]
}

// faceNormalsGLSL is the same table rendered as a GLSL constant array, kept
// next to faceNormals so the two stay in sync.
const faceNormalsGLSL = `const vec3 FACE_NORMALS[8] = vec3[8](
    vec3(1.0, 0.0, 0.0), vec3(-1.0, 0.0, 0.0),
    vec3(0.0, 1.0, 0.0), vec3(0.0, -1.0, 0.0),
    vec3(0.0, 0.0, 1.0), vec3(0.0, 0.0, -1.0),
    vec3(0.0, 0.0, -1.0), vec3(0.0, 0.0, -1.0)
);
`

// FaceNormalsGLSL returns the normal table for inclusion in shader preambles.
func FaceNormalsGLSL() string { return faceNormalsGLSL }
