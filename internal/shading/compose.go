package shading

import "github.com/go-gl/mathgl/mgl32"

// Compose multiplies a sampled or flat color by the brightness factor.
// Alpha is forced to 1.0 after the multiply regardless of the input's own
// alpha; the atlas format plays no role in transparency here.
func Compose(brightness float32, color mgl32.Vec3) mgl32.Vec4 {
	return mgl32.Vec4{
		brightness * color[0],
		brightness * color[1],
		brightness * color[2],
		1.0,
	}
}

// ComposeSampled is Compose over a sampled RGBA color; the sample's alpha is
// discarded.
func ComposeSampled(brightness float32, sample mgl32.Vec4) mgl32.Vec4 {
	return Compose(brightness, mgl32.Vec3{sample[0], sample[1], sample[2]})
}
