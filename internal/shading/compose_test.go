package shading

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestComposeForcesOpaqueAlpha(t *testing.T) {
	c := Compose(0.5, mgl32.Vec3{1, 0.5, 0.25})
	assert.Equal(t, mgl32.Vec4{0.5, 0.25, 0.125, 1}, c)

	// Sample alpha is discarded, not multiplied through.
	cs := ComposeSampled(1, mgl32.Vec4{0.2, 0.4, 0.6, 0})
	assert.Equal(t, mgl32.Vec4{0.2, 0.4, 0.6, 1}, cs)
}

func TestComposeScalesAllChannels(t *testing.T) {
	white := mgl32.Vec3{1, 1, 1}
	dim := Compose(0.4, white)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.4, float64(dim[i]), 1e-6)
	}
}
