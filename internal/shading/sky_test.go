package shading

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSkyAlphaAlwaysOne(t *testing.T) {
	s := DefaultSky()
	for _, dir := range []mgl32.Vec3{
		{0, 1, 0}, {0, -1, 0}, {1, 0, 0}, {3, -2, 5}, s.SunDirection,
	} {
		assert.Equal(t, float32(1), s.Evaluate(dir)[3], "dir %v", dir)
	}
}

func TestSkyBrightestTowardsSun(t *testing.T) {
	s := DefaultSky()
	atSun := s.Evaluate(s.SunDirection)
	away := s.Evaluate(s.SunDirection.Mul(-1))
	for i := 0; i < 3; i++ {
		assert.Greater(t, atSun[i], away[i], "channel %d", i)
	}
	// The disc pushes the sun direction past plain sky color.
	assert.Greater(t, atSun[0], s.SkyColor[0]+s.SunColor[0]*0.5)
}

func TestSkyHorizonAsymmetry(t *testing.T) {
	s := DefaultSky()
	// Equal angles above and below the horizon, both facing away from the
	// sun so the disc term stays out of the comparison.
	horizontal := mgl32.Vec3{-1, 0, -1}.Normalize()
	above := mgl32.Vec3{-1, 0.4, -1}.Normalize()
	below := mgl32.Vec3{-1, -0.4, -1}.Normalize()

	ha := s.Evaluate(above)
	hb := s.Evaluate(below)
	hh := s.Evaluate(horizontal)

	// The warm scatter tint is red-shifted relative to the zenith color, so
	// more atmosphere means more red. Below the horizon the atmosphere dies
	// off 5x faster, so the below direction is closest to the plain sky.
	assert.Greater(t, hh[0], ha[0])
	assert.Greater(t, ha[0], hb[0])
}

func TestSkyContinuousAtHorizon(t *testing.T) {
	s := DefaultSky()
	// The 5x below-horizon weighting changes the slope, not the value: both
	// sides converge to the same horizon color.
	above := s.Evaluate(mgl32.Vec3{-1, 1e-4, -1})
	below := s.Evaluate(mgl32.Vec3{-1, -1e-4, -1})
	for i := 0; i < 4; i++ {
		assert.InDelta(t, float64(above[i]), float64(below[i]), 1e-3, "channel %d", i)
	}
}

func TestSkyNormalizesInput(t *testing.T) {
	s := DefaultSky()
	a := s.Evaluate(mgl32.Vec3{0, 1, 0})
	b := s.Evaluate(mgl32.Vec3{0, 900, 0})
	for i := 0; i < 4; i++ {
		assert.InDelta(t, float64(a[i]), float64(b[i]), 1e-5)
	}
}
