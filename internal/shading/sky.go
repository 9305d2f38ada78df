package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sky is the procedural background evaluator. It depends only on a view
// direction, never on mesh data, and is drawn as a far-cube pass behind the
// world.
type Sky struct {
	SunDirection mgl32.Vec3 // unit vector towards the sun
	SkyColor     mgl32.Vec3 // zenith color
	ScatterTint  mgl32.Vec3 // warm tint the sky blends towards near the horizon
	SunColor     mgl32.Vec3

	// HeightFalloff controls how fast the atmosphere term decays away from
	// the horizon. Directions below the horizon are weighted 5x so the
	// underside darkens much faster.
	HeightFalloff float32
	// DiscPower shapes the tight bright sun core (~100); GlowPower shapes
	// the softer halo (~6), further attenuated by the height bias.
	DiscPower float32
	GlowPower float32
}

// DefaultSky returns the shipped sky tuning.
func DefaultSky() Sky {
	return Sky{
		SunDirection:  mgl32.Vec3{1, 2, 1}.Normalize(),
		SkyColor:      mgl32.Vec3{0.35, 0.58, 0.92},
		ScatterTint:   mgl32.Vec3{0.96, 0.77, 0.52},
		SunColor:      mgl32.Vec3{1.0, 0.95, 0.85},
		HeightFalloff: 1.5,
		DiscPower:     100,
		GlowPower:     6,
	}
}

// belowHorizonWeight steepens the falloff under the horizon.
const belowHorizonWeight = 5

// Evaluate computes the background color for a view direction. The direction
// is normalized here so callers can pass raw cube-corner vectors.
func (s Sky) Evaluate(dir mgl32.Vec3) mgl32.Vec4 {
	d := dir.Normalize()

	// Height-biased atmosphere: strongest at the horizon, asymmetric
	// above/below it.
	h := d.Y()
	if h < 0 {
		h = -belowHorizonWeight * h
	}
	atmosphere := float32(math.Exp(float64(-h * s.HeightFalloff)))

	// Great-circle angular distance to the sun.
	align := d.Dot(s.SunDirection)
	angle := math.Acos(float64(clampf(align, -1, 1)))
	if wrapped := 2*math.Pi - angle; wrapped < angle {
		angle = wrapped
	}
	scatter := float32(1 - angle/math.Pi)

	// Tight bright core plus a softer height-attenuated glow.
	up := float64(clampf(align, 0, 1))
	disc := float32(math.Pow(up, float64(s.DiscPower)))
	glow := float32(math.Pow(up, float64(s.GlowPower))) * atmosphere

	t := atmosphere * scatter
	rgb := mgl32.Vec3{
		mix(s.SkyColor[0], s.ScatterTint[0], t),
		mix(s.SkyColor[1], s.ScatterTint[1], t),
		mix(s.SkyColor[2], s.ScatterTint[2], t),
	}
	sun := disc + glow
	return mgl32.Vec4{
		rgb[0] + s.SunColor[0]*sun,
		rgb[1] + s.SunColor[1]*sun,
		rgb[2] + s.SunColor[2]*sun,
		1.0,
	}
}

func mix(a, b, t float32) float32 { return a + (b-a)*t }
