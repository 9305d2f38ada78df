package shading

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OcclusionTable maps an occlusion level (0-3) to a brightness multiplier.
// The four entries are one tunable art parameter: adjust them together, and
// keep them monotonically non-decreasing.
type OcclusionTable [4]float32

// Historical presets. OcclusionDefault is the shipped table; the others are
// earlier tunings kept selectable from config.
var (
	OcclusionDefault      = OcclusionTable{0.4, 0.6, 0.8, 1.0}
	OcclusionLegacySoft   = OcclusionTable{0.3, 0.4, 0.65, 1.0}
	OcclusionLegacyBright = OcclusionTable{0.5, 0.6, 0.8, 1.0}
)

// Validate rejects tables that would brighten with increasing occlusion.
func (t OcclusionTable) Validate() error {
	for i := 1; i < len(t); i++ {
		if t[i] < t[i-1] {
			return fmt.Errorf("occlusion table not monotonic: level %d (%v) < level %d (%v)",
				i, t[i], i-1, t[i-1])
		}
	}
	if t[0] < 0 {
		return fmt.Errorf("occlusion table has negative entry: %v", t[0])
	}
	return nil
}

// Factor returns the multiplier for an occlusion level. Levels above 3 are a
// caller contract violation and clamp to the brightest entry.
func (t OcclusionTable) Factor(level uint8) float32 {
	if level > 3 {
		level = 3
	}
	return t[level]
}

// LightFactor converts a baked light level (0-15) into a brightness factor
// following an exponential decay: each missing level dims by 0.8. Level 15
// yields exactly 1.0.
func LightFactor(level uint8) float32 {
	if level > 15 {
		level = 15
	}
	return float32(math.Pow(0.8, float64(15-level)))
}

// DirectionalMode selects the directional-light formula of a render path.
// World chunks and standalone models deliberately use different formulas;
// the divergence is a per-path policy, not an accident to unify.
type DirectionalMode uint8

const (
	// DirectionalSigned dims back faces further: 1 - k + k*dot(n, sun).
	// Used by the world-chunk path.
	DirectionalSigned DirectionalMode = iota
	// DirectionalAbsolute lights front and back faces symmetrically:
	// 1 - k + k*|dot(n, sun)|. Used by the standalone-model path.
	DirectionalAbsolute
	// DirectionalBackOnly biases with min(0, dot(n, sun)). A transitional
	// formula kept as its own named variant.
	DirectionalBackOnly
)

func (m DirectionalMode) String() string {
	switch m {
	case DirectionalSigned:
		return "signed"
	case DirectionalAbsolute:
		return "absolute"
	case DirectionalBackOnly:
		return "back_only"
	}
	return fmt.Sprintf("DirectionalMode(%d)", uint8(m))
}

// GLSLDefine renders the mode as a preprocessor define for the fragment
// shader preamble.
func (m DirectionalMode) GLSLDefine() string {
	return fmt.Sprintf("#define DIRECTIONAL_MODE %d\n", uint8(m))
}

// Sun holds the directional-light inputs. Fraction is the k in the
// directional formulas: 0.1 for world geometry, 0.3 for models by default.
type Sun struct {
	Direction mgl32.Vec3 // unit vector towards the sun
	Fraction  float32
}

// Factor evaluates the directional term for a face normal. The result can
// slightly exceed 1 for sun-aligned faces; brightness is not clamped here.
func (m DirectionalMode) Factor(normal mgl32.Vec3, sun Sun) float32 {
	d := normal.Dot(sun.Direction)
	switch m {
	case DirectionalAbsolute:
		if d < 0 {
			d = -d
		}
	case DirectionalBackOnly:
		if d > 0 {
			d = 0
		}
	}
	return 1 - sun.Fraction + sun.Fraction*d
}

// Model combines the three brightness sources of a render path.
type Model struct {
	Occlusion   OcclusionTable
	Sun         Sun
	Directional DirectionalMode
}

// Brightness returns occlusion x light x directional for decoded vertex
// attributes. Always >= 0; may slightly exceed 1 near the sun-aligned face.
func (m *Model) Brightness(a Attributes) float32 {
	return m.Occlusion.Factor(a.Occlusion) *
		LightFactor(a.Light) *
		m.Directional.Factor(FaceNormal(a.Face), m.Sun)
}
