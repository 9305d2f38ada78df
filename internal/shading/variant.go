package shading

// Variant names one render path's shading policy. The paths share the
// brightness model and the atlas sampler but differ in directional formula,
// sun fraction and whether they sample the atlas at all.
type Variant struct {
	Name        string
	Directional DirectionalMode
	SunFraction float32
	Textured    bool // sample the atlas vs. use per-vertex flat color
	Shaded      bool // apply the brightness model at all
}

var (
	// VariantWorld is the chunk path: textured, signed directional, k=0.1.
	VariantWorld = Variant{
		Name:        "world",
		Directional: DirectionalSigned,
		SunFraction: 0.1,
		Textured:    true,
		Shaded:      true,
	}

	// VariantModel is the standalone-model path: flat-colored vertices,
	// symmetric |dot| directional, k=0.3.
	VariantModel = Variant{
		Name:        "model",
		Directional: DirectionalAbsolute,
		SunFraction: 0.3,
		Textured:    false,
		Shaded:      true,
	}

	// VariantBackBiased preserves the transitional min(0, dot) formula.
	VariantBackBiased = Variant{
		Name:        "back_biased",
		Directional: DirectionalBackOnly,
		SunFraction: 0.1,
		Textured:    true,
		Shaded:      true,
	}

	// VariantSolid is the wireframe/highlight path: one uniform color,
	// no texturing, no brightness model.
	VariantSolid = Variant{
		Name: "solid",
	}
)
