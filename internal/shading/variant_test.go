package shading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantPolicies(t *testing.T) {
	// The two main paths deliberately diverge in formula and sun fraction.
	assert.Equal(t, DirectionalSigned, VariantWorld.Directional)
	assert.Equal(t, float32(0.1), VariantWorld.SunFraction)
	assert.True(t, VariantWorld.Textured)

	assert.Equal(t, DirectionalAbsolute, VariantModel.Directional)
	assert.Equal(t, float32(0.3), VariantModel.SunFraction)
	assert.False(t, VariantModel.Textured)

	assert.Equal(t, DirectionalBackOnly, VariantBackBiased.Directional)

	assert.False(t, VariantSolid.Shaded)
	assert.False(t, VariantSolid.Textured)
}
