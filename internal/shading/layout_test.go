package shading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allLayouts = []Layout{LayoutFaceOcclLight, LayoutLightOcclFace, LayoutCoarseOcclusion}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, layout := range allLayouts {
		for face := 0; face < 6; face++ {
			for occl := 0; occl < 4; occl++ {
				for light := 0; light < 16; light++ {
					want := Attributes{
						Face:      FaceCode(face),
						Occlusion: uint8(occl),
						Light:     uint8(light),
					}
					got := layout.Decode(layout.Encode(want))
					require.Equal(t, want, got, "layout %s", layout)
				}
			}
		}
	}
}

func TestDecodeIgnoresUnusedBits(t *testing.T) {
	want := Attributes{Face: FaceNegY, Occlusion: 2, Light: 9}
	for _, layout := range allLayouts {
		v := layout.Encode(want)
		// Everything above the widest layout's 12 used bits is noise.
		noisy := v | 0xFFFFF000
		assert.Equal(t, want, layout.Decode(noisy), "layout %s", layout)
	}
}

func TestCoarseOcclusionBuckets(t *testing.T) {
	// Every 5-bit code decodes into its bucket of width 8.
	for code := uint32(0); code < 32; code++ {
		v := code << 3 // occl field sits at bits [3:8)
		a := LayoutCoarseOcclusion.Decode(v)
		assert.Equal(t, uint8(code/8), a.Occlusion, "code %d", code)
	}
	// Encoding a level puts it at the bucket floor.
	for level := uint8(0); level < 4; level++ {
		v := LayoutCoarseOcclusion.Encode(Attributes{Occlusion: level})
		assert.Equal(t, uint32(level)*8, (v>>3)&0x1F)
	}
}

func TestLayoutsAreNotInterchangeable(t *testing.T) {
	a := Attributes{Face: FacePosZ, Occlusion: 1, Light: 13}
	v := LayoutFaceOcclLight.Encode(a)
	assert.NotEqual(t, a, LayoutLightOcclFace.Decode(v))
	assert.NotEqual(t, a, LayoutCoarseOcclusion.Decode(v))
}

func TestParseLayout(t *testing.T) {
	for _, layout := range allLayouts {
		parsed, err := ParseLayout(layout.String())
		require.NoError(t, err)
		assert.Equal(t, layout, parsed)
	}

	parsed, err := ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, LayoutFaceOcclLight, parsed)

	_, err = ParseLayout("no_such_layout")
	assert.Error(t, err)
}

func TestModelInfoRoundTrip(t *testing.T) {
	r, g, b, face, occl := DecodeModelInfo(EncodeModelInfo(200, 60, 10, FacePosY, 3))
	assert.Equal(t, uint8(200), r)
	assert.Equal(t, uint8(60), g)
	assert.Equal(t, uint8(10), b)
	assert.Equal(t, FacePosY, face)
	assert.Equal(t, uint8(3), occl)
}

func TestModelInfoColorByteOrder(t *testing.T) {
	// Red occupies the low byte of the color field.
	v := EncodeModelInfo(0xAB, 0xCD, 0xEF, FacePosX, 0)
	assert.Equal(t, uint32(0xEFCDAB), v&0x00FFFFFF)
}

func BenchmarkEncode(b *testing.B) {
	a := Attributes{Face: FacePosY, Occlusion: 2, Light: 12}
	for i := 0; i < b.N; i++ {
		_ = LayoutFaceOcclLight.Encode(a)
	}
}

func BenchmarkDecode(b *testing.B) {
	v := LayoutFaceOcclLight.Encode(Attributes{Face: FacePosY, Occlusion: 2, Light: 12})
	for i := 0; i < b.N; i++ {
		_ = LayoutFaceOcclLight.Decode(v)
	}
}
