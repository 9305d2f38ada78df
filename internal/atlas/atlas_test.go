package atlas

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidTile(edge int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, edge, edge))
	for y := 0; y < edge; y++ {
		for x := 0; x < edge; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestBuildLayout(t *testing.T) {
	tiles := []image.Image{
		solidTile(16, color.RGBA{255, 0, 0, 255}),
		solidTile(16, color.RGBA{0, 255, 0, 255}),
		solidTile(16, color.RGBA{0, 0, 255, 255}),
	}
	a, err := Build(tiles)
	require.NoError(t, err)

	// 3 tiles pack into a 2x2 grid.
	assert.Equal(t, 16, a.TileSize)
	assert.Equal(t, 32, a.Image.Rect.Dx())
	assert.Equal(t, 32, a.Image.Rect.Dy())
	require.Len(t, a.Regions, 3)

	for i, r := range a.Regions {
		assert.Equal(t, float32(0.5), r.Size[0], "tile %d", i)
		assert.Equal(t, float32(0.5), r.Size[1], "tile %d", i)
		assert.Equal(t, r.Size, r.MaxUV, "tile %d", i)
	}

	// Each region's center reads back its own tile color.
	want := []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}
	for i, r := range a.Regions {
		x := int((r.TopLeft[0] + r.Size[0]/2) * float32(a.Image.Rect.Dx()))
		y := int((r.TopLeft[1] + r.Size[1]/2) * float32(a.Image.Rect.Dy()))
		assert.Equal(t, want[i], a.Image.RGBAAt(x, y), "tile %d", i)
	}
}

func TestBuildRegionsDoNotOverlap(t *testing.T) {
	tiles := make([]image.Image, 5)
	for i := range tiles {
		tiles[i] = solidTile(8, color.RGBA{uint8(40 * i), 0, 0, 255})
	}
	a, err := Build(tiles)
	require.NoError(t, err)

	seen := map[[2]float32]bool{}
	for _, r := range a.Regions {
		key := [2]float32{r.TopLeft[0], r.TopLeft[1]}
		assert.False(t, seen[key], "duplicate region origin %v", key)
		seen[key] = true
		assert.LessOrEqual(t, r.TopLeft[0]+r.Size[0], float32(1))
		assert.LessOrEqual(t, r.TopLeft[1]+r.Size[1], float32(1))
	}
}

func TestBuildRescalesMismatchedTiles(t *testing.T) {
	tiles := []image.Image{
		solidTile(16, color.RGBA{255, 0, 0, 255}),
		solidTile(8, color.RGBA{0, 255, 0, 255}),
	}
	a, err := Build(tiles)
	require.NoError(t, err)

	// The smaller tile is upscaled to the largest edge.
	assert.Equal(t, 16, a.TileSize)
	r := a.Regions[1]
	x := int((r.TopLeft[0] + r.Size[0]/2) * float32(a.Image.Rect.Dx()))
	y := int((r.TopLeft[1] + r.Size[1]/2) * float32(a.Image.Rect.Dy()))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, a.Image.RGBAAt(x, y))
}

func TestBuildRejectsBadInput(t *testing.T) {
	_, err := Build(nil)
	assert.Error(t, err)

	_, err = Build([]image.Image{image.NewRGBA(image.Rect(0, 0, 8, 4))})
	assert.Error(t, err)
}
