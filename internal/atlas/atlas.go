// Package atlas packs per-block tile images into one shared texture so many
// block types render in a single draw call. Each tile gets a Region the
// sampler uses to stay inside its own footprint.
package atlas

import (
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"

	"voxelgl/internal/shading"
)

// Atlas is a built tile atlas: the combined image, one region per input
// tile (same order), and the uniform tile edge in pixels.
type Atlas struct {
	Image    *image.RGBA
	Regions  []shading.Region
	TileSize int
}

// Build packs the tiles into a square-ish grid. Tiles of mismatched size are
// rescaled to the largest tile edge with nearest-neighbor so pixel-art tiles
// stay crisp.
func Build(tiles []image.Image) (*Atlas, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("atlas: no tiles")
	}

	tileSize := 0
	for _, t := range tiles {
		b := t.Bounds()
		if b.Dx() != b.Dy() {
			return nil, fmt.Errorf("atlas: tile %dx%d is not square", b.Dx(), b.Dy())
		}
		if b.Dx() > tileSize {
			tileSize = b.Dx()
		}
	}
	if tileSize == 0 {
		return nil, fmt.Errorf("atlas: empty tiles")
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(tiles)))))
	rows := (len(tiles) + cols - 1) / cols
	img := image.NewRGBA(image.Rect(0, 0, cols*tileSize, rows*tileSize))

	regions := make([]shading.Region, len(tiles))
	size := mgl32.Vec2{
		float32(tileSize) / float32(img.Rect.Dx()),
		float32(tileSize) / float32(img.Rect.Dy()),
	}
	for i, t := range tiles {
		cx := (i % cols) * tileSize
		cy := (i / cols) * tileSize
		dst := image.Rect(cx, cy, cx+tileSize, cy+tileSize)
		xdraw.NearestNeighbor.Scale(img, dst, t, t.Bounds(), xdraw.Src, nil)

		regions[i] = shading.Region{
			TopLeft: mgl32.Vec2{
				float32(cx) / float32(img.Rect.Dx()),
				float32(cy) / float32(img.Rect.Dy()),
			},
			Size:  size,
			MaxUV: size,
		}
	}

	return &Atlas{Image: img, Regions: regions, TileSize: tileSize}, nil
}
