package main

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"voxelgl/internal/atlas"
	"voxelgl/internal/graphics/renderables/chunks"
	"voxelgl/internal/graphics/renderables/models"
	"voxelgl/internal/graphics/renderables/target"
	"voxelgl/internal/mesh"
	"voxelgl/internal/shading"
)

const tileEdge = 16

// Atlas slots for the procedural tiles.
const (
	tileChecker = iota
	tileBrick
	tileSpeckle
	tileSolid
)

func hashNoise(x, y int) uint8 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return uint8(h >> 24)
}

// buildDemoAtlas paints a few procedural tiles so the demo needs no asset
// files on disk.
func buildDemoAtlas() (*atlas.Atlas, error) {
	tiles := make([]image.Image, 4)

	checker := image.NewRGBA(image.Rect(0, 0, tileEdge, tileEdge))
	brick := image.NewRGBA(image.Rect(0, 0, tileEdge, tileEdge))
	speckle := image.NewRGBA(image.Rect(0, 0, tileEdge, tileEdge))
	solid := image.NewRGBA(image.Rect(0, 0, tileEdge, tileEdge))

	for y := 0; y < tileEdge; y++ {
		for x := 0; x < tileEdge; x++ {
			if (x/4+y/4)%2 == 0 {
				checker.SetRGBA(x, y, color.RGBA{120, 180, 90, 255})
			} else {
				checker.SetRGBA(x, y, color.RGBA{96, 150, 70, 255})
			}

			mortar := y%8 == 0 || (x+4*(y/8))%8 == 0
			if mortar {
				brick.SetRGBA(x, y, color.RGBA{160, 150, 140, 255})
			} else {
				brick.SetRGBA(x, y, color.RGBA{170, 80, 60, 255})
			}

			n := hashNoise(x, y)
			g := 110 + n%60
			speckle.SetRGBA(x, y, color.RGBA{g, g, g, 255})

			solid.SetRGBA(x, y, color.RGBA{200, 170, 110, 255})
		}
	}

	tiles[tileChecker] = checker
	tiles[tileBrick] = brick
	tiles[tileSpeckle] = speckle
	tiles[tileSolid] = solid
	return atlas.Build(tiles)
}

// buildDemoScene uploads a few meshes exercising every render path: a merged
// ground slab, a light-gradient column, a corner-shaded cube, a packed-format
// pyramid, a spinning flat-color model, and a face highlight.
func buildDemoScene(
	layout shading.Layout,
	a *atlas.Atlas,
	chunksRenderer *chunks.Chunks,
	modelsRenderer *models.Models,
	targetRenderer *target.Target,
) {
	var verts []mesh.ChunkVertex
	var indices []uint32

	// Ground slab: one merged 8x8 top quad plus its sides, showing tile
	// repetition across a greedy quad.
	top := mesh.Quad{
		Face:      shading.FacePosY,
		Origin:    mgl32.Vec3{0, -1, 0},
		Extent:    [2]float32{8, 8},
		Occlusion: [4]uint8{3, 3, 3, 3},
		Light:     15,
		Region:    a.Regions[tileChecker],
	}
	verts, indices = mesh.AppendQuad(verts, indices, layout, top)
	for _, f := range []shading.FaceCode{shading.FacePosX, shading.FaceNegX, shading.FacePosZ, shading.FaceNegZ} {
		side := mesh.Quad{
			Face:      f,
			Origin:    mgl32.Vec3{0, -1, 0},
			Occlusion: [4]uint8{3, 3, 3, 3},
			Light:     12,
			Region:    a.Regions[tileSpeckle],
		}
		if f == shading.FacePosX || f == shading.FaceNegX {
			side.Extent = [2]float32{1, 8}
			if f == shading.FacePosX {
				side.Origin[0] = 7
			}
		} else {
			side.Extent = [2]float32{8, 1}
			if f == shading.FacePosZ {
				side.Origin[2] = 7
			}
		}
		verts, indices = mesh.AppendQuad(verts, indices, layout, side)
	}

	// Column with a light gradient top to bottom.
	for y := 0; y < 5; y++ {
		light := uint8(15 - 3*(4-y))
		for _, q := range mesh.CubeQuads(mgl32.Vec3{1, float32(y), 1}, a.Regions[tileBrick], light) {
			verts, indices = mesh.AppendQuad(verts, indices, layout, q)
		}
	}

	// Cube with uneven corner occlusion, flipping the split diagonal.
	for _, q := range mesh.CubeQuads(mgl32.Vec3{5, 0, 5}, a.Regions[tileSolid], 15) {
		q.Occlusion = [4]uint8{0, 3, 3, 1}
		verts, indices = mesh.AppendQuad(verts, indices, layout, q)
	}

	chunksRenderer.SetMesh(chunks.Key{X: 0, Y: 0, Z: 0}, verts, indices)

	// Packed-format pyramid, positioned by its mesh model matrix.
	var pverts []mesh.PackedVertex
	var pindices []uint32
	for y := 0; y < 3; y++ {
		n := 3 - y
		for x := 0; x < n; x++ {
			for z := 0; z < n; z++ {
				origin := mgl32.Vec3{float32(x) + float32(y)/2, float32(y), float32(z) + float32(y)/2}
				for _, q := range mesh.CubeQuads(origin, shading.Region{}, 15) {
					pverts, pindices = mesh.AppendPackedQuad(pverts, pindices, layout, q)
				}
			}
		}
	}
	chunksRenderer.SetPackedMesh(
		chunks.Key{X: -1, Y: 0, Z: 0},
		pverts, pindices,
		mgl32.Translate3D(-6, 0, 2),
	)

	// Flat-color model: two stacked cubes, spinning around their center.
	var mverts []mesh.ModelVertex
	var mindices []uint32
	for _, q := range mesh.CubeQuads(mgl32.Vec3{0, 0, 0}, shading.Region{}, 15) {
		mverts, mindices = mesh.AppendModelQuad(mverts, mindices, q, 200, 60, 60)
	}
	for _, q := range mesh.CubeQuads(mgl32.Vec3{0, 1, 0}, shading.Region{}, 15) {
		mverts, mindices = mesh.AppendModelQuad(mverts, mindices, q, 230, 200, 80)
	}
	modelsRenderer.RegisterMesh(1, mverts, mindices)
	modelsRenderer.SetInstances([]models.Instance{
		{MeshID: 1, Pos: mgl32.Vec3{4, 0, -3}, Scale: 0.75, RotY: 0.6, RotOffset: mgl32.Vec3{0.5, 0, 0.5}},
		{MeshID: 1, Pos: mgl32.Vec3{-2, 0, -4}, Scale: 0.5, RotY: 2.1, RotOffset: mgl32.Vec3{0.5, 0, 0.5}},
	})

	// Highlight the occlusion-demo cube's top face.
	targetRenderer.SetTarget(mgl32.Vec3{5, 0, 5}, shading.FacePosY)
}
