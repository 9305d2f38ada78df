// Package mesh encodes already-built faces into the vertex formats the
// render pipelines consume. Mesh construction itself (greedy merging,
// ambient-occlusion computation) happens upstream; this package only owns
// the byte-exact vertex encoding.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelgl/internal/shading"
)

// ChunkVertex is the expanded chunk vertex format: world-space position,
// per-face tile bounds, a local UV and the packed attribute word. Matches
// the VAO layout in the chunks renderable.
type ChunkVertex struct {
	Pos     [3]float32
	TopLeft [2]float32
	Size    [2]float32
	MaxUV   [2]float32
	UV      [2]float32
	Data    uint32
}

// ChunkVertexStride is the byte size of ChunkVertex in the vertex buffer.
const ChunkVertexStride = 12 * 4

// PackedVertex is the compact chunk vertex format: position plus one packed
// attribute word (face, occlusion, light per the active layout).
type PackedVertex struct {
	Pos  [3]float32
	Data uint32
}

// PackedVertexStride is the byte size of PackedVertex in the vertex buffer.
const PackedVertexStride = 4 * 4

// ModelVertex is the standalone-model vertex format: position plus the
// model info word (24-bit flat color, face, occlusion).
type ModelVertex struct {
	Pos  [3]float32
	Info uint32
}

// ModelVertexStride is the byte size of ModelVertex in the vertex buffer.
const ModelVertexStride = 4 * 4

// Quad is one axis-aligned block face ready for encoding. Occlusion holds
// the four corner levels in (i,j) = (0,0),(0,1),(1,0),(1,1) order; Extent is
// the quad's size in tiles along the face's two UV axes (1x1 for a single
// block, larger for merged quads).
type Quad struct {
	Face      shading.FaceCode
	Origin    mgl32.Vec3
	Extent    [2]float32
	Occlusion [4]uint8
	Light     uint8
	Region    shading.Region
}

// Face geometry tables: for face s, a corner (i,j) sits at
// Origin + faceBase[s] + faceU[s]*i*Extent[0] + faceV[s]*j*Extent[1].
var (
	faceBase = [6]mgl32.Vec3{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {0, 0, 0}, {0, 0, 1}, {0, 0, 0}}
	faceU    = [6]mgl32.Vec3{{0, 1, 0}, {0, 1, 0}, {1, 0, 0}, {1, 0, 0}, {1, 0, 0}, {1, 0, 0}}
	faceV    = [6]mgl32.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 1, 0}, {0, 1, 0}}
)

// Per-face UV factors for the four corners, oriented so textures read
// upright on every face.
var faceUVs = [6][4][2]float32{
	{{1, 1}, {0, 1}, {1, 0}, {0, 0}},
	{{0, 1}, {1, 1}, {0, 0}, {1, 0}},
	{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	{{1, 0}, {1, 1}, {0, 0}, {0, 1}},
	{{0, 1}, {0, 0}, {1, 1}, {1, 0}},
	{{1, 1}, {1, 0}, {0, 1}, {0, 0}},
}

// Two triangulations per face. orderFlipped splits the quad along the other
// diagonal; pickOrder chooses it when the corner occlusion sums favor it,
// so occlusion shades across the smoother diagonal.
var orderStraight = [6][6]uint32{
	{0, 2, 1, 1, 2, 3},
	{0, 1, 2, 1, 3, 2},
	{0, 1, 2, 1, 3, 2},
	{0, 2, 1, 1, 2, 3},
	{3, 1, 2, 2, 1, 0},
	{3, 2, 1, 2, 0, 1},
}

var orderFlipped = [6][6]uint32{
	{0, 2, 3, 0, 3, 1},
	{0, 3, 2, 0, 1, 3},
	{0, 3, 2, 0, 1, 3},
	{0, 2, 3, 0, 3, 1},
	{1, 0, 3, 2, 3, 0},
	{1, 3, 0, 2, 0, 3},
}

func pickOrder(face shading.FaceCode, occl [4]uint8) *[6]uint32 {
	a00, a01, a10, a11 := occl[0], occl[1], occl[2], occl[3]
	if a00+a11 < a01+a10 {
		return &orderStraight[face]
	}
	return &orderFlipped[face]
}

func (q *Quad) corner(i, j float32) [3]float32 {
	p := q.Origin.
		Add(faceBase[q.Face]).
		Add(faceU[q.Face].Mul(i * q.Extent[0])).
		Add(faceV[q.Face].Mul(j * q.Extent[1]))
	return [3]float32{p[0], p[1], p[2]}
}

var cornerIJ = [4][2]float32{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

// AppendQuad encodes a quad into the expanded vertex format, appending four
// vertices and six indices. Local UVs and MaxUV are scaled by the quad
// extent so merged quads repeat their tile through the sampler's wrap.
func AppendQuad(verts []ChunkVertex, indices []uint32, layout shading.Layout, q Quad) ([]ChunkVertex, []uint32) {
	base := uint32(len(verts))
	region := q.Region.Scaled(q.Extent[0], q.Extent[1])
	for k := 0; k < 4; k++ {
		uv := faceUVs[q.Face][k]
		verts = append(verts, ChunkVertex{
			Pos:     q.corner(cornerIJ[k][0], cornerIJ[k][1]),
			TopLeft: region.TopLeft,
			Size:    region.Size,
			MaxUV:   region.MaxUV,
			UV: [2]float32{
				uv[0] * region.Size[0] * q.Extent[0],
				uv[1] * region.Size[1] * q.Extent[1],
			},
			Data: layout.Encode(shading.Attributes{
				Face:      q.Face,
				Occlusion: q.Occlusion[k],
				Light:     q.Light,
			}),
		})
	}
	order := pickOrder(q.Face, q.Occlusion)
	for _, o := range order {
		indices = append(indices, base+o)
	}
	return verts, indices
}

// AppendPackedQuad encodes a quad into the compact position+uint32 format.
func AppendPackedQuad(verts []PackedVertex, indices []uint32, layout shading.Layout, q Quad) ([]PackedVertex, []uint32) {
	base := uint32(len(verts))
	for k := 0; k < 4; k++ {
		verts = append(verts, PackedVertex{
			Pos: q.corner(cornerIJ[k][0], cornerIJ[k][1]),
			Data: layout.Encode(shading.Attributes{
				Face:      q.Face,
				Occlusion: q.Occlusion[k],
				Light:     q.Light,
			}),
		})
	}
	order := pickOrder(q.Face, q.Occlusion)
	for _, o := range order {
		indices = append(indices, base+o)
	}
	return verts, indices
}

// AppendModelQuad encodes a flat-colored quad for the standalone-model path.
func AppendModelQuad(verts []ModelVertex, indices []uint32, q Quad, r, g, b uint8) ([]ModelVertex, []uint32) {
	base := uint32(len(verts))
	for k := 0; k < 4; k++ {
		verts = append(verts, ModelVertex{
			Pos:  q.corner(cornerIJ[k][0], cornerIJ[k][1]),
			Info: shading.EncodeModelInfo(r, g, b, q.Face, q.Occlusion[k]),
		})
	}
	order := pickOrder(q.Face, q.Occlusion)
	for _, o := range order {
		indices = append(indices, base+o)
	}
	return verts, indices
}

// CubeQuads returns the six faces of a unit cube at origin, all fully lit
// and unoccluded. Convenience for demo scenes and tests.
func CubeQuads(origin mgl32.Vec3, region shading.Region, light uint8) []Quad {
	quads := make([]Quad, 6)
	for s := 0; s < 6; s++ {
		quads[s] = Quad{
			Face:      shading.FaceCode(s),
			Origin:    origin,
			Extent:    [2]float32{1, 1},
			Occlusion: [4]uint8{3, 3, 3, 3},
			Light:     light,
			Region:    region,
		}
	}
	return quads
}
