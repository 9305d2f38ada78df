package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxelgl/internal/shading"
)

func testQuad(face shading.FaceCode) Quad {
	return Quad{
		Face:      face,
		Origin:    mgl32.Vec3{2, 0, -3},
		Extent:    [2]float32{1, 1},
		Occlusion: [4]uint8{3, 3, 3, 3},
		Light:     15,
		Region: shading.Region{
			TopLeft: mgl32.Vec2{0.5, 0},
			Size:    mgl32.Vec2{0.25, 0.25},
			MaxUV:   mgl32.Vec2{0.25, 0.25},
		},
	}
}

func TestAppendQuadCounts(t *testing.T) {
	verts, indices := AppendQuad(nil, nil, shading.LayoutFaceOcclLight, testQuad(shading.FacePosY))
	if len(verts) != 4 || len(indices) != 6 {
		t.Fatalf("single quad: got %d verts %d indices, want 4 and 6", len(verts), len(indices))
	}

	// Appending reuses the slices and offsets the new indices.
	verts, indices = AppendQuad(verts, indices, shading.LayoutFaceOcclLight, testQuad(shading.FaceNegY))
	if len(verts) != 8 || len(indices) != 12 {
		t.Fatalf("second quad: got %d verts %d indices, want 8 and 12", len(verts), len(indices))
	}
	for _, idx := range indices[6:] {
		if idx < 4 || idx > 7 {
			t.Fatalf("second quad index %d outside [4,7]", idx)
		}
	}
}

func TestCubeQuadCounts(t *testing.T) {
	var verts []ChunkVertex
	var indices []uint32
	for _, q := range CubeQuads(mgl32.Vec3{0, 0, 0}, shading.Region{}, 15) {
		verts, indices = AppendQuad(verts, indices, shading.LayoutFaceOcclLight, q)
	}
	if len(verts) != 24 || len(indices) != 36 {
		t.Fatalf("cube: got %d verts %d indices, want 24 and 36", len(verts), len(indices))
	}
}

func TestVertexDataMatchesLayout(t *testing.T) {
	for _, layout := range []shading.Layout{
		shading.LayoutFaceOcclLight,
		shading.LayoutLightOcclFace,
		shading.LayoutCoarseOcclusion,
	} {
		q := testQuad(shading.FacePosZ)
		q.Occlusion = [4]uint8{0, 1, 2, 3}
		q.Light = 11
		verts, _ := AppendQuad(nil, nil, layout, q)
		for k, v := range verts {
			a := layout.Decode(v.Data)
			if a.Face != q.Face || a.Light != q.Light || a.Occlusion != q.Occlusion[k] {
				t.Fatalf("layout %s corner %d: decoded %+v", layout, k, a)
			}
		}
	}
}

func TestCornerPositions(t *testing.T) {
	q := testQuad(shading.FacePosY)
	q.Origin = mgl32.Vec3{0, 0, 0}
	q.Extent = [2]float32{2, 3}
	verts, _ := AppendQuad(nil, nil, shading.LayoutFaceOcclLight, q)

	for _, v := range verts {
		if v.Pos[1] != 1 {
			t.Fatalf("top-face vertex not on y=1 plane: %v", v.Pos)
		}
	}
	// Corners span the extent.
	var minX, maxX, minZ, maxZ float32 = 1e9, -1e9, 1e9, -1e9
	for _, v := range verts {
		minX = minf(minX, v.Pos[0])
		maxX = maxf(maxX, v.Pos[0])
		minZ = minf(minZ, v.Pos[2])
		maxZ = maxf(maxZ, v.Pos[2])
	}
	if minX != 0 || maxX != 2 || minZ != 0 || maxZ != 3 {
		t.Fatalf("extent corners: x [%v,%v] z [%v,%v]", minX, maxX, minZ, maxZ)
	}
}

func TestMergedQuadUVScaling(t *testing.T) {
	q := testQuad(shading.FacePosY)
	q.Extent = [2]float32{4, 2}
	verts, _ := AppendQuad(nil, nil, shading.LayoutFaceOcclLight, q)

	wantMax := mgl32.Vec2{q.Region.Size[0] * 4, q.Region.Size[1] * 2}
	var sawFull bool
	for _, v := range verts {
		if v.MaxUV != [2]float32{wantMax[0], wantMax[1]} {
			t.Fatalf("MaxUV = %v, want %v", v.MaxUV, wantMax)
		}
		if v.Size != [2]float32{q.Region.Size[0], q.Region.Size[1]} {
			t.Fatalf("Size = %v, want %v", v.Size, q.Region.Size)
		}
		if v.UV == [2]float32{wantMax[0], wantMax[1]} {
			sawFull = true
		}
	}
	if !sawFull {
		t.Fatal("no corner carries the full scaled UV")
	}
}

func TestDiagonalFlip(t *testing.T) {
	face := shading.FacePosY

	// Uniform occlusion keeps the default split.
	q := testQuad(face)
	_, indices := AppendQuad(nil, nil, shading.LayoutFaceOcclLight, q)
	if got, want := indices, orderFlipped[face]; !sameOrder(got, want) {
		t.Fatalf("uniform occlusion: got %v, want %v", got, want)
	}

	// A dark main diagonal flips the split so shading follows the smoother
	// diagonal.
	q.Occlusion = [4]uint8{0, 3, 3, 1}
	_, indices = AppendQuad(nil, nil, shading.LayoutFaceOcclLight, q)
	if got, want := indices, orderStraight[face]; !sameOrder(got, want) {
		t.Fatalf("dark diagonal: got %v, want %v", got, want)
	}
}

func sameOrder(got []uint32, want [6]uint32) bool {
	if len(got) != 6 {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestModelQuadInfo(t *testing.T) {
	q := testQuad(shading.FaceNegX)
	q.Occlusion = [4]uint8{2, 2, 2, 2}
	verts, indices := AppendModelQuad(nil, nil, q, 10, 20, 30)
	if len(verts) != 4 || len(indices) != 6 {
		t.Fatalf("got %d verts %d indices", len(verts), len(indices))
	}
	for _, v := range verts {
		r, g, b, face, occl := shading.DecodeModelInfo(v.Info)
		if r != 10 || g != 20 || b != 30 || face != shading.FaceNegX || occl != 2 {
			t.Fatalf("decoded %d %d %d face=%d occl=%d", r, g, b, face, occl)
		}
	}
}

func TestTargetFaceOutline(t *testing.T) {
	for face := shading.FacePosX; face <= shading.FaceNegZ; face++ {
		pts := TargetFaceOutline(face)
		axis := int(face) / 2
		want := float32(-0.001)
		if int(face)%2 == 0 {
			want = 1.001
		}
		for i, p := range pts {
			if p[axis] != want {
				t.Fatalf("face %d vertex %d: coord %v, want %v", face, i, p[axis], want)
			}
		}
		// Closed loop: each corner appears exactly twice.
		seen := map[[3]float32]int{}
		for _, p := range pts {
			seen[p]++
		}
		for p, n := range seen {
			if n != 2 {
				t.Fatalf("face %d corner %v appears %d times", face, p, n)
			}
		}
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
