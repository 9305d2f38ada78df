package mesh

import "voxelgl/internal/shading"

// TargetFaceOutline returns the four line segments (eight vertices) that
// outline a pointed block's face, for the line-list highlight pass. The
// outline is inset by a hair and pushed off the face plane so it never
// z-fights the block itself.
func TargetFaceOutline(face shading.FaceCode) [8][3]float32 {
	const inset = 0.001

	axis := int(face) / 2
	positive := int(face)%2 == 0

	lo, hi := float32(inset), float32(1-inset)
	plane := float32(-inset)
	if positive {
		plane = 1 + inset
	}

	// Face-local square corners, then lifted onto the face plane.
	corners := [4][2]float32{{lo, lo}, {lo, hi}, {hi, hi}, {hi, lo}}
	var pts [4][3]float32
	for i, c := range corners {
		var p [3]float32
		switch axis {
		case 0:
			p = [3]float32{plane, c[0], c[1]}
		case 1:
			p = [3]float32{c[0], plane, c[1]}
		default:
			p = [3]float32{c[0], c[1], plane}
		}
		pts[i] = p
	}

	return [8][3]float32{
		pts[0], pts[1],
		pts[1], pts[2],
		pts[2], pts[3],
		pts[3], pts[0],
	}
}
