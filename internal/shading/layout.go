package shading

import (
	"fmt"
)

// Attributes is the per-vertex data carried by the packed chunk attribute:
// which of the six block faces the vertex belongs to, the baked ambient
// occlusion level and the baked light level.
type Attributes struct {
	Face      FaceCode
	Occlusion uint8 // 0-3
	Light     uint8 // 0-15
}

// Layout identifies one packing of Attributes into a uint32. The mesher and
// the vertex shader must agree on exactly one layout per pipeline; it is
// selected once at pipeline creation and never inferred from vertex data.
type Layout uint8

const (
	// LayoutFaceOcclLight is the current packing:
	// bits[0:3) face, bits[3:5) occlusion, bits[5:9) light.
	LayoutFaceOcclLight Layout = iota
	// LayoutLightOcclFace is the order-reversed historical packing:
	// bits[0:4) light, bits[4:6) occlusion, bits[6:9) face.
	LayoutLightOcclFace
	// LayoutCoarseOcclusion stores a 5-bit occlusion code (0-31) that
	// decodes into 4 buckets of width 8:
	// bits[0:3) face, bits[3:8) occlusion code, bits[8:12) light.
	LayoutCoarseOcclusion
)

type field struct {
	shift uint32
	mask  uint32
}

type layoutSpec struct {
	face, occl, light field
	coarseOccl        bool
}

var layoutSpecs = [...]layoutSpec{
	LayoutFaceOcclLight: {
		face:  field{shift: 0, mask: 0x7},
		occl:  field{shift: 3, mask: 0x3},
		light: field{shift: 5, mask: 0xF},
	},
	LayoutLightOcclFace: {
		face:  field{shift: 6, mask: 0x7},
		occl:  field{shift: 4, mask: 0x3},
		light: field{shift: 0, mask: 0xF},
	},
	LayoutCoarseOcclusion: {
		face:       field{shift: 0, mask: 0x7},
		occl:       field{shift: 3, mask: 0x1F},
		light:      field{shift: 8, mask: 0xF},
		coarseOccl: true,
	},
}

func (f field) extract(v uint32) uint32 { return (v >> f.shift) & f.mask }
func (f field) insert(v uint32) uint32  { return (v & f.mask) << f.shift }

// Decode unpacks the per-vertex attribute. Bits outside the layout's fields
// are ignored; there is no error channel in per-vertex work, so out-of-range
// values are a caller contract violation, not a runtime fault.
func (l Layout) Decode(v uint32) Attributes {
	spec := &layoutSpecs[l]
	occl := spec.occl.extract(v)
	if spec.coarseOccl {
		occl = occl / 8
	}
	return Attributes{
		Face:      FaceCode(spec.face.extract(v)),
		Occlusion: uint8(occl),
		Light:     uint8(spec.light.extract(v)),
	}
}

// Encode packs Attributes into the per-vertex attribute. It is the exact
// inverse of Decode for in-range values; upper bits of out-of-range fields
// are masked off.
func (l Layout) Encode(a Attributes) uint32 {
	spec := &layoutSpecs[l]
	occl := uint32(a.Occlusion)
	if spec.coarseOccl {
		// Bucket floor: level N occupies codes [8N, 8N+8).
		occl *= 8
	}
	return spec.face.insert(uint32(a.Face)) |
		spec.occl.insert(occl) |
		spec.light.insert(uint32(a.Light))
}

func (l Layout) String() string {
	switch l {
	case LayoutFaceOcclLight:
		return "face_occl_light"
	case LayoutLightOcclFace:
		return "light_occl_face"
	case LayoutCoarseOcclusion:
		return "coarse_occlusion"
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}

// ParseLayout converts a config string into a Layout.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "face_occl_light", "":
		return LayoutFaceOcclLight, nil
	case "light_occl_face":
		return LayoutLightOcclFace, nil
	case "coarse_occlusion":
		return LayoutCoarseOcclusion, nil
	}
	return 0, fmt.Errorf("unknown attribute layout %q", s)
}

// GLSLDefines renders the layout's shifts and masks as preprocessor defines.
// The vertex shaders are compiled against this preamble so the decode in
// GLSL is generated from the same constants the Go encoder uses.
func (l Layout) GLSLDefines() string {
	spec := &layoutSpecs[l]
	s := fmt.Sprintf(
		"#define FACE_SHIFT %du\n#define FACE_MASK %du\n"+
			"#define OCCL_SHIFT %du\n#define OCCL_MASK %du\n"+
			"#define LIGHT_SHIFT %du\n#define LIGHT_MASK %du\n",
		spec.face.shift, spec.face.mask,
		spec.occl.shift, spec.occl.mask,
		spec.light.shift, spec.light.mask,
	)
	if spec.coarseOccl {
		s += "#define OCCL_COARSE 1\n"
	}
	return s
}

// Model-path vertex info packing (standalone voxel models): the 32-bit info
// word carries a 24-bit flat RGB color instead of a texture reference.
// bits[0:24) color (R low byte), bits[24:27) face, bits[27:29) occlusion.
const (
	modelColorMask = 0x00FFFFFF
	modelFaceShift = 24
	modelOcclShift = 27
)

// EncodeModelInfo packs a model vertex's flat color, face and occlusion.
func EncodeModelInfo(r, g, b uint8, face FaceCode, occl uint8) uint32 {
	c := uint32(r) | uint32(g)<<8 | uint32(b)<<16
	return c | uint32(face&0x7)<<modelFaceShift | uint32(occl&0x3)<<modelOcclShift
}

// DecodeModelInfo is the exact inverse of EncodeModelInfo.
func DecodeModelInfo(v uint32) (r, g, b uint8, face FaceCode, occl uint8) {
	c := v & modelColorMask
	return uint8(c), uint8(c >> 8), uint8(c >> 16),
		FaceCode((v >> modelFaceShift) & 0x7),
		uint8((v >> modelOcclShift) & 0x3)
}
