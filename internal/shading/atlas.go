package shading

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

// UVEpsilon keeps clamped coordinates strictly inside a tile so that samples
// taken near a boundary never read the neighboring tile.
const UVEpsilon = 1e-7

// Region is one tile's footprint inside the shared atlas, in normalized
// atlas coordinates. MaxUV is the largest safe local coordinate; for a
// single tile it equals Size, and greedy-extended quads scale it together
// with their UVs so the wrap repeats the tile.
type Region struct {
	TopLeft mgl32.Vec2
	Size    mgl32.Vec2
	MaxUV   mgl32.Vec2
}

// Scaled returns the region with UV range extended by a quad extent, for
// merged quads that repeat their tile ex times by ey times.
func (r Region) Scaled(ex, ey float32) Region {
	r.MaxUV = mgl32.Vec2{r.Size[0] * ex, r.Size[1] * ey}
	return r
}

// ClampLocal restricts a local UV to [epsilon, MaxUV-epsilon]. Must run
// before wrapping and before derivatives are taken.
func (r Region) ClampLocal(uv mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		clampf(uv[0], UVEpsilon, r.MaxUV[0]-UVEpsilon),
		clampf(uv[1], UVEpsilon, r.MaxUV[1]-UVEpsilon),
	}
}

// Wrap folds a clamped local UV into [0, Size) by modulo.
func (r Region) Wrap(uv mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		wrapf(uv[0], r.Size[0]),
		wrapf(uv[1], r.Size[1]),
	}
}

// AtlasUV converts a local UV into a safe atlas-space coordinate:
// clamp, wrap, then offset by the tile origin.
func (r Region) AtlasUV(local mgl32.Vec2) mgl32.Vec2 {
	w := r.Wrap(r.ClampLocal(local))
	return mgl32.Vec2{r.TopLeft[0] + w[0], r.TopLeft[1] + w[1]}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapf(v, size float32) float32 {
	if size <= 0 {
		return 0
	}
	w := float32(math.Mod(float64(v), float64(size)))
	if w < 0 {
		w += size
	}
	return w
}

// Gradient is the screen-space rate of change of a UV coordinate: DX across
// one pixel to the right, DY across one pixel down. For seam-free filtering
// it must be computed from the clamped, pre-wrap local UV; wrapping first
// would inject a false discontinuity the size of the whole tile.
type Gradient struct {
	DX mgl32.Vec2
	DY mgl32.Vec2
}

// GradientOf builds the gradient from a fragment's clamped local UV and the
// clamped local UVs of its right and lower neighbors, mirroring dFdx/dFdy.
func GradientOf(uv, uvRight, uvBelow mgl32.Vec2) Gradient {
	return Gradient{
		DX: uvRight.Sub(uv),
		DY: uvBelow.Sub(uv),
	}
}

// LOD converts the gradient into a mip level for a texture of the given
// pixel dimensions: log2 of the longest per-pixel step in texels.
func (g Gradient) LOD(texW, texH int) float32 {
	dx := math.Hypot(float64(g.DX[0])*float64(texW), float64(g.DX[1])*float64(texH))
	dy := math.Hypot(float64(g.DY[0])*float64(texW), float64(g.DY[1])*float64(texH))
	d := math.Max(dx, dy)
	if d <= 1 {
		return 0
	}
	return float32(math.Log2(d))
}

// Sampler is a software reference of the GPU sampler: a mip chain over one
// atlas image, sampled nearest-texel with an explicit gradient. It exists so
// the filtering contract is testable without a GL context.
type Sampler struct {
	mips []*image.RGBA
}

// NewSampler builds a mip chain down to 1x1 from the atlas image.
func NewSampler(atlas image.Image) *Sampler {
	base := image.NewRGBA(image.Rect(0, 0, atlas.Bounds().Dx(), atlas.Bounds().Dy()))
	xdraw.Copy(base, image.Point{}, atlas, atlas.Bounds(), xdraw.Src, nil)

	s := &Sampler{mips: []*image.RGBA{base}}
	w, h := base.Rect.Dx(), base.Rect.Dy()
	for w > 1 || h > 1 {
		w = maxi(w/2, 1)
		h = maxi(h/2, 1)
		next := image.NewRGBA(image.Rect(0, 0, w, h))
		prev := s.mips[len(s.mips)-1]
		xdraw.ApproxBiLinear.Scale(next, next.Bounds(), prev, prev.Bounds(), xdraw.Src, nil)
		s.mips = append(s.mips, next)
	}
	return s
}

// Levels returns the number of mip levels.
func (s *Sampler) Levels() int { return len(s.mips) }

// Sample reads the base level at a normalized atlas coordinate.
func (s *Sampler) Sample(uv mgl32.Vec2) mgl32.Vec4 {
	return s.sampleLevel(uv, 0)
}

// SampleGrad selects the mip level from an explicit gradient and reads the
// nearest texel, like textureGrad with nearest filtering per level.
func (s *Sampler) SampleGrad(uv mgl32.Vec2, g Gradient) mgl32.Vec4 {
	base := s.mips[0]
	level := int(g.LOD(base.Rect.Dx(), base.Rect.Dy()) + 0.5)
	if level >= len(s.mips) {
		level = len(s.mips) - 1
	}
	return s.sampleLevel(uv, level)
}

func (s *Sampler) sampleLevel(uv mgl32.Vec2, level int) mgl32.Vec4 {
	img := s.mips[level]
	w, h := img.Rect.Dx(), img.Rect.Dy()
	x := int(uv[0] * float32(w))
	y := int(uv[1] * float32(h))
	x = mini(maxi(x, 0), w-1)
	y = mini(maxi(y, 0), h-1)
	c := img.RGBAAt(x, y)
	return mgl32.Vec4{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// FragmentSample mirrors the fragment shader's filtering-safe path for one
// fragment whose right and lower neighbors carry the given local UVs:
// clamp all three, take the gradient pre-wrap, wrap into atlas space, then
// sample with the explicit gradient.
func (r Region) FragmentSample(s *Sampler, local, localRight, localBelow mgl32.Vec2) mgl32.Vec4 {
	c := r.ClampLocal(local)
	g := GradientOf(c, r.ClampLocal(localRight), r.ClampLocal(localBelow))
	w := r.Wrap(c)
	return s.SampleGrad(mgl32.Vec2{r.TopLeft[0] + w[0], r.TopLeft[1] + w[1]}, g)
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}
