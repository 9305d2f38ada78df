package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"voxelgl/internal/shading"
)

// Render holds the tunable shading constants. The shipped defaults live in
// Default(); a YAML file can override any of them.
type Render struct {
	// AttributeLayout names the packed vertex layout the mesher and the
	// shaders agree on: face_occl_light, light_occl_face or
	// coarse_occlusion.
	AttributeLayout string `yaml:"attribute_layout"`

	// OcclusionTable maps occlusion levels 0-3 to brightness multipliers;
	// must be monotonically non-decreasing.
	OcclusionTable [4]float32 `yaml:"occlusion_table"`

	// SunDirection is normalized on load.
	SunDirection [3]float32 `yaml:"sun_direction"`

	// Sun fractions (the k in the directional term) per render path.
	WorldSunFraction float32 `yaml:"world_sun_fraction"`
	ModelSunFraction float32 `yaml:"model_sun_fraction"`

	// UnsafeFiltering selects the implicit-derivative atlas sampling path.
	// Only valid when mipmapping and multisampling are disabled.
	UnsafeFiltering bool `yaml:"unsafe_filtering"`
}

// Default returns the shipped tuning.
func Default() Render {
	return Render{
		AttributeLayout:  shading.LayoutFaceOcclLight.String(),
		OcclusionTable:   shading.OcclusionDefault,
		SunDirection:     [3]float32{1, 2, 1},
		WorldSunFraction: 0.1,
		ModelSunFraction: 0.3,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Render, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("could not read render config: %v", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("could not parse render config: %v", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks the invariants the shading core relies on.
func (c Render) Validate() error {
	if _, err := shading.ParseLayout(c.AttributeLayout); err != nil {
		return err
	}
	if err := shading.OcclusionTable(c.OcclusionTable).Validate(); err != nil {
		return err
	}
	d := mgl32.Vec3(c.SunDirection)
	if d.Len() == 0 {
		return fmt.Errorf("sun_direction must be non-zero")
	}
	for name, k := range map[string]float32{
		"world_sun_fraction": c.WorldSunFraction,
		"model_sun_fraction": c.ModelSunFraction,
	} {
		if k < 0 || k > 1 {
			return fmt.Errorf("%s %v out of range [0, 1]", name, k)
		}
	}
	return nil
}

// Layout returns the parsed attribute layout.
func (c Render) Layout() shading.Layout {
	l, err := shading.ParseLayout(c.AttributeLayout)
	if err != nil {
		return shading.LayoutFaceOcclLight
	}
	return l
}

// SunDirectionVec returns the normalized sun direction.
func (c Render) SunDirectionVec() mgl32.Vec3 {
	return mgl32.Vec3(c.SunDirection).Normalize()
}

// WorldSun returns the chunk path's directional-light inputs.
func (c Render) WorldSun() shading.Sun {
	return shading.Sun{Direction: c.SunDirectionVec(), Fraction: c.WorldSunFraction}
}

// ModelSun returns the model path's directional-light inputs.
func (c Render) ModelSun() shading.Sun {
	return shading.Sun{Direction: c.SunDirectionVec(), Fraction: c.ModelSunFraction}
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Current returns the active render settings.
func Current() Render {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetCurrent replaces the active render settings after validation.
func SetCurrent(c Render) error {
	if err := c.Validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	current = c
	return nil
}
