package main

import (
	"flag"
	"log"
	"math"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"

	"voxelgl/internal/config"
	"voxelgl/internal/graphics"
	"voxelgl/internal/graphics/renderables/chunks"
	"voxelgl/internal/graphics/renderables/models"
	"voxelgl/internal/graphics/renderables/skybox"
	"voxelgl/internal/graphics/renderables/target"
	renderer "voxelgl/internal/graphics/renderer"
	"voxelgl/internal/profiling"
	"voxelgl/internal/shading"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a render config YAML")
	flag.Parse()

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("render config: %v", err)
		}
		if err := config.SetCurrent(cfg); err != nil {
			log.Fatalf("render config: %v", err)
		}
		log.Printf("loaded render config from %s (layout=%s)", *configPath, cfg.AttributeLayout)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	closer.Bind(glfw.Terminate)
	defer closer.Close()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	cfg := config.Current()
	layout := cfg.Layout()

	// Build the shared atlas and the renderables.
	demoAtlas, err := buildDemoAtlas()
	if err != nil {
		panic(err)
	}
	atlasTexture := demoAtlas.Upload()

	sky := shading.DefaultSky()
	sky.SunDirection = cfg.SunDirectionVec()

	chunksRenderer := chunks.NewChunks(layout, shading.VariantWorld, atlasTexture)
	modelsRenderer := models.NewModels()
	skyboxRenderer := skybox.NewSkybox(sky)
	targetRenderer := target.NewTarget()

	camera := graphics.NewCamera(windowWidth, windowHeight)
	r, err := renderer.NewRenderer(camera,
		skyboxRenderer,
		chunksRenderer,
		modelsRenderer,
		targetRenderer,
	)
	if err != nil {
		panic(err)
	}
	closer.Bind(r.Dispose)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
	})

	buildDemoScene(layout, demoAtlas, chunksRenderer, modelsRenderer, targetRenderer)

	// Orbit around the scene center.
	center := mgl32.Vec3{4, 2, 4}
	lastTime := glfw.GetTime()
	var angle float64
	frames := 0

	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - lastTime
		lastTime = now

		profiling.ResetFrame()

		angle += dt * 0.2
		camera.Position = center.Add(mgl32.Vec3{
			float32(18 * math.Cos(angle)),
			10,
			float32(18 * math.Sin(angle)),
		})
		camera.Target = center

		r.Render(dt)

		window.SwapBuffers()
		glfw.PollEvents()

		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		frames++
		if frames%600 == 0 {
			log.Printf("frame timings: %s", profiling.TopN(4))
		}
	}
}
