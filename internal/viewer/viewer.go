// Package viewer implements the application loop for the room scene viewer.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Best-Bee/CS330/internal/config"
	"github.com/Best-Bee/CS330/internal/engine/camera"
	"github.com/Best-Bee/CS330/internal/engine/input"
	"github.com/Best-Bee/CS330/internal/engine/mesh"
	"github.com/Best-Bee/CS330/internal/engine/renderer"
	"github.com/Best-Bee/CS330/internal/engine/scene"
	"github.com/Best-Bee/CS330/internal/engine/texture"
	"github.com/Best-Bee/CS330/internal/engine/window"
	"github.com/Best-Bee/CS330/internal/logger"
)

// Viewer owns the window, renderer, and scene for one run of the application.
type Viewer struct {
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	camera   *camera.Camera
	meshes   *mesh.Library
	scene    *scene.Scene
	input    *input.Input
}

// New creates the window and GL context, compiles the scene shader, and
// prepares the scene described by cfg (the built-in room when no scene file
// is configured).
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "Room Viewer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must come after the window; it needs the GL context.
	v.renderer, err = renderer.New(renderer.Config{
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		FOVDegrees: cfg.Graphics.FOV,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	desc := scene.DefaultRoom()
	if cfg.Scene.File != "" {
		desc, err = scene.LoadDescription(cfg.Scene.File)
		if err != nil {
			v.Close()
			return nil, fmt.Errorf("failed to load scene %s: %w", cfg.Scene.File, err)
		}
	}

	v.camera = camera.RoomDefault()
	v.meshes = mesh.NewLibrary()
	v.scene = scene.New(desc, scene.Config{
		AssetDir:  cfg.Scene.AssetDir,
		Uniforms:  v.renderer.Program(),
		Textures:  scene.NewTextureRegistry(texture.Decode, texture.Uploader{}),
		Materials: &scene.MaterialRegistry{},
		Meshes:    v.meshes,
		Log:       logger.Named("scene"),
	})
	if err := v.scene.Prepare(); err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to prepare scene: %w", err)
	}

	v.input = input.New()

	logger.Info("viewer initialized")
	return v, nil
}

// Run drives the frame loop until quit is requested.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				v.renderer.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_ESCAPE {
					v.running = false
				}
			}
		}

		v.renderer.Begin()
		v.renderer.SetCamera(v.camera)
		v.scene.Render()
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("frames", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases scene, renderer, and window resources. Safe to call after a
// partial New.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.scene != nil {
		v.scene.Teardown()
	}
	if v.meshes != nil {
		v.meshes.Teardown()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
