// Package renderer owns global OpenGL state and the scene shader program.
package renderer

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Best-Bee/CS330/internal/engine/camera"
	"github.com/Best-Bee/CS330/internal/engine/shader"
	"github.com/Best-Bee/CS330/internal/logger"
	"github.com/Best-Bee/CS330/pkg/math"
)

//go:embed shaders/scene.vert
var vertexShaderSrc string

//go:embed shaders/scene.frag
var fragmentShaderSrc string

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	// FOVDegrees is the vertical field of view; 0 means the 80 degree default.
	FOVDegrees float32
}

// Renderer handles OpenGL setup, frame clearing, and camera uniforms for the
// scene shader program.
type Renderer struct {
	config  Config
	program *shader.Program
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if cfg.FOVDegrees == 0 {
		cfg.FOVDegrees = 80
	}
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.program, err = shader.NewProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene shader: %w", err)
	}
	r.program.Use()

	return r, nil
}

// Program returns the scene shader program. It doubles as the shared uniform
// store the scene composer writes through.
func (r *Renderer) Program() *shader.Program {
	return r.program
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears the frame and activates the scene program.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
}

// SetCamera uploads view, projection and view-position uniforms.
func (r *Renderer) SetCamera(cam *camera.Camera) {
	aspect := float32(r.config.Width) / float32(r.config.Height)
	projection := math.Perspective(math.Radians(r.config.FOVDegrees), aspect, 0.1, 100)

	r.program.SetMat4("view", cam.ViewMatrix())
	r.program.SetMat4("projection", projection)
	r.program.SetVec3("viewPosition", cam.Eye.X, cam.Eye.Y, cam.Eye.Z)
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.program != nil {
		r.program.Delete()
	}
}
