package scene

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Best-Bee/CS330/internal/engine/mesh"
	"github.com/Best-Bee/CS330/pkg/math"
)

// MeshLibrary is the shared mesh geometry store the composer draws against.
type MeshLibrary interface {
	Load(k mesh.Kind) error
	Draw(k mesh.Kind)
}

// DrawCommand is one object's full draw specification. Commands are built
// from the description and consumed within a single render pass.
type DrawCommand struct {
	Transform   Transform
	Mesh        mesh.Kind
	Textured    bool
	TextureTag  string
	UVScale     [2]float32
	Color       [4]float32
	MaterialTag string
}

// Config wires the composer's collaborators.
type Config struct {
	// AssetDir is prepended to texture file names from the description.
	AssetDir  string
	Uniforms  UniformStore
	Textures  *TextureRegistry
	Materials *MaterialRegistry
	Meshes    MeshLibrary
	Log       *zap.Logger
}

// Scene owns the registries and the ordered draw list for one static scene.
// All methods run on the rendering thread.
type Scene struct {
	desc      *Description
	assetDir  string
	uniforms  UniformStore
	textures  *TextureRegistry
	materials *MaterialRegistry
	binder    *Binder
	meshes    MeshLibrary
	log       *zap.Logger
}

// New creates a scene composer over a parsed description.
func New(desc *Description, cfg Config) *Scene {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Scene{
		desc:      desc,
		assetDir:  cfg.AssetDir,
		uniforms:  cfg.Uniforms,
		textures:  cfg.Textures,
		materials: cfg.Materials,
		binder:    NewBinder(cfg.Uniforms, cfg.Textures, cfg.Materials),
		meshes:    cfg.Meshes,
		log:       log,
	}
}

// Prepare loads textures, defines materials, configures lights, and loads
// each referenced mesh kind once. A texture that fails to load is logged and
// skipped: its tag stays unresolved and the objects using it render wrong,
// but the scene still comes up. Mesh load failures are fatal since nothing
// could draw.
func (s *Scene) Prepare() error {
	for _, ref := range s.desc.Textures {
		path := ref.File
		if s.assetDir != "" {
			path = filepath.Join(s.assetDir, ref.File)
		}
		if err := s.textures.Load(path, ref.Tag); err != nil {
			s.log.Warn("texture load failed, continuing without it",
				zap.String("file", ref.File),
				zap.String("tag", ref.Tag),
				zap.Error(err),
			)
			continue
		}
		s.log.Debug("texture loaded",
			zap.String("tag", ref.Tag),
			zap.Int("slot", s.textures.Len()-1),
		)
	}
	s.textures.BindAll()

	for _, m := range s.desc.Materials {
		s.materials.Define(m)
	}

	ConfigureLights(s.uniforms, s.desc.LightSlots())

	for _, k := range s.desc.MeshKinds() {
		if err := s.meshes.Load(k); err != nil {
			return fmt.Errorf("loading %s mesh: %w", k, err)
		}
	}

	s.log.Info("scene prepared",
		zap.Int("textures", s.textures.Len()),
		zap.Int("materials", s.materials.Len()),
		zap.Int("objects", len(s.desc.Objects)),
	)
	return nil
}

// Render walks the draw list in order. Per object: transform, shading (flat
// color or texture plus UV scale), material, draw. Shader state persists
// between objects, so the sequence sets every uniform a draw depends on.
func (s *Scene) Render() {
	for i := range s.desc.Objects {
		cmd := s.command(&s.desc.Objects[i])

		s.binder.SetTransform(cmd.Transform)
		if cmd.Textured {
			s.binder.SetUVScale(cmd.UVScale[0], cmd.UVScale[1])
			s.binder.SetTexture(cmd.TextureTag)
		} else {
			s.binder.SetFlatColor(cmd.Color[0], cmd.Color[1], cmd.Color[2], cmd.Color[3])
		}
		if cmd.MaterialTag != "" {
			s.binder.SetMaterial(cmd.MaterialTag)
		}

		s.meshes.Draw(cmd.Mesh)
	}
}

// Teardown releases the scene's GPU textures.
func (s *Scene) Teardown() {
	s.textures.Teardown()
}

// command builds the ephemeral draw command for one description object.
// The description was validated at parse time, so the mesh kind resolves.
func (s *Scene) command(obj *Object) DrawCommand {
	kind, _ := mesh.ParseKind(obj.Mesh)

	cmd := DrawCommand{
		Transform: Transform{
			Scale:    math.Vec3{X: obj.Scale[0], Y: obj.Scale[1], Z: obj.Scale[2]},
			Rotation: math.Vec3{X: obj.Rotation[0], Y: obj.Rotation[1], Z: obj.Rotation[2]},
			Position: math.Vec3{X: obj.Position[0], Y: obj.Position[1], Z: obj.Position[2]},
		},
		Mesh:        kind,
		UVScale:     obj.UVScale,
		MaterialTag: obj.Material,
	}
	if obj.Texture != "" {
		cmd.Textured = true
		cmd.TextureTag = obj.Texture
	} else {
		cmd.Color = *obj.Color
	}
	return cmd
}
