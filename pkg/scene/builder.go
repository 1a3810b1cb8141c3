package scene

import (
	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/log"
)

var (
	ErrVertexIndex    = errors.New("scene: vertex index out of range")
	ErrInvalidSetting = errors.New("scene: invalid setting")
)

var logger = log.New("scene")

// buildState accumulates the scene while the entries of a file are folded in
// order. Material and light color apply to everything declared after them.
type buildState struct {
	camera     Camera
	options    Options
	material   Material
	lightColor core.Vec3
	vertices   []core.Vec3
	objects    []*Object
	lights     []lights.Light
}

func newBuildState(header loaders.Header) *buildState {
	options := DefaultOptions()
	options.Width = header.Width
	options.Height = header.Height
	options.OutputName = header.Name
	options.Format = header.Format

	return &buildState{
		camera:     DefaultCamera(),
		options:    options,
		material:   DefaultMaterial(),
		lightColor: core.NewVec3(1, 1, 1),
	}
}

// Build folds the entries of a parsed scene file into a Scene
func Build(file *loaders.SceneFile) (*Scene, error) {
	state := newBuildState(file.Header)
	for _, entry := range file.Entries {
		if err := state.apply(entry); err != nil {
			return nil, errors.Wrapf(err, "line %d", entry.Line)
		}
	}

	logger.Debugf("built scene with %d objects and %d lights", len(state.objects), len(state.lights))
	return New(state.camera, state.objects, state.lights, state.options), nil
}

// LoadScene reads, parses and builds a scene file from disk
func LoadScene(filename string) (*Scene, error) {
	file, err := loaders.LoadSceneFile(filename)
	if err != nil {
		return nil, err
	}
	s, err := Build(file)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", filename)
	}
	return s, nil
}

func (b *buildState) apply(entry loaders.Entry) error {
	f := entry.Floats
	switch entry.Kind {
	case loaders.EntrySphere:
		b.addSphere(entry, core.NewVec3(f[0], f[1], f[2]), f[3])
	case loaders.EntryPlane:
		b.addPlane(entry, f[0], f[1], f[2], f[3])
	case loaders.EntryVertex:
		b.vertices = append(b.vertices, core.NewVec3(f[0], f[1], f[2]))
	case loaders.EntryTriangle:
		return b.addTriangle(entry)
	case loaders.EntrySun:
		direction := core.NewVec3(f[0], f[1], f[2])
		if direction.IsZero() {
			logger.Warningf("line %d: sun with zero direction ignored", entry.Line)
			return nil
		}
		b.lights = append(b.lights, lights.NewDirectional(direction, b.lightColor))
	case loaders.EntryBulb:
		b.lights = append(b.lights, lights.NewPoint(core.NewVec3(f[0], f[1], f[2]), b.lightColor))
	case loaders.EntryColor:
		color := core.NewVec3(f[0], f[1], f[2])
		b.material.Color = color
		b.lightColor = color
	case loaders.EntryShininess:
		b.material.Shininess = f[0]
	case loaders.EntryAlbedo:
		b.material.Albedo = f[0]
	case loaders.EntryEye:
		b.camera.Position = core.NewVec3(f[0], f[1], f[2])
	case loaders.EntryForward:
		return b.camera.SetForward(core.NewVec3(f[0], f[1], f[2]))
	case loaders.EntryUp:
		b.camera.SetUp(core.NewVec3(f[0], f[1], f[2]))
	case loaders.EntryExpose:
		b.options.Exposure = f[0]
	case loaders.EntryBounces:
		if entry.Ints[0] < 0 {
			return errors.Wrapf(ErrInvalidSetting, "bounces must be non-negative, got %d", entry.Ints[0])
		}
		b.options.MaxBounces = entry.Ints[0]
	case loaders.EntryAA:
		if entry.Ints[0] < 1 {
			return errors.Wrapf(ErrInvalidSetting, "aa must be at least 1, got %d", entry.Ints[0])
		}
		b.options.Supersample = entry.Ints[0]
	default:
		return errors.Wrapf(loaders.ErrUnknownEntry, "%q", entry.Kind)
	}
	return nil
}

func (b *buildState) addSphere(entry loaders.Entry, center core.Vec3, radius float64) {
	if radius <= 0 {
		logger.Warningf("line %d: sphere with non-positive radius %g ignored", entry.Line, radius)
		return
	}
	b.objects = append(b.objects, NewObject(geometry.NewSphere(center, radius), b.material))
}

func (b *buildState) addPlane(entry loaders.Entry, a, bb, c, d float64) {
	plane := geometry.NewPlaneFromEquation(a, bb, c, d)
	if plane.IsDegenerate() {
		logger.Warningf("line %d: plane with zero normal ignored", entry.Line)
		return
	}
	b.objects = append(b.objects, NewObject(plane, b.material))
}

func (b *buildState) addTriangle(entry loaders.Entry) error {
	var corners [3]core.Vec3
	for i, index := range entry.Ints {
		vertex, err := b.vertex(index)
		if err != nil {
			return err
		}
		corners[i] = vertex
	}

	triangle := geometry.NewTriangle(corners[0], corners[1], corners[2])
	if triangle.IsDegenerate() {
		logger.Warningf("line %d: degenerate triangle ignored", entry.Line)
		return nil
	}
	b.objects = append(b.objects, NewObject(triangle, b.material))
	return nil
}

// vertex resolves a 1-based vertex index; negative indices count back from
// the most recently declared vertex.
func (b *buildState) vertex(index int) (core.Vec3, error) {
	n := len(b.vertices)
	resolved := index - 1
	if index < 0 {
		resolved = n + index
	}
	if index == 0 || resolved < 0 || resolved >= n {
		return core.Vec3{}, errors.Wrapf(ErrVertexIndex, "index %d with %d vertices declared", index, n)
	}
	return b.vertices[resolved], nil
}
