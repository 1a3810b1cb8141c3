package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ObjectID     string                 `json:"objectId,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	Material     map[string]interface{} `json:"material,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
	Color        [3]float64             `json:"color"` // Linear shaded color before tone mapping
}

func vec(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// handleInspect casts the camera ray through pixel (x, y) of the posted scene
// and reports what it hits.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	sc, err := readScene(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid scene"))
		return
	}

	query := r.URL.Query()
	x, okX, err := parseIntParam(query, "x", 0, sc.Options.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	y, okY, err := parseIntParam(query, "y", 0, sc.Options.Height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !okX || !okY {
		writeError(w, http.StatusBadRequest, errors.New("pixel coordinates x and y are required"))
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sc, x, y))
}

// inspectPixel traces the ray through the center of pixel (x, y)
func inspectPixel(sc *scene.Scene, x, y int) InspectResponse {
	t := tracer.New(sc)
	ray := renderer.SampleRay(sc.Camera, x, y, sc.Options.Width, sc.Options.Height)

	hit, ok := t.Trace(ray, uuid.Nil)
	if !ok {
		return InspectResponse{Hit: false}
	}

	obj := sc.MustObject(hit.ObjectID)
	geometryType, properties := extractGeometryInfo(obj.Primitive)
	color, _ := integrator.NewWhitted(t, sc.Options.MaxBounces).CastRay(ray, 0)

	return InspectResponse{
		Hit:          true,
		ObjectID:     obj.ID.String(),
		GeometryType: geometryType,
		Point:        vec(hit.Position),
		Normal:       vec(hit.Normal),
		Distance:     hit.Distance,
		Inside:       hit.Inside,
		Material: map[string]interface{}{
			"color":     vec(obj.Material.Color),
			"albedo":    obj.Material.Albedo,
			"shininess": obj.Material.Shininess,
		},
		Properties: properties,
		Color:      vec(color),
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(primitive geometry.Primitive) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := primitive.(type) {
	case *geometry.Sphere:
		properties["center"] = vec(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vec(geom.Point)
		properties["normal"] = vec(geom.Normal)
		return "plane", properties

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{vec(geom.V0), vec(geom.V1), vec(geom.V2)}
		properties["normal"] = vec(geom.Normal())
		return "triangle", properties

	default:
		return "unknown", properties
	}
}
