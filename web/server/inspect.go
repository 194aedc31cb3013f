package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ShapeID      int                    `json:"shapeId,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	InShadow     bool                   `json:"inShadow"`
	Color        [3]float64             `json:"color"`
	Material     map[string]interface{} `json:"material,omitempty"`
}

// materialInfo describes a material's Phong parameters
func materialInfo(m material.Material) map[string]interface{} {
	c := m.Color()
	clamped := c.Clamp(0, 1)
	hex := fmt.Sprintf("#%02x%02x%02x", int(clamped.R*255), int(clamped.G*255), int(clamped.B*255))
	return map[string]interface{}{
		"color":     colorArray(c),
		"hex":       hex,
		"ambient":   m.Ambient(),
		"diffuse":   m.Diffuse(),
		"specular":  m.Specular(),
		"shininess": m.Shininess(),
	}
}

// geometryType names a shape's kind
func geometryType(shape geometry.Shape) string {
	switch shape.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Plane:
		return "plane"
	default:
		return "unknown"
	}
}

// inspectPixel casts the camera ray through a pixel and describes the hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) (InspectResponse, error) {
	ray, err := sceneObj.Camera.RayForPixel(pixelX, pixelY)
	if err != nil {
		return InspectResponse{}, err
	}

	hit, ok := sceneObj.World.Intersect(ray).Hit()
	if !ok {
		return InspectResponse{Hit: false}, nil
	}

	comps, err := world.PrepareComputations(hit, ray)
	if err != nil {
		return InspectResponse{}, err
	}
	shadowed, err := sceneObj.World.IsShadowed(comps.OverPoint)
	if err != nil {
		return InspectResponse{}, err
	}
	color, err := sceneObj.World.ShadeHit(comps)
	if err != nil {
		return InspectResponse{}, err
	}

	return InspectResponse{
		Hit:          true,
		ShapeID:      hit.Object.ID(),
		GeometryType: geometryType(hit.Object),
		Point:        [3]float64{comps.Point.X, comps.Point.Y, comps.Point.Z},
		Normal:       [3]float64{comps.Normal.X, comps.Normal.Y, comps.Normal.Z},
		Distance:     hit.T,
		Inside:       comps.Inside,
		InShadow:     shadowed,
		Color:        colorArray(color),
		Material:     materialInfo(hit.Object.Material()),
	}, nil
}

func colorArray(c core.Color) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeJSONError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSONError(w, sceneErrorStatus(err), err.Error())
		return
	}

	response, err := inspectPixel(sceneObj, pixelX, pixelY)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}
