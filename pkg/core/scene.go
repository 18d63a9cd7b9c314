package core

// Light is a point light source with integer color intensities.
// Intensities are not clamped at the source; clamping happens only when a
// final pixel value is written.
type Light struct {
	Position Vec3
	R, G, B  int
}

// NewLight creates a new point light source
func NewLight(position Vec3, r, g, b int) Light {
	return Light{Position: position, R: r, G: g, B: b}
}

// Scene is an ordered collection of intersectable objects and light sources.
// Object order only breaks ties between intersections at exactly equal
// distances (first in the list wins). A scene is constructed once per render
// request and read-only while rendering.
type Scene struct {
	Objects []Object
	Lights  []Light
}

// NewScene creates a scene from the given objects and lights
func NewScene(objects []Object, lights []Light) *Scene {
	return &Scene{Objects: objects, Lights: lights}
}
