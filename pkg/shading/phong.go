package shading

import (
	"math"

	"github.com/anovak/go-parallel-render/pkg/core"
)

const (
	// ambient base color added to every lit pixel, per channel
	ambient = 15

	// shadowEps is the occlusion margin for shadow testing
	shadowEps = 0.01
)

// NearestIntersection returns the intersection closest to the ray origin
// over all scene objects, or false if nothing is hit. Ties at exactly equal
// distances keep the first object in scene order.
func NearestIntersection(scene *core.Scene, ray core.Ray) (*core.Intersection, bool) {
	var nearest *core.Intersection
	distance := math.MaxFloat64
	for _, object := range scene.Objects {
		if intersection, ok := object.Intersect(ray); ok && intersection.Distance < distance {
			nearest = intersection
			distance = intersection.Distance
		}
	}
	return nearest, nearest != nil
}

// TraceRay evaluates the color seen along the view ray using the Phong
// lighting model with shadow testing. The returned channel intensities are
// unclamped; callers clamp to [0, 255] when writing final pixel values.
// The evaluation reads only the immutable scene and the ray itself.
func TraceRay(scene *core.Scene, viewRay core.Ray) (r, g, b float64) {
	intersection, ok := NearestIntersection(scene, viewRay)
	if !ok || !intersection.Outer {
		return 0, 0, 0
	}
	return determineColor(scene, viewRay, intersection)
}

// determineColor accumulates the contribution of every unoccluded light on
// top of the ambient base color
func determineColor(scene *core.Scene, viewRay core.Ray, intersection *core.Intersection) (r, g, b float64) {
	r, g, b = ambient, ambient, ambient

	for _, light := range scene.Lights {
		if isShadowed(scene, light, intersection) {
			continue
		}
		lr, lg, lb := lightContribution(light, viewRay, intersection)
		r += lr
		g += lg
		b += lb
	}
	return r, g, b
}

// isShadowed reports whether any scene object occludes the light for the
// intersection point. An object occludes if its hit point on the shadow ray
// lies closer to the light than the intersection point, minus the epsilon
// margin.
func isShadowed(scene *core.Scene, light core.Light, intersection *core.Intersection) bool {
	shadowRay := core.RayFromPoints(light.Position, intersection.Point)
	distance := light.Position.Subtract(intersection.Point).Length()
	for _, object := range scene.Objects {
		lightIntersection, ok := object.Intersect(shadowRay)
		if !ok {
			continue
		}
		lightDistance := light.Position.Subtract(lightIntersection.Point).Length()
		if lightDistance+shadowEps < distance {
			return true
		}
	}
	return false
}

// lightContribution computes the Phong diffuse and specular terms of a
// single light at the intersection point
func lightContribution(light core.Light, viewRay core.Ray, intersection *core.Intersection) (r, g, b float64) {
	l := light.Position.Subtract(intersection.Point).Normalize()
	n := intersection.Normal
	reflected := n.Multiply(2).Multiply(l.Dot(n)).Subtract(l).Normalize()
	v := viewRay.Origin.Subtract(intersection.Point).Normalize()

	ln := l.Dot(n)
	if ln < 0 {
		ln = 0
	}
	rv := reflected.Dot(v)
	if rv < 0 {
		rv = 0
	}

	m := intersection.Material
	specular := math.Pow(rv, m.Krn)
	r = float64(light.R) * (m.Kdr*ln + m.Krr*specular)
	g = float64(light.G) * (m.Kdg*ln + m.Krg*specular)
	b = float64(light.B) * (m.Kdb*ln + m.Krb*specular)
	return r, g, b
}
