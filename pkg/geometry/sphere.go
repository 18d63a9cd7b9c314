package geometry

import (
	"math"

	"github.com/anovak/go-parallel-render/pkg/core"
)

// Sphere is an intersectable scene object defined by its center, radius and
// material coefficients. Immutable after construction.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect returns the closest intersection of the ray with the sphere, or
// false if the ray misses it or the sphere lies behind the ray origin.
func (s *Sphere) Intersect(ray core.Ray) (*core.Intersection, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation for a unit direction: l² + b·l + c = 0
	b := ray.Direction.Multiply(2).Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius
	disc := b*b - 4*c
	if disc < 0 {
		return nil, false
	}

	l1 := (-b - math.Sqrt(disc)) / 2
	l2 := (-b + math.Sqrt(disc)) / 2

	var l float64
	outer := true
	if l1 != l2 && l1 > 0 && l2 > 0 {
		// origin outside the sphere, entering through the nearer root
		l = l1
	} else if l1 != l2 && l1 <= 0 && l2 > 0 {
		// origin inside the sphere, leaving through the farther root
		l = l2
		outer = false
	} else if l1 == l2 && l1 != math.NaN() {
		// tangent ray; the NaN inequality always holds, so the branch
		// fires whenever l1 == l2
		l = l1
	} else {
		// no intersection, or the intersection is behind the observer
		return nil, false
	}

	point := ray.At(l)
	distance := ray.Origin.Subtract(point).Length()
	normal := point.Subtract(s.Center).Normalize()

	return &core.Intersection{
		Point:    point,
		Distance: distance,
		Outer:    outer,
		Normal:   normal,
		Material: s.Material,
	}, true
}
