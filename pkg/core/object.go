package core

// Material holds the Phong reflection coefficients of an object's surface:
// diffuse and specular components per color channel plus the shininess
// exponent. Immutable after construction.
type Material struct {
	Kdr, Kdg, Kdb float64 // diffuse
	Krr, Krg, Krb float64 // specular
	Krn           float64 // shininess exponent
}

// Intersection describes a single ray-object intersection. A fresh value is
// produced per query and owned by the caller.
type Intersection struct {
	Point    Vec3     // hit point on the object surface
	Distance float64  // distance from the ray origin to the hit point
	Outer    bool     // true if the ray approached from outside the object
	Normal   Vec3     // unit surface normal at the hit point
	Material Material // material coefficients of the hit object
}

// Object is the capability shared by every intersectable scene object
type Object interface {
	// Intersect returns the closest intersection of the ray with the
	// object, or false if the ray misses it.
	Intersect(ray Ray) (*Intersection, bool)
}
