package scene

import (
	"math"

	"github.com/achilleasa/afterglow/types"
)

type PrimitiveType uint32

const (
	SpherePrimitive PrimitiveType = iota
)

// Information about a ray-primitive intersection.
type Hit struct {
	// Distance along the ray.
	T float32

	Point types.Vec3

	// Surface normal. It always points against the incoming ray.
	Normal types.Vec3

	// True if the ray hit the outside of the surface.
	FrontFace bool

	Material *Material
}

// Defines a scene primitive.
type Primitive struct {
	// The primitive type.
	Type PrimitiveType

	// The primitive origin.
	Origin types.Vec3

	// Primitive dimensions. Spheres only use the first component as the
	// radius; a negative radius flips the normals to model hollow shells.
	Dimensions types.Vec3

	// The primitive material.
	Material *Material
}

// Create new sphere primitive.
func NewSphere(origin types.Vec3, radius float32, material *Material) *Primitive {
	return &Primitive{
		Type:       SpherePrimitive,
		Origin:     origin,
		Dimensions: types.Vec3{radius},
		Material:   material,
	}
}

// Intersect a ray with this primitive. Only hits with distance in
// [tMin, tMax] are reported.
func (p *Primitive) Intersect(ray types.Ray, tMin, tMax float32) (Hit, bool) {
	switch p.Type {
	case SpherePrimitive:
		return p.intersectSphere(ray, tMin, tMax)
	}
	return Hit{}, false
}

func (p *Primitive) intersectSphere(ray types.Ray, tMin, tMax float32) (Hit, bool) {
	radius := p.Dimensions[0]
	oc := ray.Origin.Sub(p.Origin)
	a := ray.Dir.LenSq()
	halfB := oc.Dot(ray.Dir)
	c := oc.LenSq() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Hit{}, false
	}
	sqrtD := float32(math.Sqrt(float64(discriminant)))

	// Find the nearest root in the accepted range.
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return Hit{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Sub(p.Origin).Div(radius)
	frontFace := ray.Dir.Dot(outwardNormal) < 0
	normal := outwardNormal
	if !frontFace {
		normal = normal.Mul(-1)
	}

	return Hit{
		T:         root,
		Point:     point,
		Normal:    normal,
		FrontFace: frontFace,
		Material:  p.Material,
	}, true
}
