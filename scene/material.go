package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/afterglow/types"
)

type MaterialType uint8

const (
	DiffuseMaterial MaterialType = iota
	SpecularMaterial
	RefractiveMaterial
)

// Defines a scene material.
type Material struct {
	// The type of the material.
	Type MaterialType

	// Diffuse color (diffuse and specular materials).
	Albedo types.Vec3

	// Reflection perturbation radius (specular materials only).
	Fuzz float32

	// Index of refraction (refractive materials only)
	IOR float32
}

// Create a lambertian diffuse material.
func NewDiffuse(albedo types.Vec3) *Material {
	return &Material{Type: DiffuseMaterial, Albedo: albedo}
}

// Create a metallic material. Fuzz is clamped to [0, 1].
func NewSpecular(albedo types.Vec3, fuzz float32) *Material {
	if fuzz > 1 {
		fuzz = 1
	} else if fuzz < 0 {
		fuzz = 0
	}
	return &Material{Type: SpecularMaterial, Albedo: albedo, Fuzz: fuzz}
}

// Create a dielectric (glass-like) material.
func NewRefractive(ior float32) *Material {
	return &Material{Type: RefractiveMaterial, IOR: ior}
}

// Scatter an incoming ray at a hit point. It returns the attenuation color,
// the scattered ray and false if the ray was absorbed.
func (m *Material) Scatter(ray types.Ray, hit *Hit, rng *rand.Rand) (types.Vec3, types.Ray, bool) {
	switch m.Type {
	case DiffuseMaterial:
		dir := hit.Normal.Add(RandomUnitVector(rng))
		if dir.NearZero() {
			dir = hit.Normal
		}
		return m.Albedo, types.Ray{Origin: hit.Point, Dir: dir}, true
	case SpecularMaterial:
		dir := ray.Dir.Normalize().Reflect(hit.Normal)
		if m.Fuzz > 0 {
			dir = dir.Add(RandomUnitVector(rng).Mul(m.Fuzz))
		}
		if dir.Dot(hit.Normal) <= 0 {
			return types.Vec3{}, types.Ray{}, false
		}
		return m.Albedo, types.Ray{Origin: hit.Point, Dir: dir}, true
	case RefractiveMaterial:
		etaRatio := m.IOR
		if hit.FrontFace {
			etaRatio = 1.0 / m.IOR
		}

		unitDir := ray.Dir.Normalize()
		cosTheta := float32(math.Min(float64(unitDir.Mul(-1).Dot(hit.Normal)), 1.0))
		sinTheta := float32(math.Sqrt(float64(1.0 - cosTheta*cosTheta)))

		var dir types.Vec3
		if etaRatio*sinTheta > 1.0 || reflectance(cosTheta, etaRatio) > rng.Float32() {
			dir = unitDir.Reflect(hit.Normal)
		} else {
			dir = unitDir.Refract(hit.Normal, etaRatio)
		}
		return types.Vec3{1, 1, 1}, types.Ray{Origin: hit.Point, Dir: dir}, true
	}

	return types.Vec3{}, types.Ray{}, false
}

// Schlick's approximation for reflectance.
func reflectance(cosine, etaRatio float32) float32 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*float32(math.Pow(float64(1-cosine), 5))
}

// Pick a uniformly distributed unit vector using rejection sampling.
func RandomUnitVector(rng *rand.Rand) types.Vec3 {
	for {
		v := types.Vec3{2*rng.Float32() - 1, 2*rng.Float32() - 1, 2*rng.Float32() - 1}
		lenSq := v.LenSq()
		if lenSq > 1e-12 && lenSq <= 1 {
			return v.Normalize()
		}
	}
}
