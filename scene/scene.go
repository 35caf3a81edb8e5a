package scene

import (
	"bytes"
	"fmt"
	"math"

	"github.com/achilleasa/afterglow/types"
	"github.com/olekukonko/tablewriter"
)

// A scene is a flat list of primitives viewed through a camera.
type Scene struct {
	Camera     *Camera
	Primitives []*Primitive
}

// Append a primitive to the scene.
func (sc *Scene) Add(prim *Primitive) {
	sc.Primitives = append(sc.Primitives, prim)
}

// Find the closest primitive intersection in [tMin, tMax].
func (sc *Scene) Hit(ray types.Ray, tMin, tMax float32) (Hit, bool) {
	var (
		closest Hit
		found   bool
	)

	for _, prim := range sc.Primitives {
		if hit, ok := prim.Intersect(ray, tMin, tMax); ok {
			closest = hit
			found = true
			tMax = hit.T
		}
	}

	return closest, found
}

// Return a table with scene information.
func (sc *Scene) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Primitive", "Origin", "Radius", "Material"})
	for idx, prim := range sc.Primitives {
		table.Append([]string{
			fmt.Sprintf("%d", idx),
			fmt.Sprintf("(%3.2f, %3.2f, %3.2f)", prim.Origin[0], prim.Origin[1], prim.Origin[2]),
			fmt.Sprintf("%3.2f", prim.Dimensions[0]),
			materialName(prim.Material),
		})
	}
	table.Render()

	if sc.Camera != nil {
		buf.WriteString(sc.Camera.String())
		buf.WriteString("\n")
	}
	return buf.String()
}

func materialName(mat *Material) string {
	if mat == nil {
		return "-"
	}
	switch mat.Type {
	case DiffuseMaterial:
		return "diffuse"
	case SpecularMaterial:
		return fmt.Sprintf("specular (fuzz %1.2f)", mat.Fuzz)
	case RefractiveMaterial:
		return fmt.Sprintf("refractive (ior %1.2f)", mat.IOR)
	}
	return "unknown"
}

// Build the demo scene: a yellowish ground, a matte blue sphere flanked by
// a hollow glass sphere and a polished gold sphere.
func Default() *Scene {
	groundMat := NewDiffuse(types.XYZ(0.8, 0.8, 0.0))
	centerMat := NewDiffuse(types.XYZ(0.1, 0.2, 0.5))
	glassMat := NewRefractive(1.5)
	goldMat := NewSpecular(types.XYZ(0.8, 0.6, 0.2), 0.0)

	cam := NewCamera(20)
	cam.Position = types.XYZ(3, 3, 2)
	cam.LookAt = types.XYZ(0, 0, -1)
	cam.Up = types.XYZ(0, 1, 0)
	cam.Aperture = 0.1
	cam.FocusDist = float32(math.Sqrt(27))

	sc := &Scene{Camera: cam}
	sc.Add(NewSphere(types.XYZ(0, -100.5, -1), 100, groundMat))
	sc.Add(NewSphere(types.XYZ(0, 0, -1), 0.5, centerMat))
	sc.Add(NewSphere(types.XYZ(-1, 0, -1), 0.5, glassMat))
	sc.Add(NewSphere(types.XYZ(-1, 0, -1), -0.4, glassMat))
	sc.Add(NewSphere(types.XYZ(1, 0, -1), 0.5, goldMat))
	return sc
}
