package scene

import (
	"github.com/anovak/go-parallel-render/pkg/core"
	"github.com/anovak/go-parallel-render/pkg/geometry"
)

// NewPredefinedScene builds the demo scene rendered by cmd/raycaster: two
// spheres lit by two colored point lights. Scene construction happens here,
// on the caller side of the producer boundary; the renderer itself never
// builds scenes.
func NewPredefinedScene() *core.Scene {
	matte := core.Material{
		Kdr: 1, Kdg: 0, Kdb: 0,
		Krr: 0.5, Krg: 0.5, Krb: 0.5,
		Krn: 10,
	}
	glossy := core.Material{
		Kdr: 0, Kdg: 0, Kdb: 1,
		Krr: 0.5, Krg: 0.5, Krb: 0.5,
		Krn: 50,
	}

	objects := []core.Object{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, matte),
		geometry.NewSphere(core.NewVec3(0, 3.5, 0), 1, glossy),
	}
	lights := []core.Light{
		core.NewLight(core.NewVec3(8, 6, 3), 200, 200, 200),
		core.NewLight(core.NewVec3(6, -6, 6), 150, 150, 150),
	}
	return core.NewScene(objects, lights)
}
