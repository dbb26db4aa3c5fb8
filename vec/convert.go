package vec

import (
	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"
	"gonum.org/v1/gonum/spatial/r3"
)

// ToPT widens v to a pt.Vector for ray tracing.
func ToPT(v Vec3) pt.Vector {
	return pt.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func FromPT(v pt.Vector) Vec3 {
	return V(float32(v.X), float32(v.Y), float32(v.Z))
}

func ToR3(v Vec3) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func FromR3(v r3.Vec) Vec3 {
	return V(float32(v.X), float32(v.Y), float32(v.Z))
}

// FromPoint3D converts a 3MF vertex. Both are float32 so no precision is lost.
func FromPoint3D(p go3mf.Point3D) Vec3 {
	return V(p.X(), p.Y(), p.Z())
}

func ToPoint3D(v Vec3) go3mf.Point3D {
	return go3mf.Point3D(v.Array())
}
