package mesh

import (
	lin "github.com/sgreben/piecewiselinear"

	"github.com/jdginn/govec/vec"
)

// Path is a polyline in 3D
type Path []vec.Vec3

func (p Path) Length() float32 {
	var length float32
	for i := 1; i < len(p); i++ {
		length += p[i].Sub(p[i-1]).Magnitude()
	}
	return length
}

// At samples the path by arc length: 0 is the first point, 1 the last. t is clamped to
// [0, 1].
func (p Path) At(t float64) vec.Vec3 {
	if len(p) == 0 {
		return vec.Zero
	}
	// repeated points would give the interpolants a zero-width step
	s := []float64{0}
	points := Path{p[0]}
	var dist float64
	for i := 1; i < len(p); i++ {
		step := float64(p[i].Sub(p[i-1]).Magnitude())
		if step == 0 {
			continue
		}
		dist += step
		s = append(s, dist)
		points = append(points, p[i])
	}
	if dist == 0 {
		return p[0]
	}
	for i := range s {
		s[i] /= dist
	}
	t = min(max(t, 0), 1)

	var out vec.Vec3
	for i := 0; i < vec.ElementCount3; i++ {
		f := lin.Function{X: s, Y: make([]float64, len(points))}
		for j, v := range points {
			f.Y[j] = float64(v.Get(i))
		}
		out.Set(i, float32(f.At(t)))
	}
	return out
}

// Path2D is a polyline projected into a plane
type Path2D []vec.Vec2

func (p Path2D) BoundingBox() (XMin, XMax, YMin, YMax float32) {
	if len(p) == 0 {
		return
	}
	XMin, XMax, YMin, YMax = p[0].X, p[0].X, p[0].Y, p[0].Y
	for _, v := range p {
		XMin = min(XMin, v.X)
		XMax = max(XMax, v.X)
		YMin = min(YMin, v.Y)
		YMax = max(YMax, v.Y)
	}
	return
}
