package mesh

import (
	"github.com/chewxy/math32"

	"github.com/jdginn/govec/vec"
)

// Plane slicing is adapted from https://github.com/fogleman/choppy/tree/master

// parallelEpsilon is the smallest |normal·segment| treated as crossing the plane
const parallelEpsilon = 1e-7

type Plane struct {
	Point  vec.Vec3
	Normal vec.Vec3
	// U and V span the plane and give the axes of Project
	U, V vec.Vec3
}

func MakePlane(point, normal vec.Vec3) Plane {
	u := perpendicular(normal)
	if u == vec.Zero {
		return Plane{Point: point, Normal: normal}
	}
	u = u.Normalized()
	v := u.Cross(normal).Normalized()
	return Plane{point, normal, u, v}
}

// Project maps point into the 2D coordinates of the plane.
func (p Plane) Project(point vec.Vec3) vec.Vec2 {
	d := point.Sub(p.Point)
	return vec.V2(d.Dot(p.U), d.Dot(p.V))
}

func perpendicular(a vec.Vec3) vec.Vec3 {
	if a.X == 0 && a.Y == 0 {
		if a.Z == 0 {
			return vec.Vec3{}
		}
		return vec.V(0, 1, 0)
	}
	return vec.V(-a.Y, a.X, 0).Normalized()
}

// IntersectSegment returns the point where the segment v0-v1 crosses the plane.
func (p Plane) IntersectSegment(v0, v1 vec.Vec3) (vec.Vec3, bool) {
	u := v1.Sub(v0)
	w := v0.Sub(p.Point)
	d := p.Normal.Dot(u)
	if math32.Abs(d) < parallelEpsilon {
		return vec.Vec3{}, false
	}
	t := -p.Normal.Dot(w) / d
	if t < 0 || t > 1 {
		return vec.Vec3{}, false
	}
	return v0.Add(u.Mul(t)), true
}

// IntersectTriangle returns the segment where the plane cuts t, oriented so that walking
// from the first point to the second keeps the triangle's front face on the left.
func (p Plane) IntersectTriangle(t Triangle) (vec.Vec3, vec.Vec3, bool) {
	v1, ok1 := p.IntersectSegment(t.V1, t.V2)
	v2, ok2 := p.IntersectSegment(t.V2, t.V3)
	v3, ok3 := p.IntersectSegment(t.V3, t.V1)
	var p1, p2 vec.Vec3
	switch {
	case ok1 && ok2:
		p1, p2 = v1, v2
	case ok1 && ok3:
		p1, p2 = v1, v3
	case ok2 && ok3:
		p1, p2 = v2, v3
	default:
		return vec.Vec3{}, vec.Vec3{}, false
	}
	if p1 == p2 {
		return vec.Vec3{}, vec.Vec3{}, false
	}
	n := p2.Sub(p1).Cross(p.Normal)
	if n.Dot(t.Normal()) < 0 {
		return p1, p2, true
	}
	return p2, p1, true
}

func joinPaths(paths []Path) []Path {
	frontLookup := make(map[vec.Vec3]Path, len(paths))
	for _, path := range paths {
		frontLookup[path[0]] = path
	}
	var result []Path
	for len(frontLookup) > 0 {
		var v vec.Vec3
		for v = range frontLookup {
			break
		}
		var path Path
	outer:
		for {
			path = append(path, v)
			if p, ok := frontLookup[v]; ok {
				delete(frontLookup, v)
				v = p[len(p)-1]
			} else {
				for k, thisPath := range frontLookup {
					if thisPath[len(thisPath)-1] == v {
						delete(frontLookup, k)
						v = k
						continue outer
					}
				}
				break
			}
		}
		result = append(result, path)
	}
	return result
}

// Slice cuts m with the plane and joins the cut segments into paths.
func (p Plane) Slice(m *Mesh) []Path {
	var paths []Path
	for _, t := range m.Triangles {
		if v1, v2, ok := p.IntersectTriangle(t); ok {
			paths = append(paths, Path{v1, v2})
		}
	}
	return joinPaths(paths)
}

// SlicePaths is Slice with every path projected into the plane.
func (p Plane) SlicePaths(m *Mesh) []Path2D {
	result := []Path2D{}
	for _, path := range p.Slice(m) {
		thisPath := make(Path2D, 0, len(path))
		for _, v := range path {
			thisPath = append(thisPath, p.Project(v))
		}
		result = append(result, thisPath)
	}
	return result
}
