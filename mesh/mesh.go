package mesh

import (
	"fmt"

	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"

	"github.com/jdginn/govec/vec"
)

type Triangle struct {
	V1, V2, V3 vec.Vec3
}

// Normal is the unit normal of t following the right-hand rule over V1, V2, V3.
func (t Triangle) Normal() vec.Vec3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Normalized()
}

func (t Triangle) Area() float32 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Magnitude() / 2
}

type Mesh struct {
	Triangles []Triangle
	// compiled lazily for ray casting
	compiled *pt.Mesh
}

func New(triangles []Triangle) *Mesh {
	return &Mesh{Triangles: triangles}
}

// Load3MF reads every mesh object in the build of a 3MF file. Vertex coordinates are
// divided by scale, so 1000 turns millimeters into meters.
func Load3MF(path string, scale float32) (*Mesh, error) {
	var model go3mf.Model
	r, err := go3mf.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening 3mf file: %w", err)
	}
	defer r.Close()
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("decoding 3mf file: %w", err)
	}

	m := &Mesh{}
	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok || obj.Mesh == nil {
			continue
		}
		vertices := obj.Mesh.Vertices.Vertex
		for _, t := range obj.Mesh.Triangles.Triangle {
			m.Triangles = append(m.Triangles, Triangle{
				V1: vec.FromPoint3D(vertices[t.V1]).Mul(1 / scale),
				V2: vec.FromPoint3D(vertices[t.V2]).Mul(1 / scale),
				V3: vec.FromPoint3D(vertices[t.V3]).Mul(1 / scale),
			})
		}
	}
	return m, nil
}

// BoundingBox returns the component-wise minimum and maximum over all vertices.
func (m *Mesh) BoundingBox() (min, max vec.Vec3) {
	if len(m.Triangles) == 0 {
		return
	}
	min, max = m.Triangles[0].V1, m.Triangles[0].V1
	for _, t := range m.Triangles {
		for _, v := range []vec.Vec3{t.V1, t.V2, t.V3} {
			for i := 0; i < vec.ElementCount3; i++ {
				if v.Get(i) < min.Get(i) {
					min.Set(i, v.Get(i))
				}
				if v.Get(i) > max.Get(i) {
					max.Set(i, v.Get(i))
				}
			}
		}
	}
	return
}

// ToPT converts m into a compiled pt.Mesh. The result is cached.
func (m *Mesh) ToPT() *pt.Mesh {
	if m.compiled != nil {
		return m.compiled
	}
	triangles := make([]*pt.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		triangles[i] = pt.NewTriangle(vec.ToPT(t.V1), vec.ToPT(t.V2), vec.ToPT(t.V3), pt.Vector{}, pt.Vector{}, pt.Vector{}, pt.Material{})
	}
	m.compiled = pt.NewMesh(triangles)
	m.compiled.Compile()
	return m.compiled
}

// Raycast returns the first point where the ray from origin along dir hits the mesh.
func (m *Mesh) Raycast(origin, dir vec.Vec3) (vec.Vec3, bool) {
	ray := pt.Ray{Origin: vec.ToPT(origin), Direction: vec.ToPT(dir).Normalize()}
	hit := m.ToPT().Intersect(ray)
	if !hit.Ok() {
		return vec.Vec3{}, false
	}
	return vec.FromPT(hit.Info(ray).Position), true
}
