package config

import "github.com/jdginn/govec/vec"

// Document is a YAML file of named vectors plus an optional mesh to slice
type Document struct {
	Mesh    Mesh                `yaml:"mesh,omitempty"`
	Vectors map[string]vec.Vec3 `yaml:"vectors,omitempty"`
	// Normals must all be unit vectors
	Normals map[string]vec.Vec3 `yaml:"normals,omitempty"`
	Slice   Slice               `yaml:"slice,omitempty"`
}

type Mesh struct {
	Path string `yaml:"path"`
	// Vertex coordinates are divided by Scale; 1000 converts millimeters to meters
	Scale float32 `yaml:"scale"`
}

type Slice struct {
	Point  vec.Vec3 `yaml:"point"`
	Normal vec.Vec3 `yaml:"normal"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
}
