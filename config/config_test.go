package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdginn/govec/vec"
)

const sampleDoc = `
mesh:
  path: room.3mf
  scale: 1000
vectors:
  a: [1, 2, 3]
  b: {x: -1, y: 0.5}
normals:
  up: [0, 0, 1]
slice:
  point: [0, 0, 1.2]
  normal: [0, 0, 1]
  width: 800
  height: 600
`

func writeDoc(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "vectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	assert := assert.New(t)

	path := writeDoc(t, sampleDoc)
	doc, err := LoadFromFile(path, LoadOptions{ValidateImmediately: true, ResolvePaths: true})
	require.NoError(t, err)

	assert.Equal(filepath.Join(filepath.Dir(path), "room.3mf"), doc.Mesh.Path)
	assert.EqualValues(1000, doc.Mesh.Scale)
	assert.Equal(vec.V(1, 2, 3), doc.Vectors["a"])
	assert.Equal(vec.V(-1, 0.5, 0), doc.Vectors["b"])
	assert.Equal(vec.V(0, 0, 1), doc.Normals["up"])
	assert.Equal(Slice{Point: vec.V(0, 0, 1.2), Normal: vec.V(0, 0, 1), Width: 800, Height: 600}, doc.Slice)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"), LoadOptions{})
	assert.Error(err)

	_, err = LoadFromFile(writeDoc(t, "vectors: [1, 2"), LoadOptions{})
	assert.Error(err)

	_, err = LoadFromFile(writeDoc(t, "normals: {up: [.nan, 0, 0]}"), LoadOptions{ValidateImmediately: true})
	assert.ErrorContains(err, "normals.up")
}

func TestSaveToFile(t *testing.T) {
	assert := assert.New(t)

	doc := &Document{
		Vectors: map[string]vec.Vec3{"a": vec.V(1, 2, 3)},
		Normals: map[string]vec.Vec3{"x": vec.V(1, 0, 0)},
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, SaveToFile(doc, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(string(data), "a: [1, 2, 3]")

	loaded, err := LoadFromFile(path, LoadOptions{ValidateImmediately: true})
	require.NoError(t, err)
	assert.Equal(doc, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		doc    Document
		fields []string
	}{
		{"empty", Document{}, nil},
		{"unit_normal", Document{Normals: map[string]vec.Vec3{"n": vec.V(0, 1, 0)}}, nil},
		{"non_unit_normal", Document{Normals: map[string]vec.Vec3{"n": vec.V(0, 2, 0)}}, []string{"normals.n"}},
		{"nan_normal", Document{Normals: map[string]vec.Vec3{"n": vec.V(float32(math.NaN()), 0, 0)}}, []string{"normals.n"}},
		{"inf_slice_normal", Document{Mesh: Mesh{Path: "room.3mf", Scale: 1}, Slice: Slice{Normal: vec.V(0, 0, float32(math.Inf(1))), Width: 1, Height: 1}}, []string{"slice.normal"}},
		{"zero_normal", Document{Normals: map[string]vec.Vec3{"n": vec.Zero}}, []string{"normals.n"}},
		{"bad_slice", Document{Mesh: Mesh{Path: "room.3mf"}}, []string{"mesh.scale", "slice.normal", "slice.width", "slice.height"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var fields []string
			for _, err := range test.doc.Validate() {
				fields = append(fields, err.Field)
			}
			assert.Equal(t, test.fields, fields)
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", FormatValidationErrors(nil))
	out := FormatValidationErrors([]ValidationError{
		{Field: "slice.width", Message: "must be positive"},
		{Field: "normals.up", Message: "must be a unit vector"},
	})
	assert.Equal("Validation Errors:\n\nNORMALS:\n  - up: must be a unit vector\n\nSLICE:\n  - width: must be positive\n", out)
}

func TestPathResolver(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	pr := NewPathResolver(dir)
	assert.Equal(filepath.Join(dir, "a.3mf"), pr.ResolvePath("a.3mf"))
	assert.Equal("/abs/a.3mf", pr.ResolvePath("/abs/a.3mf"))
	assert.Equal("", pr.ResolvePath(""))

	assert.False(pr.FileExists("a.3mf"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.3mf"), nil, 0644))
	assert.True(pr.FileExists("a.3mf"))
}

func TestSortedNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"a", "b", "c"}, SortedNames(map[string]vec.Vec3{"c": vec.Zero, "a": vec.Zero, "b": vec.Zero}))
	assert.Empty(SortedNames(nil))
}
