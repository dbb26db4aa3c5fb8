package mesh

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdginn/govec/vec"
)

func TestTriangle(t *testing.T) {
	assert := assert.New(t)

	tr := tri(V(0, 0, 0), V(2, 0, 0), V(0, 2, 0))
	assert.Equal(V(0, 0, 1), tr.Normal())
	assert.EqualValues(2, tr.Area())
	assert.Equal(V(0, 0, -1), tri(tr.V1, tr.V3, tr.V2).Normal())
}

func TestBoundingBox(t *testing.T) {
	assert := assert.New(t)

	min, max := tetrahedron().BoundingBox()
	assert.Equal(V(0, 0, 0), min)
	assert.Equal(V(2, 2, 2), max)

	min, max = New(nil).BoundingBox()
	assert.Equal(vec.Zero, min)
	assert.Equal(vec.Zero, max)
}

func TestRaycast(t *testing.T) {
	assert := assert.New(t)
	m := tetrahedron()

	hit, ok := m.Raycast(V(0.5, 0.5, -1), V(0, 0, 1))
	assert.True(ok)
	assert.InDelta(0.5, hit.X, 1e-4)
	assert.InDelta(0.5, hit.Y, 1e-4)
	assert.InDelta(0, hit.Z, 1e-4)

	hit, ok = m.Raycast(V(0.5, 0.5, 5), V(0, 0, -1))
	assert.True(ok)
	assert.InDelta(1, hit.Z, 1e-4)

	_, ok = m.Raycast(V(5, 5, 5), V(1, 0, 0))
	assert.False(ok)
}

func TestPath(t *testing.T) {
	assert := assert.New(t)

	p := Path{V(0, 0, 0), V(1, 0, 0), V(1, 0, 0), V(1, 3, 0)}
	assert.EqualValues(4, p.Length())

	sample := func(want vec.Vec3, at float64) {
		got := p.At(at)
		assert.InDelta(want.X, got.X, 1e-5, "At(%v)", at)
		assert.InDelta(want.Y, got.Y, 1e-5, "At(%v)", at)
		assert.InDelta(want.Z, got.Z, 1e-5, "At(%v)", at)
	}
	sample(V(0, 0, 0), 0)
	sample(V(0.5, 0, 0), 0.125)
	sample(V(1, 0, 0), 0.25)
	sample(V(1, 1.5, 0), 0.625)
	sample(V(1, 3, 0), 1)
	sample(V(0, 0, 0), -1)
	sample(V(1, 3, 0), 2)

	assert.Equal(vec.Zero, Path{}.At(0.5))
	assert.Equal(V(1, 2, 3), Path{V(1, 2, 3), V(1, 2, 3)}.At(0.5))

	XMin, XMax, YMin, YMax := Path2D{vec.V2(1, 2), vec.V2(-1, 4), vec.V2(3, 3)}.BoundingBox()
	assert.EqualValues(-1, XMin)
	assert.EqualValues(3, XMax)
	assert.EqualValues(2, YMin)
	assert.EqualValues(4, YMax)
}

func TestRender(t *testing.T) {
	assert := assert.New(t)

	paths := MakePlane(V(0, 0, 0.5), V(0, 0, 1)).SlicePaths(tetrahedron())
	im := Render(paths, 100, 80)
	assert.Equal(100, im.Bounds().Dx())
	assert.Equal(80, im.Bounds().Dy())

	white := color.RGBAModel.Convert(color.White)
	assert.Equal(white, color.RGBAModel.Convert(im.At(0, 0)))

	drawn := false
	for y := 0; y < 80 && !drawn; y++ {
		for x := 0; x < 100; x++ {
			if color.RGBAModel.Convert(im.At(x, y)) != white {
				drawn = true
				break
			}
		}
	}
	assert.True(drawn)

	blank := Render(nil, 10, 10)
	assert.Equal(white, color.RGBAModel.Convert(blank.At(5, 5)))
	blank = Render([]Path2D{{}}, 10, 10)
	assert.Equal(white, color.RGBAModel.Convert(blank.At(5, 5)))

	// the diagonal fills the drawable area, so its midpoint lands in the image center
	im = Render([]Path2D{{}, {vec.V2(5, 5), vec.V2(6, 6)}}, 100, 100)
	assert.NotEqual(white, color.RGBAModel.Convert(im.At(50, 50)))
	assert.Equal(white, color.RGBAModel.Convert(im.At(20, 80)))
}
