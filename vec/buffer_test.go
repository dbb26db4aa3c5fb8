package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(3, ElementCount3)
	assert.Equal(12, ByteSize3)
	assert.Equal(8, ByteSize2)
	assert.Equal(16, ByteSize4)

	b := V(1, -2, 0.5).AppendBytes(nil)
	assert.Len(b, ByteSize3)
	v, err := Vec3FromBytes(b)
	assert.NoError(err)
	assert.Equal(V(1, -2, 0.5), v)

	_, err = Vec3FromBytes(b[:ByteSize3-1])
	assert.ErrorIs(err, ErrShortBuffer)
}

func TestBuffer(t *testing.T) {
	assert := assert.New(t)

	b := NewBuffer(V(1, 2, 3), V(3, 4, 0), V(0, 0, 0))
	assert.Equal(3, b.Len())
	assert.Equal(V(3, 4, 0), b.At(1))
	assert.Equal([]Vec3{V(1, 2, 3), V(3, 4, 0), V(0, 0, 0)}, b.Vectors())
	assert.Len(b.Bytes(), 3*ByteSize3)

	b.SetAt(2, V(-1, -1, -1))
	assert.Equal(V(-1, -1, -1), b.At(2))
	assert.Panics(func() { b.At(3) })
	assert.Panics(func() { b.SetAt(3, V(9, 9, 9)) })
	assert.Panics(func() { b.SetAt(-1, V(9, 9, 9)) })
	assert.Panics(func() { Buffer{1, 2, 3, 4}.SetAt(1, V(9, 9, 9)) })
	assert.Equal(V(-1, -1, -1), b.At(2))

	approxEqual(assert, V(1, 5.0/3, 2.0/3), b.Centroid(), epsilon)
	assert.Equal(Zero, Buffer{}.Centroid())

	mags := b.Magnitudes()
	assert.InDelta(V(1, 2, 3).Magnitude(), mags[0], epsilon)
	assert.InDelta(5, mags[1], epsilon)

	b.Scale(2)
	assert.Equal(V(6, 8, 0), b.At(1))

	assert.NoError(b.AddBuffer(NewBuffer(V(1, 1, 1), V(1, 1, 1), V(1, 1, 1))))
	assert.Equal(V(3, 5, 7), b.At(0))
	assert.ErrorIs(b.AddBuffer(NewBuffer(V(1, 1, 1))), ErrLengthMismatch)

	b = b.Append(Zero)
	b.NormalizeAll()
	for i, m := range b.Magnitudes()[:3] {
		assert.InDelta(1, m, epsilon, "vector %d", i)
	}
	assert.Equal(Zero, b.At(3))
}
