package vec

import (
	"errors"
	"fmt"

	"github.com/viterin/vek/vek32"
)

var ErrLengthMismatch = errors.New("vec: buffer length mismatch")

// Buffer is a packed array of Vec3s laid out X, Y, Z, X, Y, Z, ... ready for upload to a
// vertex buffer. Its length is always a multiple of ElementCount3.
type Buffer []float32

func NewBuffer(vs ...Vec3) Buffer {
	b := make(Buffer, 0, len(vs)*ElementCount3)
	for _, v := range vs {
		b = b.Append(v)
	}
	return b
}

// Len is the number of vectors in the buffer.
func (b Buffer) Len() int {
	return len(b) / ElementCount3
}

func (b Buffer) checkIndex(i int) {
	if i < 0 || i >= b.Len() {
		panic(fmt.Sprintf("vec: bad index %d for Buffer of %d vectors", i, b.Len()))
	}
}

func (b Buffer) At(i int) Vec3 {
	b.checkIndex(i)
	return FromSlice(b[i*ElementCount3 : (i+1)*ElementCount3]...)
}

// SetAt overwrites the i-th vector. Like At it panics when i is out of range.
func (b Buffer) SetAt(i int, v Vec3) {
	b.checkIndex(i)
	copy(b[i*ElementCount3:(i+1)*ElementCount3], v.Slice())
}

func (b Buffer) Append(v Vec3) Buffer {
	return append(b, v.X, v.Y, v.Z)
}

func (b Buffer) Vectors() []Vec3 {
	vs := make([]Vec3, b.Len())
	for i := range vs {
		vs[i] = b.At(i)
	}
	return vs
}

// Bytes returns the little-endian encoding of the whole buffer.
func (b Buffer) Bytes() []byte {
	out := make([]byte, 0, b.Len()*ByteSize3)
	for i := 0; i < b.Len(); i++ {
		out = b.At(i).AppendBytes(out)
	}
	return out
}

// Scale multiplies every vector by k in place.
func (b Buffer) Scale(k float32) {
	if len(b) == 0 {
		return
	}
	vek32.MulNumber_Inplace(b, k)
}

// AddBuffer adds o to b element-wise in place.
func (b Buffer) AddBuffer(o Buffer) error {
	if len(b) != len(o) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, b.Len(), o.Len())
	}
	if len(b) == 0 {
		return nil
	}
	vek32.Add_Inplace(b, o)
	return nil
}

// Centroid is the mean of all vectors in the buffer. An empty buffer has centroid Zero.
func (b Buffer) Centroid() Vec3 {
	if b.Len() == 0 {
		return Zero
	}
	acc := make([]float32, ElementCount3)
	for i := 0; i < b.Len(); i++ {
		vek32.Add_Inplace(acc, b[i*ElementCount3:(i+1)*ElementCount3])
	}
	vek32.DivNumber_Inplace(acc, float32(b.Len()))
	return FromSlice(acc...)
}

func (b Buffer) Magnitudes() []float32 {
	out := make([]float32, b.Len())
	for i := range out {
		out[i] = vek32.Norm(b[i*ElementCount3 : (i+1)*ElementCount3])
	}
	return out
}

// NormalizeAll rescales every nonzero vector to unit length in place. Zero vectors are
// left as they are.
func (b Buffer) NormalizeAll() {
	for i := 0; i < b.Len(); i++ {
		v := b[i*ElementCount3 : (i+1)*ElementCount3]
		n := vek32.Norm(v)
		if n == 0 {
			continue
		}
		vek32.DivNumber_Inplace(v, n)
	}
}
