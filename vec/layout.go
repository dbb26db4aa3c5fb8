package vec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Buffer layout of the vector types: column vectors of 4-byte floats.
const (
	floatSize = 4

	Rows2         = 2
	Cols2         = 1
	ElementCount2 = Rows2 * Cols2
	ByteSize2     = ElementCount2 * floatSize

	Rows3         = 3
	Cols3         = 1
	ElementCount3 = Rows3 * Cols3
	ByteSize3     = ElementCount3 * floatSize

	Rows4         = 4
	Cols4         = 1
	ElementCount4 = Rows4 * Cols4
	ByteSize4     = ElementCount4 * floatSize
)

var ErrShortBuffer = errors.New("vec: short buffer")

// AppendBytes appends the little-endian float32 encoding of v to b.
func (v Vec3) AppendBytes(b []byte) []byte {
	for _, f := range v.Array() {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
	}
	return b
}

// Vec3FromBytes decodes the first ByteSize3 bytes of b.
func Vec3FromBytes(b []byte) (Vec3, error) {
	if len(b) < ByteSize3 {
		return Vec3{}, fmt.Errorf("%w: need %d bytes, got %d", ErrShortBuffer, ByteSize3, len(b))
	}
	var v Vec3
	for i := 0; i < ElementCount3; i++ {
		v.Set(i, math.Float32frombits(binary.LittleEndian.Uint32(b[i*floatSize:])))
	}
	return v, nil
}
