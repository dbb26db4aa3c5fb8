package vec

import "fmt"

// Vec4 is the 4-component sibling of Vec3, typically a homogeneous coordinate.
type Vec4 struct {
	X, Y, Z, W float32
}

func V4(X, Y, Z, W float32) Vec4 {
	return Vec4{X: X, Y: Y, Z: Z, W: W}
}

// FromSlice4 follows the same padding rules as FromSlice.
func FromSlice4(s ...float32) Vec4 {
	var v Vec4
	for i := 0; i < len(s) && i < Rows4; i++ {
		v.Set(i, s[i])
	}
	return v
}

func (v Vec4) Get(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("vec: bad index %d for Vec4", i))
}

func (v *Vec4) Set(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	case 3:
		v.W = f
	default:
		panic(fmt.Sprintf("vec: bad index %d for Vec4", i))
	}
}

func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// Vec3 drops the W component.
func (v Vec4) Vec3() Vec3 {
	return FromVec4(v)
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Vec4 extends v with the given W. Pass 0 for a direction, 1 for a point.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}
