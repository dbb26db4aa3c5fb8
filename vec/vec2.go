package vec

import "fmt"

// Vec2 is the 2-component sibling of Vec3.
type Vec2 struct {
	X, Y float32
}

func V2(X, Y float32) Vec2 {
	return Vec2{X: X, Y: Y}
}

// FromSlice2 follows the same padding rules as FromSlice.
func FromSlice2(s ...float32) Vec2 {
	var v Vec2
	for i := 0; i < len(s) && i < Rows2; i++ {
		v.Set(i, s[i])
	}
	return v
}

func (v Vec2) Get(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("vec: bad index %d for Vec2", i))
}

func (v *Vec2) Set(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	default:
		panic(fmt.Sprintf("vec: bad index %d for Vec2", i))
	}
}

func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}

// Vec3 zero-extends v.
func (v Vec2) Vec3() Vec3 {
	return FromVec2(v)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Vec2 drops the Z component.
func (v Vec3) Vec2() Vec2 {
	return Vec2{v.X, v.Y}
}
