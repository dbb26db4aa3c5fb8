package vec

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	ErrIndexOutOfRange = errors.New("vec: index out of range")
	ErrZeroLength      = errors.New("vec: zero-length vector")
	ErrNotFinite       = errors.New("vec: magnitude is not finite")
)

// Vec3 is a 3D vector of float32 components. The zero value is (0, 0, 0).
type Vec3 struct {
	X, Y, Z float32
}

// Zero is the default vector (0, 0, 0).
var Zero = Vec3{}

// V is a shorthand constructor for Vec3
func V(X, Y, Z float32) Vec3 {
	return Vec3{X: X, Y: Y, Z: Z}
}

// FromSlice builds a Vec3 from an ordered sequence of components.
//
// Missing trailing components are 0 and anything past the third is ignored.
func FromSlice(s ...float32) Vec3 {
	var v Vec3
	for i := 0; i < len(s) && i < Rows3; i++ {
		v.Set(i, s[i])
	}
	return v
}

func FromArray(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// FromVec2 zero-fills the Z component.
func FromVec2(v Vec2) Vec3 {
	return Vec3{v.X, v.Y, 0}
}

// FromVec4 drops the W component.
func FromVec4(v Vec4) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func validIndex3(i int) bool {
	return i >= 0 && i < ElementCount3
}

// Get returns the component at index i (0=X, 1=Y, 2=Z). It panics for any other index.
func (v Vec3) Get(i int) float32 {
	if !validIndex3(i) {
		panic(fmt.Sprintf("vec: bad index %d for Vec3", i))
	}
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Set writes the component at index i (0=X, 1=Y, 2=Z). It panics for any other index.
func (v *Vec3) Set(i int, f float32) {
	if !validIndex3(i) {
		panic(fmt.Sprintf("vec: bad index %d for Vec3", i))
	}
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	default:
		v.Z = f
	}
}

// Lookup is Get without the panic.
func (v Vec3) Lookup(i int) (float32, error) {
	if !validIndex3(i) {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return v.Get(i), nil
}

// Array returns the components in X, Y, Z order.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func (v Vec3) Slice() []float32 {
	return []float32{v.X, v.Y, v.Z}
}

// Magnitude is the Euclidean length of v.
func (v Vec3) Magnitude() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalized returns a unit-length copy of v.
//
// Normalizing the zero vector divides by zero and yields NaN components. Use
// SafeNormalized when the input may be zero.
func (v Vec3) Normalized() Vec3 {
	m := v.Magnitude()
	n := Vec3{v.X / m, v.Y / m, v.Z / m}
	verifyNormalized(v, n)
	return n
}

// SafeNormalized is Normalized but returns an error instead of a result that is not unit
// length: ErrZeroLength for the zero vector, ErrNotFinite when the magnitude is NaN or
// overflows float32.
func (v Vec3) SafeNormalized() (Vec3, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vec3{}, ErrZeroLength
	}
	if math32.IsNaN(m) || math32.IsInf(m, 0) {
		return Vec3{}, fmt.Errorf("%w: |%v| = %v", ErrNotFinite, v, m)
	}
	return v.Normalized(), nil
}

// Equal reports exact component-wise equality. No epsilon is applied.
func (v Vec3) Equal(u Vec3) bool {
	return v.X == u.X && v.Y == u.Y && v.Z == u.Z
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

func (v Vec3) Sub(u Vec3) Vec3 {
	return v.Add(u.Neg())
}

// Dot returns the sum of the component products of v and u.
func (v Vec3) Dot(u Vec3) float32 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Mul scales every component by k.
func (v Vec3) Mul(k float32) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Cross returns the right-handed cross product v × u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

func Dot(a, b Vec3) float32 {
	return a.Dot(b)
}

func Cross(a, b Vec3) Vec3 {
	return a.Cross(b)
}

// Scale is Mul with the scalar on the left.
func Scale(k float32, v Vec3) Vec3 {
	return v.Mul(k)
}
