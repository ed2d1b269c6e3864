package vector

import "github.com/chewxy/math32"

// directionPi is the π approximation used by Direction.
const directionPi float32 = 3.14

// Vec2 is a 2-component float32 vector.
type Vec2 struct {
	X float32
	Y float32
}

// Unit directions in the XY plane. Treat them as constants.
var (
	Vec2Up    = Vec2{X: 0, Y: 1}
	Vec2Down  = Vec2{X: 0, Y: -1}
	Vec2Right = Vec2{X: 1, Y: 0}
	Vec2Left  = Vec2{X: -1, Y: 0}
)

// NewVec2 constructs a Vec2 from its components.
func NewVec2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// SplatVec2 returns a Vec2 with both components set to v.
func SplatVec2(v float32) Vec2 { return Vec2{X: v, Y: v} }

// MaxVec2 returns the component-wise maximum of a and b. For each component
// a wins only when a > b holds, so a NaN in b is selected and a NaN in a is
// not.
func MaxVec2(a, b Vec2) Vec2 {
	return Vec2{X: maxf(a.X, b.X), Y: maxf(a.Y, b.Y)}
}

// MinVec2 returns the component-wise minimum of a and b, with the same NaN
// behaviour as MaxVec2.
func MinVec2(a, b Vec2) Vec2 {
	return Vec2{X: minf(a.X, b.X), Y: minf(a.Y, b.Y)}
}

// Sum returns x + y.
func (v Vec2) Sum() float32 { return v.X + v.Y }

// ToVec3 lifts v into 3D with z = 0.
func (v Vec2) ToVec3() Vec3 { return Vec3{X: v.X, Y: v.Y, Z: 0} }

// Magnitude returns the Euclidean length of v. It overflows to +Inf rather
// than widening to float64.
func (v Vec2) Magnitude() float32 {
	return math32.Sqrt(float32(v.X*v.X) + float32(v.Y*v.Y))
}

// Direction returns atan(y/x) in degrees. A zero x yields ±90 (or NaN for the
// zero vector) following IEEE-754 division.
func (v Vec2) Direction() float32 {
	radian := math32.Atan(v.Y / v.X)
	return radian * 180 / directionPi
}

// Equal reports whether both components are equal. It matches v == o.
func (v Vec2) Equal(o Vec2) bool { return v.X == o.X && v.Y == o.Y }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{X: v.X * o.X, Y: v.Y * o.Y} }

// Scale multiplies each component by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Div divides component-wise. Zero divisors yield ±Inf or NaN.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{X: v.X / o.X, Y: v.Y / o.Y} }

// DivScalar divides each component by s.
func (v Vec2) DivScalar(s float32) Vec2 { return Vec2{X: v.X / s, Y: v.Y / s} }

// String renders v as "(x, y)".
func (v Vec2) String() string {
	return "(" + formatComponent(v.X) + ", " + formatComponent(v.Y) + ")"
}
