package vector

import "github.com/chewxy/math32"

// Vec3 is a 3-component float32 vector.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// Unit directions along the three axes. Treat them as constants.
var (
	Vec3Up       = Vec3{X: 0, Y: 1, Z: 0}
	Vec3Down     = Vec3{X: 0, Y: -1, Z: 0}
	Vec3Right    = Vec3{X: 1, Y: 0, Z: 0}
	Vec3Left     = Vec3{X: -1, Y: 0, Z: 0}
	Vec3Forward  = Vec3{X: 0, Y: 0, Z: 1}
	Vec3Backward = Vec3{X: 0, Y: 0, Z: -1}
)

// NewVec3 constructs a Vec3 from its components.
func NewVec3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// SplatVec3 returns a Vec3 with all components set to v.
func SplatVec3(v float32) Vec3 { return Vec3{X: v, Y: v, Z: v} }

// MaxVec3 returns the component-wise maximum of a and b. See MaxVec2 for NaN
// handling.
func MaxVec3(a, b Vec3) Vec3 {
	return Vec3{X: maxf(a.X, b.X), Y: maxf(a.Y, b.Y), Z: maxf(a.Z, b.Z)}
}

// MinVec3 returns the component-wise minimum of a and b.
func MinVec3(a, b Vec3) Vec3 {
	return Vec3{X: minf(a.X, b.X), Y: minf(a.Y, b.Y), Z: minf(a.Z, b.Z)}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float32 {
	return float32(a.X*b.X) + float32(a.Y*b.Y) + float32(a.Z*b.Z)
}

// Sum returns x + y + z.
func (v Vec3) Sum() float32 { return v.X + v.Y + v.Z }

// ToVec2 drops z.
func (v Vec3) ToVec2() Vec2 { return Vec2{X: v.X, Y: v.Y} }

// Magnitude returns the Euclidean length of v.
func (v Vec3) Magnitude() float32 {
	return math32.Sqrt(float32(v.X*v.X) + float32(v.Y*v.Y) + float32(v.Z*v.Z))
}

// Equal reports whether all components are equal. It matches v == o.
func (v Vec3) Equal(o Vec3) bool { return v.X == o.X && v.Y == o.Y && v.Z == o.Z }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z} }

// AddVec2 adds o to the x and y components, leaving z unchanged.
func (v Vec3) AddVec2(o Vec2) Vec3 { return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z} }

// SubVec2 subtracts o from the x and y components, leaving z unchanged.
func (v Vec3) SubVec2(o Vec2) Vec3 { return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z} }

// Mul multiplies component-wise.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z} }

// Scale multiplies each component by s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

// Div divides component-wise. Zero divisors yield ±Inf or NaN.
func (v Vec3) Div(o Vec3) Vec3 { return Vec3{X: v.X / o.X, Y: v.Y / o.Y, Z: v.Z / o.Z} }

// DivScalar divides each component by s.
func (v Vec3) DivScalar(s float32) Vec3 { return Vec3{X: v.X / s, Y: v.Y / s, Z: v.Z / s} }

// String renders v as "(x, y, z)".
func (v Vec3) String() string {
	return "(" + formatComponent(v.X) + ", " + formatComponent(v.Y) + ", " + formatComponent(v.Z) + ")"
}
