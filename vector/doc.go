// Package vector defines small float32 value types for 2D and 3D math used by
// this project. It includes:
//   - Vec2 and Vec3 with component-wise arithmetic, min/max and magnitude
//   - Named unit directions (Vec2Up, Vec3Forward, ...)
//   - Dot product for Vec3 and Direction (degrees) for Vec2
//   - Conversions between the two dimensionalities
//
// All operations take and return values; nothing is mutated in place, and
// IEEE-754 special values (NaN, ±Inf) propagate instead of raising errors.
package vector
