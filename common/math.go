package common

import "math"

// Number is any type Lerp can blend.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Lerp returns (1-t)*a + t*b.
func Lerp[T Number](a, b T, t float64) T {
	return T((1-t)*float64(a) + t*float64(b))
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Approx reports whether a and b differ by at most eps.
func Approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Vec3 is a three component vector. Position and scale tweens use X and Y;
// Z is kept so tween endpoints can be written the same way as colours.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// LerpVec3 interpolates every component of a and b.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// RGBA is a multiplicative tint with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// White leaves the tinted image unchanged.
var White = RGBA{R: 1, G: 1, B: 1, A: 1}

// LerpColor interpolates every channel of a and b.
func LerpColor(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: Lerp(a.R, b.R, t),
		G: Lerp(a.G, b.G, t),
		B: Lerp(a.B, b.B, t),
		A: Lerp(a.A, b.A, t),
	}
}
