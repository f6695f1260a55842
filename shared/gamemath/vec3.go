package gamemath

import "math"

// Vec3 is a world-space vector. Y is up; the ground plane is XZ.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) LenSq() float64 { return v.Dot(v) }

func (v Vec3) Len() float64 { return math.Sqrt(v.LenSq()) }

// Horizontal drops the vertical component.
func (v Vec3) Horizontal() Vec3 { return Vec3{X: v.X, Z: v.Z} }

// Normalize returns the unit vector, or the zero vector when v is shorter
// than Epsilon.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < Epsilon {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Lerp interpolates each component from v toward o by t.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t), Lerp(v.Z, o.Z, t)}
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool { return v == Vec3{} }

// ClosestOnSegment returns the point of segment a→b nearest to p and its
// parameter along the segment in [0, 1]. A degenerate segment returns a.
func ClosestOnSegment(a, b, p Vec3) (Vec3, float64) {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq < Epsilon*Epsilon {
		return a, 0
	}
	t := Clamp01(p.Sub(a).Dot(ab) / lenSq)
	return a.Add(ab.Scale(t)), t
}

// FacingVector returns the horizontal unit vector for a facing angle in
// radians. Angle 0 faces +Z and +π/2 faces +X.
func FacingVector(angle float64) Vec3 {
	return Vec3{X: math.Sin(angle), Z: math.Cos(angle)}
}

// FacingAngle is the inverse of FacingVector for a horizontal direction.
func FacingAngle(dir Vec3) float64 {
	return math.Atan2(dir.X, dir.Z)
}

// WrapAngle maps an angle into (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
