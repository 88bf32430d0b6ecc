package core

import "math"

// Vec2 is a 2D vector in world units, origin at the centre of the play area, y up
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LenSq returns squared length, avoids sqrt for threshold comparisons
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Dist returns Euclidean distance between two points
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector, or zero vector if length is zero or not finite
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// MoveToward steps from v toward target by at most maxStep
// Returns the new position and true if the target was reached
func (v Vec2) MoveToward(target Vec2, maxStep float64) (Vec2, bool) {
	delta := target.Sub(v)
	dist := delta.Len()
	if dist <= maxStep {
		return target, true
	}
	return v.Add(delta.Scale(maxStep / dist)), false
}
