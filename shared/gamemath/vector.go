package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Normalize returns v scaled to unit length. Vectors too short to carry a
// direction come back as the zero vector rather than unchanged.
func Normalize(v dmath.Vec2) dmath.Vec2 {
	if v.Magnitude() <= dmath.Epsilon {
		return dmath.Vec2{}
	}
	return v.Normalized()
}

// AimVelocity returns a velocity of the given speed pointing from -> to.
// Coincident points yield a zero velocity.
func AimVelocity(from, to dmath.Vec2, speed float64) dmath.Vec2 {
	return Normalize(to.Sub(from)).MulScalar(speed)
}
