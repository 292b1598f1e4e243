package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ObjectData is an entity's collision box. X/Y is the top-left corner in
// world space.
type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the box.
func (o *ObjectData) Center() dmath.Vec2 {
	return dmath.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// Position returns the top-left corner.
func (o *ObjectData) Position() dmath.Vec2 {
	return dmath.Vec2{X: o.X, Y: o.Y}
}

var Object = donburi.NewComponentType[ObjectData]()
