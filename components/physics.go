package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData holds the velocity applied this frame, in pixels per reference
// frame.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
