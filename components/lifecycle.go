package components

import (
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/particles"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// LifecycleData tracks the alive → dying → dead progression and owns the
// emitter that animates the dying phase.
type LifecycleData struct {
	State   config.Lifecycle
	Emitter *particles.Emitter
	// Footprint is the sprite area particles are scattered over, measured
	// from the collision box's top-left corner.
	Footprint dmath.Vec2
}

// Advance moves to next if that is the legal successor of the current state.
func (l *LifecycleData) Advance(next config.Lifecycle) bool {
	if !l.State.CanAdvanceTo(next) {
		return false
	}
	l.State = next
	return true
}

func (l *LifecycleData) Alive() bool { return l.State == config.Alive }

func (l *LifecycleData) Dying() bool { return l.State == config.Dying }

func (l *LifecycleData) Dead() bool { return l.State == config.Dead }

var Lifecycle = donburi.NewComponentType[LifecycleData]()
