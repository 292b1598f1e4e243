package components

import (
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/animations"
	"github.com/automoto/starfall/shared/bulletpool"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind    config.EnemyKind
	Profile *config.EnemyTypeConfig // Cached reference to the variant profile
	Bullets *bulletpool.Pool

	// Patrol
	Direction   float64 // -1 or 1
	PatrolLeft  float64
	PatrolRight float64

	// Combat
	AttackTimer float64               // ms accumulated toward the next attack
	Windup      *animations.Animation // nil for variants that fire without a wind-up
}

// Frame returns the sprite frame index to draw.
func (e *EnemyData) Frame() int {
	if e.Windup == nil {
		return 0
	}
	return e.Windup.Frame()
}

var Enemy = donburi.NewComponentType[EnemyData]()
