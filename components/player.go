package components

import (
	"github.com/automoto/starfall/shared/animations"
	"github.com/automoto/starfall/shared/bulletpool"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Bullets   *bulletpool.Pool // pool the player fires into
	FireTimer float64          // ms since the last shot
	Animation *animations.Animation
	Steering  int // -1 left, 0 level, 1 right
}

var Player = donburi.NewComponentType[PlayerData]()
