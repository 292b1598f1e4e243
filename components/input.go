package components

import (
	"github.com/yohamta/donburi"
)

// InputData is the boolean input snapshot read by the simulation. Frontends
// and the autopilot write it before each update.
type InputData struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool

	Restart   bool // handled by the scene, not the simulation
	Autopilot bool // when set the autopilot overwrites the movement flags
	Debug     bool // collision box overlay
}

// Clear resets the movement and fire flags.
func (i *InputData) Clear() {
	i.Up, i.Down, i.Left, i.Right, i.Fire = false, false, false, false, false
}

var Input = donburi.NewComponentType[InputData]()
