package systems

import (
	"github.com/automoto/starfall/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-buckets every collision box in the resolv space after the
// frame's movement.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
