package components

import (
	"github.com/automoto/starfall/shared/bulletpool"
	"github.com/yohamta/donburi"
)

// BulletPoolData wraps a projectile pool. The pool is held by pointer so the
// firing entity and the pool entity share one buffer.
type BulletPoolData struct {
	Pool *bulletpool.Pool
}

var BulletPool = donburi.NewComponentType[BulletPoolData]()
