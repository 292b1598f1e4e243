package tags

import "github.com/yohamta/donburi"

var (
	Player        = donburi.NewTag().SetName("Player")
	Enemy         = donburi.NewTag().SetName("Enemy")
	PlayerBullets = donburi.NewTag().SetName("PlayerBullets")
	EnemyBullets  = donburi.NewTag().SetName("EnemyBullets")
)

// Resolv tags for spawn placement
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
