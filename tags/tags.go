package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Hitbox = donburi.NewTag().SetName("Hitbox")
)

// Resolv tags for overlap queries
const (
	ResolvActor  = "actor"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvHitbox = "hitbox"
)
