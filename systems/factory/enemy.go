package factory

import (
	"github.com/automoto/mysticwoods/archetypes"
	"github.com/automoto/mysticwoods/components"
	"github.com/automoto/mysticwoods/config"
	"github.com/automoto/mysticwoods/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy actor. Enemies carry the same components as
// players and are driven by whatever writes their input snapshot.
func CreateEnemy(w donburi.World, space *resolv.Space, c config.ActorConfig, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)
	initActor(enemy, space, c, components.KindEnemy, tags.ResolvEnemy, x, y)
	return enemy
}
