package factory

import (
	"github.com/automoto/mysticwoods/archetypes"
	"github.com/automoto/mysticwoods/components"
	"github.com/automoto/mysticwoods/config"
	"github.com/automoto/mysticwoods/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns a player actor with its collider's top-left at (x, y).
func CreatePlayer(w donburi.World, space *resolv.Space, c config.ActorConfig, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	initActor(player, space, c, components.KindPlayer, tags.ResolvPlayer, x, y)
	return player
}

func initActor(e *donburi.Entry, space *resolv.Space, c config.ActorConfig, kind components.ActorKind, kindTag string, x, y float64) {
	obj := resolv.NewObject(x, y, c.CollisionWidth, c.CollisionHeight, tags.ResolvActor, kindTag)
	obj.SetShape(resolv.NewRectangle(0, 0, c.CollisionWidth, c.CollisionHeight))
	obj.Data = e // Linked for O(1) lookup
	space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	components.Actor.SetValue(e, components.ActorData{Kind: kind, Name: kind.String()})
	components.Stats.SetValue(e, c.Stats())
	components.Movement.SetValue(e, c.Profile())
	components.Attack.SetValue(e, c.AttackState())
}
