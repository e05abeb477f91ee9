package archetypes

import (
	"github.com/automoto/mysticwoods/components"
	"github.com/automoto/mysticwoods/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.Object,
		components.Stats,
		components.Velocity,
		components.Movement,
		components.Attack,
		components.Input,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Actor,
		components.Object,
		components.Stats,
		components.Velocity,
		components.Movement,
		components.Attack,
		components.Input,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	World = newArchetype(
		components.Space,
		components.Bounds,
		components.Clock,
		components.CollisionFeed,
		components.CombatLog,
		components.Rules,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType{}, a.components...), cs...)
	return w.Entry(w.Create(all...))
}
