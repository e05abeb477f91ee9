package factory

import (
	"github.com/automoto/mysticwoods/archetypes"
	"github.com/automoto/mysticwoods/components"
	"github.com/automoto/mysticwoods/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateWorldState spawns the singleton holding the resolv space and its bounds, clock,
// collision feed, combat log and combat rules.
func CreateWorldState(w donburi.World, c *config.Config) *donburi.Entry {
	state := archetypes.World.Spawn(w)
	space := resolv.NewSpace(c.Sim.SpaceWidth, c.Sim.SpaceHeight, c.Sim.CellSize, c.Sim.CellSize)
	components.Space.Set(state, space)
	components.Bounds.SetValue(state, components.BoundsData{
		Width:  float64(c.Sim.SpaceWidth),
		Height: float64(c.Sim.SpaceHeight),
	})
	components.Rules.SetValue(state, components.RulesData{
		Resistance:    c.Combat.ResistanceMode(),
		OncePerTarget: c.Combat.OncePerTarget,
	})
	return state
}
