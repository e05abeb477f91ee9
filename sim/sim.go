// Package sim assembles the donburi world, the resolv space and the per-tick
// systems into one steppable simulation.
package sim

import (
	"errors"
	"fmt"

	"github.com/automoto/mysticwoods/combat"
	"github.com/automoto/mysticwoods/components"
	"github.com/automoto/mysticwoods/config"
	"github.com/automoto/mysticwoods/systems"
	"github.com/automoto/mysticwoods/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var ErrUnknownActor = errors.New("unknown actor")

// Simulation owns one world. It is not safe for concurrent use.
type Simulation struct {
	cfg   *config.Config
	world donburi.World
	ecs   *ecs.ECS
	state *donburi.Entry
	space *resolv.Space
}

// New validates c and builds an empty world. A nil config means defaults.
func New(c *config.Config) (*Simulation, error) {
	if c == nil {
		c = config.Default()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	world := donburi.NewWorld()
	e := ecs.NewECS(world)
	systems.AddSystems(e)
	state := factory.CreateWorldState(world, c)

	return &Simulation{
		cfg:   c,
		world: world,
		ecs:   e,
		state: state,
		space: components.Space.Get(state),
	}, nil
}

func (s *Simulation) Config() *config.Config { return s.cfg }
func (s *Simulation) World() donburi.World   { return s.world }
func (s *Simulation) ECS() *ecs.ECS          { return s.ecs }
func (s *Simulation) Space() *resolv.Space   { return s.space }

// TickDelta is the fixed step length in seconds.
func (s *Simulation) TickDelta() float64 {
	return 1 / float64(s.cfg.Sim.TickRate)
}

// SpawnPlayer places a player with its collider's top-left at (x, y).
func (s *Simulation) SpawnPlayer(x, y float64) donburi.Entity {
	return factory.CreatePlayer(s.world, s.space, s.cfg.Player, x, y).Entity()
}

// SpawnEnemy places an enemy with its collider's top-left at (x, y).
func (s *Simulation) SpawnEnemy(x, y float64) donburi.Entity {
	return factory.CreateEnemy(s.world, s.space, s.cfg.Enemy, x, y).Entity()
}

// SetInput records the held actions an actor acts on during the next Step.
// The frame persists until replaced.
func (s *Simulation) SetInput(actor donburi.Entity, frame [config.ActionCount]bool) error {
	entry, err := s.entry(actor)
	if err != nil {
		return err
	}
	if !entry.HasComponent(components.Input) {
		return fmt.Errorf("set input for %v: %w", actor, ErrUnknownActor)
	}
	components.Input.Get(entry).Set(frame)
	return nil
}

// Step runs one tick of dt seconds through every phase.
func (s *Simulation) Step(dt float64) {
	systems.AdvanceClock(s.world, dt)
	s.ecs.Update()
}

// Tick returns the number of completed steps.
func (s *Simulation) Tick() uint64 {
	return components.Clock.Get(s.state).Tick
}

// Elapsed returns the simulated seconds.
func (s *Simulation) Elapsed() float64 {
	return components.Clock.Get(s.state).Elapsed
}

// Reports returns a copy of the hits resolved during the last Step.
func (s *Simulation) Reports() []combat.Report {
	reports := components.CombatLog.Get(s.state).Reports
	return append([]combat.Report(nil), reports...)
}

// Deaths returns how many actors have been defeated so far.
func (s *Simulation) Deaths() int {
	return components.CombatLog.Get(s.state).Deaths
}

func (s *Simulation) Stats(actor donburi.Entity) (combat.Stats, error) {
	entry, err := s.entry(actor)
	if err != nil {
		return combat.Stats{}, err
	}
	if !entry.HasComponent(components.Stats) {
		return combat.Stats{}, fmt.Errorf("stats of %v: %w", actor, systems.ErrMissingStats)
	}
	return *components.Stats.Get(entry), nil
}

func (s *Simulation) Velocity(actor donburi.Entity) (dmath.Vec2, error) {
	entry, err := s.entry(actor)
	if err != nil {
		return dmath.Vec2{}, err
	}
	return *components.Velocity.Get(entry), nil
}

// Position returns the top-left corner of the actor's collider.
func (s *Simulation) Position(actor donburi.Entity) (x, y float64, err error) {
	entry, err := s.entry(actor)
	if err != nil {
		return 0, 0, err
	}
	obj := components.Object.Get(entry)
	return obj.X, obj.Y, nil
}

// Attacking reports whether the actor's attack window is open.
func (s *Simulation) Attacking(actor donburi.Entity) (bool, error) {
	entry, err := s.entry(actor)
	if err != nil {
		return false, err
	}
	return components.Attack.Get(entry).Attacking(), nil
}

// entry resolves a live actor.
func (s *Simulation) entry(actor donburi.Entity) (*donburi.Entry, error) {
	if !s.world.Valid(actor) {
		return nil, fmt.Errorf("%v: %w", actor, ErrUnknownActor)
	}
	entry := s.world.Entry(actor)
	if !entry.HasComponent(components.Actor) {
		return nil, fmt.Errorf("%v is not an actor: %w", actor, ErrUnknownActor)
	}
	return entry, nil
}
