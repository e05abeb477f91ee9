package systems

import (
	"log"

	"github.com/automoto/mysticwoods/components"
	cfg "github.com/automoto/mysticwoods/config"
	"github.com/automoto/mysticwoods/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAttacks advances every actor's attack state machine. Hitboxes are
// spawned when an idle actor presses attack and destroyed when the window
// closes.
func UpdateAttacks(ecs *ecs.ECS) {
	state, ok := worldState(ecs.World)
	if !ok {
		log.Printf("[attack] %v, skipping tick", ErrNoWorldState)
		return
	}
	dt := components.Clock.Get(state).Delta
	scene := factory.NewHitboxScene(ecs.World, components.Space.Get(state), components.CollisionFeed.Get(state))

	// Collect first: spawning and removing hitboxes mutates the world.
	var attackers []*donburi.Entry
	components.Attack.Each(ecs.World, func(e *donburi.Entry) {
		attackers = append(attackers, e)
	})

	for _, e := range attackers {
		pressed := false
		if e.HasComponent(components.Input) {
			pressed = components.Input.Get(e).Action(cfg.ActionAttack).JustPressed
		}
		st := components.Attack.Get(e)
		tr := st.Update(scene, e.Entity(), pressed, dt)
		switch {
		case tr.Started && tr.Finished:
			log.Printf("[attack] %v started and finished within one tick", e.Entity())
		case tr.Started:
			hb, _ := st.Hitbox()
			log.Printf("[attack] %v started, hitbox %v for %.2fs", e.Entity(), hb, st.Duration)
		case tr.Finished:
			log.Printf("[attack] %v finished", e.Entity())
		}
	}
}
