package systems

import (
	"github.com/automoto/mysticwoods/components"
	"github.com/automoto/mysticwoods/movement"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement turns each actor's held directions into a new velocity.
func UpdateMovement(ecs *ecs.ECS) {
	dt, ok := deltaTime(ecs.World)
	if !ok {
		return
	}

	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Velocity) || !e.HasComponent(components.Movement) {
			return
		}
		input := components.Input.Get(e)
		velocity := components.Velocity.Get(e)
		profile := components.Movement.Get(e)

		*velocity = movement.Step(*velocity, input.Directions(), *profile, dt)
	})
}
