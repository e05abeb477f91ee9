package systems

import (
	"log"

	"github.com/automoto/mysticwoods/components"
	"github.com/automoto/mysticwoods/mathutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates velocity into collider position. Actors are
// trigger-only, so only the edges of the space block movement.
func UpdatePhysics(ecs *ecs.ECS) {
	state, ok := worldState(ecs.World)
	if !ok {
		return
	}
	dt := components.Clock.Get(state).Delta
	bounds := components.Bounds.Get(state)

	components.Velocity.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		velocity := components.Velocity.Get(e)

		// Outside the grid resolv finds no neighbours and hits stop landing.
		if !insideBounds(bounds, obj.X, obj.Y, obj.W, obj.H) {
			log.Printf("[physics] %v outside the %vx%v space at (%.1f, %.1f), pulling it back",
				e.Entity(), bounds.Width, bounds.Height, obj.X, obj.Y)
		}

		x := obj.X + velocity.X*dt
		y := obj.Y + velocity.Y*dt
		obj.X = mathutil.ClampFloat(x, 0, bounds.Width-obj.W)
		obj.Y = mathutil.ClampFloat(y, 0, bounds.Height-obj.H)

		// Stop at the edge like against a wall.
		if obj.X != x {
			velocity.X = 0
		}
		if obj.Y != y {
			velocity.Y = 0
		}
	})
}

func insideBounds(b *components.BoundsData, x, y, w, h float64) bool {
	return x >= 0 && y >= 0 && x+w <= b.Width && y+h <= b.Height
}
