package systems

import "github.com/yohamta/donburi/ecs"

// AddSystems registers the per-tick systems in phase order: movement and
// attack timers first, then integration and overlap detection, then damage.
// LatchInputs closes the tick.
func AddSystems(e *ecs.ECS) {
	e.AddSystem(UpdateMovement)
	e.AddSystem(UpdateAttacks)
	e.AddSystem(UpdatePhysics)
	e.AddSystem(UpdateObjects)
	e.AddSystem(UpdateCollisions)
	e.AddSystem(UpdateCombat)
	e.AddSystem(LatchInputs)
}
