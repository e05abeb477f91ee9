package systems

import (
	"fmt"

	"github.com/automoto/mysticwoods/components"
	"github.com/automoto/mysticwoods/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LatchInputs runs last in a tick so the next one can detect fresh presses.
func LatchInputs(ecs *ecs.ECS) {
	for e := range components.Input.Iter(ecs.World) {
		components.Input.Get(e).Latch()
	}
}

// ControlledActor returns the single player actor that accepts local input.
func ControlledActor(w donburi.World) (*donburi.Entry, error) {
	var found *donburi.Entry
	count := 0
	tags.Player.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Input) {
			return
		}
		count++
		found = e
	})

	switch count {
	case 0:
		return nil, ErrNoControlledActor
	case 1:
		return found, nil
	}
	return nil, fmt.Errorf("%w: found %d", ErrMultipleControlledActors, count)
}
