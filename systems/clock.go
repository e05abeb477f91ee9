package systems

import (
	"log"

	"github.com/automoto/mysticwoods/components"
	"github.com/yohamta/donburi"
)

// worldState returns the singleton created by factory.CreateWorldState.
func worldState(w donburi.World) (*donburi.Entry, bool) {
	return components.Clock.First(w)
}

// AdvanceClock starts a new tick of dt seconds. Call it before running the
// systems for that tick.
func AdvanceClock(w donburi.World, dt float64) {
	state, ok := worldState(w)
	if !ok {
		log.Printf("[sim] no world state, clock not advanced")
		return
	}
	clock := components.Clock.Get(state)
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Tick++
}

// deltaTime returns the current tick length, or false without a world state.
func deltaTime(w donburi.World) (float64, bool) {
	state, ok := worldState(w)
	if !ok {
		return 0, false
	}
	return components.Clock.Get(state).Delta, true
}
