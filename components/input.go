package components

import (
	cfg "github.com/automoto/mysticwoods/config"
	"github.com/automoto/mysticwoods/movement"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions of one actor. JustPressed/JustReleased are computed on demand.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Set records the frame sampled for the current tick.
func (in *InputData) Set(current [cfg.ActionCount]bool) {
	in.Current = current
}

// Latch ends the tick: the current frame becomes the previous one, so a
// frame that is not refreshed reads as held rather than pressed again.
func (in *InputData) Latch() {
	in.Previous = in.Current
}

// Action returns the temporal state of one action.
func (in *InputData) Action(action cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[action],
		JustPressed:  in.Current[action] && !in.Previous[action],
		JustReleased: !in.Current[action] && in.Previous[action],
	}
}

// Directions returns the held movement directions.
func (in *InputData) Directions() movement.Directions {
	var d movement.Directions
	if in.Current[cfg.ActionMoveUp] {
		d |= movement.Up
	}
	if in.Current[cfg.ActionMoveDown] {
		d |= movement.Down
	}
	if in.Current[cfg.ActionMoveLeft] {
		d |= movement.Left
	}
	if in.Current[cfg.ActionMoveRight] {
		d |= movement.Right
	}
	return d
}

var Input = donburi.NewComponentType[InputData]()
