package movement

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Turn-boost tuning.
const (
	SharpTurnThreshold   = 0.9
	AlignedThreshold     = 0.98
	TurnBoost            = 4.0
	ShallowTurnBlend     = 0.8
	defaultAccelModifier = 1.0
)

// Profile describes how an actor accelerates. It is read-only after the
// actor is created.
type Profile struct {
	Acceleration float64
	Deceleration float64
	MaxSpeed     float64
}

// Directions is the set of held directional actions.
type Directions uint8

const (
	Up Directions = 1 << iota
	Down
	Left
	Right
)

// Vector sums the unit vectors of every held direction. Screen space: +Y
// points down, so Up is (0, -1).
func (d Directions) Vector() dmath.Vec2 {
	var v dmath.Vec2
	if d&Up != 0 {
		v.Y--
	}
	if d&Down != 0 {
		v.Y++
	}
	if d&Left != 0 {
		v.X--
	}
	if d&Right != 0 {
		v.X++
	}
	return v
}

// Regime classifies how far the desired direction is from the current one.
type Regime int

const (
	Aligned Regime = iota
	ShallowTurn
	SharpTurn
)

func (r Regime) String() string {
	switch r {
	case Aligned:
		return "aligned"
	case ShallowTurn:
		return "shallow"
	case SharpTurn:
		return "sharp"
	}
	return "unknown"
}

// TurnRegime maps a cosine similarity to its regime. 0.9 is shallow and 0.98
// is aligned.
func TurnRegime(similarity float64) Regime {
	switch {
	case similarity < SharpTurnThreshold:
		return SharpTurn
	case similarity < AlignedThreshold:
		return ShallowTurn
	default:
		return Aligned
	}
}

// Step returns the actor's velocity after dt seconds of the given input.
func Step(velocity dmath.Vec2, held Directions, p Profile, dt float64) dmath.Vec2 {
	if held == 0 {
		return Decelerate(velocity, p.Deceleration*dt)
	}

	desired := held.Vector()
	// Unit vectors cancel exactly, so an exact compare is safe here.
	if desired == (dmath.Vec2{}) {
		return velocity
	}
	dir := desired.Normalized()

	modifier := defaultAccelModifier
	if velocity != (dmath.Vec2{}) {
		current := velocity.Normalized()
		switch TurnRegime(current.Dot(&dir)) {
		case SharpTurn:
			modifier = TurnBoost
		case ShallowTurn:
			dir = dir.Sub(current.MulScalar(ShallowTurnBlend)).Normalized()
		}
	}

	velocity = velocity.Add(dir.MulScalar(modifier * p.Acceleration * dt))
	return ClampSpeed(velocity, p.MaxSpeed)
}

// Decelerate shrinks the velocity magnitude by amount, stopping at exactly
// zero instead of reversing.
func Decelerate(velocity dmath.Vec2, amount float64) dmath.Vec2 {
	speed := velocity.Magnitude()
	if speed-amount <= 0 {
		return dmath.Vec2{}
	}
	// Scaling by a positive factor keeps each component's sign.
	return velocity.MulScalar((speed - amount) / speed)
}

// ClampSpeed rescales velocity so its magnitude does not exceed max.
func ClampSpeed(velocity dmath.Vec2, max float64) dmath.Vec2 {
	if speed := velocity.Magnitude(); speed > max {
		return velocity.MulScalar(max / speed)
	}
	return velocity
}
