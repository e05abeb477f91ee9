package components

import (
	"github.com/automoto/mysticwoods/movement"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Velocity in pixels per second.
var Velocity = donburi.NewComponentType[dmath.Vec2]()

// Movement is read-only after creation.
var Movement = donburi.NewComponentType[movement.Profile]()
