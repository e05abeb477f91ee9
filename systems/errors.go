package systems

import "errors"

var (
	ErrNoControlledActor        = errors.New("no controllable actor")
	ErrMultipleControlledActors = errors.New("more than one controllable actor")
	ErrMissingStats             = errors.New("entity has no stats")
	ErrNoWorldState             = errors.New("world state not created")
	ErrNotHitbox                = errors.New("neither side is a live hitbox")
	ErrSelfHit                  = errors.New("hitbox overlaps its own owner")
	ErrAlreadyHit               = errors.New("target already hit by this attack")
)
