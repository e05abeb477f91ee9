package attack

import (
	"log"

	"github.com/yohamta/donburi"
)

// durationEpsilon absorbs the rounding left by summing fixed float steps, so
// thirty 1/60 s ticks close a 0.5 s window.
const durationEpsilon = 1e-9

// Phase of the attack state machine.
type Phase int

const (
	Idle Phase = iota
	Active
)

func (p Phase) String() string {
	if p == Active {
		return "active"
	}
	return "idle"
}

// HitboxSpec sizes and places a hit-volume relative to the owner's center.
type HitboxSpec struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// Scene spawns and destroys hit-volumes on behalf of an attack.
type Scene interface {
	// SpawnHitbox creates a trigger-only volume parented to owner.
	SpawnHitbox(owner donburi.Entity, spec HitboxSpec) donburi.Entity
	// DestroyHitbox removes the volume and everything it owns. It reports
	// false if the volume no longer exists.
	DestroyHitbox(hitbox donburi.Entity) bool
}

// Transition reports what changed during one Update.
type Transition struct {
	Started  bool
	Finished bool
}

// State is the per-actor attack state. The hit-volume slot is private: only
// the State that spawned a volume can destroy it.
type State struct {
	Phase    Phase
	Elapsed  float64
	Duration float64
	Spec     HitboxSpec

	hitbox    donburi.Entity
	hasHitbox bool
}

// NewState returns an idle attack with the given active window.
func NewState(duration float64, spec HitboxSpec) State {
	return State{Duration: duration, Spec: spec}
}

// Attacking reports whether the active window is open.
func (s *State) Attacking() bool {
	return s.Phase == Active
}

// Hitbox returns the owned hit-volume, if any.
func (s *State) Hitbox() (donburi.Entity, bool) {
	return s.hitbox, s.hasHitbox
}

// Update advances the state machine by dt. A press while Active is dropped.
func (s *State) Update(scene Scene, owner donburi.Entity, attackPressed bool, dt float64) Transition {
	var tr Transition

	if s.Phase == Idle && attackPressed {
		s.Phase = Active
		s.Elapsed = 0
		s.hitbox = scene.SpawnHitbox(owner, s.Spec)
		s.hasHitbox = true
		tr.Started = true
	}

	if s.Phase != Active {
		return tr
	}

	s.Elapsed += dt
	if s.Elapsed >= s.Duration-durationEpsilon {
		s.finish(scene, owner)
		tr.Finished = true
	}
	return tr
}

func (s *State) finish(scene Scene, owner donburi.Entity) {
	switch {
	case !s.hasHitbox:
		log.Printf("[attack] %v: window closed without an owned hitbox", owner)
	case !scene.DestroyHitbox(s.hitbox):
		log.Printf("[attack] %v: hitbox %v was already gone", owner, s.hitbox)
	}
	s.hasHitbox = false
	s.Phase = Idle
	s.Elapsed = 0
}
