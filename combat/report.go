package combat

import "github.com/yohamta/donburi"

// Report records one resolved hit.
type Report struct {
	Tick     uint64
	Attacker donburi.Entity
	Target   donburi.Entity
	Damage   float64 // effective damage after the resistance policy
	Outcome  Outcome
}
