package combat

import (
	"fmt"

	"github.com/automoto/mysticwoods/mathutil"
)

// Stats holds the combat attributes of one actor.
type Stats struct {
	Health           float64
	MaxHealth        float64 // fixed at creation, restored on death
	AttackPower      float64
	DamageResistance float64
	AttackChance     float64 // counter-attack probability in percent (0..100)
}

// NewStats returns stats at full health.
func NewStats(maxHealth, attackPower, resistance, attackChance float64) Stats {
	return Stats{
		Health:           maxHealth,
		MaxHealth:        maxHealth,
		AttackPower:      attackPower,
		DamageResistance: resistance,
		AttackChance:     attackChance,
	}
}

// RollsCounter reports whether a uniform roll in [0, 1) lands inside the
// counter-attack chance. Nothing in the resolver consumes it yet.
func (s Stats) RollsCounter(roll float64) bool {
	return roll*100 < s.AttackChance
}

// Outcome is the result of a damage application.
type Outcome int

const (
	Survived Outcome = iota
	Died
)

func (o Outcome) String() string {
	switch o {
	case Survived:
		return "survived"
	case Died:
		return "died"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// ResistanceMode decides how DamageResistance affects incoming damage.
type ResistanceMode int

const (
	// ResistanceIgnore keeps resistance as data only.
	ResistanceIgnore ResistanceMode = iota
	// ResistanceFlat subtracts resistance from every hit, floored at zero.
	ResistanceFlat
)

func (m ResistanceMode) String() string {
	switch m {
	case ResistanceIgnore:
		return "ignore"
	case ResistanceFlat:
		return "flat"
	default:
		return fmt.Sprintf("ResistanceMode(%d)", int(m))
	}
}

// ParseResistanceMode maps a config string to a mode.
func ParseResistanceMode(s string) (ResistanceMode, error) {
	switch s {
	case "", "ignore":
		return ResistanceIgnore, nil
	case "flat":
		return ResistanceFlat, nil
	}
	return ResistanceIgnore, fmt.Errorf("unknown resistance mode %q", s)
}

// EffectiveDamage returns the damage that will actually be subtracted from
// health. Negative input never heals.
func EffectiveDamage(s *Stats, incoming float64, mode ResistanceMode) float64 {
	if incoming < 0 {
		incoming = 0
	}
	if mode == ResistanceFlat {
		incoming -= s.DamageResistance
		if incoming < 0 {
			incoming = 0
		}
	}
	return incoming
}

// ApplyDamage subtracts incoming damage from the target's health. When health
// reaches zero the target respawns at MaxHealth and Died is returned. Only the
// Health field is mutated.
func ApplyDamage(target *Stats, incoming float64, mode ResistanceMode) Outcome {
	target.Health -= EffectiveDamage(target, incoming, mode)
	if target.Health <= 0 {
		target.Health = target.MaxHealth
		return Died
	}
	target.Health = mathutil.ClampFloat(target.Health, 0, target.MaxHealth)
	return Survived
}
