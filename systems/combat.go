package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/mysticwoods/combat"
	"github.com/automoto/mysticwoods/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat drains the collision feed and applies hitbox damage. Reports
// from the previous tick are discarded.
func UpdateCombat(ecs *ecs.ECS) {
	state, ok := worldState(ecs.World)
	if !ok {
		return
	}
	feed := components.CollisionFeed.Get(state)
	combatLog := components.CombatLog.Get(state)
	rules := *components.Rules.Get(state)
	tick := components.Clock.Get(state).Tick

	combatLog.Reports = nil

	for ev := range feed.Drain() {
		// Damage is dealt on contact only.
		if ev.Kind != components.CollisionBegin {
			continue
		}

		report, err := ResolveCollision(ecs.World, ev, rules, tick)
		switch {
		case err == nil:
		case errors.Is(err, ErrMissingStats):
			log.Printf("[combat] skipping hit: %v", err)
			continue
		default:
			continue
		}

		combatLog.Reports = append(combatLog.Reports, report)
		if report.Outcome == combat.Died {
			combatLog.Deaths++
			log.Printf("[combat] %v defeated by %v, restored to full health", report.Target, report.Attacker)
		}
	}
}

// ResolveCollision applies one overlap event. Exactly one side must be a live
// hitbox; the other side is the target. The hitbox owner's attack power is
// dealt to the target under the given rules.
func ResolveCollision(w donburi.World, ev components.CollisionEvent, rules components.RulesData, tick uint64) (combat.Report, error) {
	hitboxEntry, target, ok := splitHitbox(w, ev)
	if !ok {
		return combat.Report{}, ErrNotHitbox
	}
	hb := components.Hitbox.Get(hitboxEntry)

	if hb.Owner == target {
		return combat.Report{}, ErrSelfHit
	}
	if rules.OncePerTarget && hb.HitEntities[target] {
		return combat.Report{}, ErrAlreadyHit
	}

	targetStats, err := statsOf(w, target)
	if err != nil {
		return combat.Report{}, fmt.Errorf("target %v: %w", target, err)
	}
	ownerStats, err := statsOf(w, hb.Owner)
	if err != nil {
		return combat.Report{}, fmt.Errorf("attacker %v: %w", hb.Owner, err)
	}

	damage := combat.EffectiveDamage(targetStats, ownerStats.AttackPower, rules.Resistance)
	outcome := combat.ApplyDamage(targetStats, ownerStats.AttackPower, rules.Resistance)
	if hb.HitEntities == nil {
		hb.HitEntities = make(map[donburi.Entity]bool)
	}
	hb.HitEntities[target] = true

	return combat.Report{
		Tick:     tick,
		Attacker: hb.Owner,
		Target:   target,
		Damage:   damage,
		Outcome:  outcome,
	}, nil
}

// splitHitbox orders an event as (hitbox, other). Events between two hitboxes
// or two actors are rejected.
func splitHitbox(w donburi.World, ev components.CollisionEvent) (*donburi.Entry, donburi.Entity, bool) {
	a, b := isHitbox(w, ev.A), isHitbox(w, ev.B)
	switch {
	case a && !b:
		return w.Entry(ev.A), ev.B, true
	case b && !a:
		return w.Entry(ev.B), ev.A, true
	}
	var none donburi.Entity
	return nil, none, false
}

func isHitbox(w donburi.World, e donburi.Entity) bool {
	return w.Valid(e) && w.Entry(e).HasComponent(components.Hitbox)
}

func statsOf(w donburi.World, e donburi.Entity) (*combat.Stats, error) {
	if !w.Valid(e) {
		return nil, ErrMissingStats
	}
	entry := w.Entry(e)
	if !entry.HasComponent(components.Stats) {
		return nil, ErrMissingStats
	}
	return components.Stats.Get(entry), nil
}
