package systems

import (
	"github.com/automoto/mysticwoods/components"
	"github.com/automoto/mysticwoods/mathutil"
	"github.com/automoto/mysticwoods/systems/factory"
	"github.com/automoto/mysticwoods/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves each hitbox with its owner and reports overlap
// edges against actors to the collision feed.
func UpdateCollisions(ecs *ecs.ECS) {
	state, ok := worldState(ecs.World)
	if !ok {
		return
	}
	feed := components.CollisionFeed.Get(state)

	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hb := components.Hitbox.Get(e)
		obj := components.Object.Get(e).Object
		if obj == nil {
			return
		}
		followOwner(ecs.World, hb, obj)

		current := overlappingActors(obj)
		seen := make(map[donburi.Entity]bool, len(current))
		for _, target := range current {
			seen[target] = true
			if !hb.Overlaps[target] {
				feed.Push(components.CollisionEvent{A: e.Entity(), B: target, Kind: components.CollisionBegin})
			}
		}
		for target := range hb.Overlaps {
			if !seen[target] {
				feed.Push(components.CollisionEvent{A: e.Entity(), B: target, Kind: components.CollisionEnd})
			}
		}
		hb.Overlaps = seen
	})
}

// followOwner keeps the hitbox parented to its owner's collider. An orphaned
// hitbox stays where it is until its attack window closes.
func followOwner(w donburi.World, hb *components.HitboxData, obj *resolv.Object) {
	if !w.Valid(hb.Owner) {
		return
	}
	owner := w.Entry(hb.Owner)
	if !owner.HasComponent(components.Object) {
		return
	}
	ownerObj := components.Object.Get(owner).Object
	if ownerObj == nil {
		return
	}
	obj.X, obj.Y = factory.HitboxPosition(ownerObj, hb.Spec)
	obj.Update()
}

// overlappingActors returns live actors whose colliders intersect obj, in the
// order resolv reports them. Check only narrows by shared cells.
func overlappingActors(obj *resolv.Object) []donburi.Entity {
	check := obj.Check(0, 0, tags.ResolvActor)
	if check == nil {
		return nil
	}

	var out []donburi.Entity
	added := make(map[donburi.Entity]bool)
	for _, other := range check.Objects {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || added[entry.Entity()] {
			continue
		}
		if !mathutil.Overlaps(obj.X, obj.Y, obj.W, obj.H, other.X, other.Y, other.W, other.H) {
			continue
		}
		added[entry.Entity()] = true
		out = append(out, entry.Entity())
	}
	return out
}
