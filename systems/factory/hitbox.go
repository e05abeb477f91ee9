package factory

import (
	"log"

	"github.com/automoto/mysticwoods/archetypes"
	"github.com/automoto/mysticwoods/attack"
	"github.com/automoto/mysticwoods/components"
	"github.com/automoto/mysticwoods/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitboxScene spawns and removes trigger hit-volumes in a donburi world and
// its resolv space.
type HitboxScene struct {
	world donburi.World
	space *resolv.Space
	feed  *components.CollisionFeedData
}

var _ attack.Scene = (*HitboxScene)(nil)

func NewHitboxScene(w donburi.World, space *resolv.Space, feed *components.CollisionFeedData) *HitboxScene {
	return &HitboxScene{world: w, space: space, feed: feed}
}

// HitboxPosition returns the top-left corner of a hit-volume centered on the
// owner plus its configured offset.
func HitboxPosition(owner *resolv.Object, spec attack.HitboxSpec) (x, y float64) {
	cx := owner.X + owner.W/2 + spec.OffsetX
	cy := owner.Y + owner.H/2 + spec.OffsetY
	return cx - spec.Width/2, cy - spec.Height/2
}

func (s *HitboxScene) SpawnHitbox(owner donburi.Entity, spec attack.HitboxSpec) donburi.Entity {
	hitbox := archetypes.Hitbox.Spawn(s.world)

	x, y := spec.OffsetX, spec.OffsetY
	if s.world.Valid(owner) {
		if ownerEntry := s.world.Entry(owner); ownerEntry.HasComponent(components.Object) {
			x, y = HitboxPosition(components.Object.Get(ownerEntry).Object, spec)
		}
	}

	// Trigger only: no "solid" tag, nothing resolves against it.
	obj := resolv.NewObject(x, y, spec.Width, spec.Height, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, spec.Width, spec.Height))
	obj.Data = hitbox
	s.space.Add(obj)
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		Owner:       owner,
		Spec:        spec,
		Overlaps:    make(map[donburi.Entity]bool),
		HitEntities: make(map[donburi.Entity]bool),
	})
	return hitbox.Entity()
}

// DestroyHitbox removes the hit-volume's collider and entity, closing any
// overlaps it still had.
func (s *HitboxScene) DestroyHitbox(hitbox donburi.Entity) bool {
	if !s.world.Valid(hitbox) {
		return false
	}
	entry := s.world.Entry(hitbox)
	if !entry.HasComponent(components.Hitbox) {
		log.Printf("[attack] refusing to destroy %v: not a hitbox", hitbox)
		return false
	}

	hb := components.Hitbox.Get(entry)
	for target := range hb.Overlaps {
		s.feed.Push(components.CollisionEvent{A: hitbox, B: target, Kind: components.CollisionEnd})
	}

	if obj := components.Object.Get(entry); obj.Object != nil {
		s.space.Remove(obj.Object)
	}
	s.world.Remove(hitbox)
	return true
}
