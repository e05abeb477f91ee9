package components

import (
	"github.com/automoto/mysticwoods/attack"
	"github.com/yohamta/donburi"
)

type HitboxData struct {
	Owner       donburi.Entity          // The actor whose attack spawned this hitbox
	Spec        attack.HitboxSpec       // Size and offset from the owner's center
	Overlaps    map[donburi.Entity]bool // Actors overlapping as of the last physics step
	HitEntities map[donburi.Entity]bool // Actors already damaged by this hitbox
}

var Hitbox = donburi.NewComponentType[HitboxData]()
