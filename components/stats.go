package components

import (
	"github.com/automoto/mysticwoods/combat"
	"github.com/yohamta/donburi"
)

// Stats is mutated only by the combat resolver.
var Stats = donburi.NewComponentType[combat.Stats]()
