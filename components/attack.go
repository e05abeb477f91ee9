package components

import (
	"github.com/automoto/mysticwoods/attack"
	"github.com/yohamta/donburi"
)

// Attack is mutated only by the owning actor's attack system.
var Attack = donburi.NewComponentType[attack.State]()
