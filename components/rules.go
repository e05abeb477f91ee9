package components

import (
	"github.com/automoto/mysticwoods/combat"
	"github.com/yohamta/donburi"
)

// RulesData holds the combat policies chosen at world creation.
type RulesData struct {
	Resistance    combat.ResistanceMode
	OncePerTarget bool
}

var Rules = donburi.NewComponentType[RulesData]()
