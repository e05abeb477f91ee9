package components

import (
	"github.com/yohamta/donburi"
)

// ActorKind distinguishes players from enemies. Both share the same data.
type ActorKind int

const (
	KindPlayer ActorKind = iota
	KindEnemy
)

func (k ActorKind) String() string {
	if k == KindEnemy {
		return "enemy"
	}
	return "player"
}

type ActorData struct {
	Kind ActorKind
	Name string
}

var Actor = donburi.NewComponentType[ActorData]()
