package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

// BoundsData is the playable area covered by the space, in pixels.
type BoundsData struct {
	Width, Height float64
}

var Bounds = donburi.NewComponentType[BoundsData]()
