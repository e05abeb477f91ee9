package components

import (
	"iter"

	"github.com/automoto/mysticwoods/combat"
	"github.com/yohamta/donburi"
)

// CollisionKind is the edge reported by the overlap detector.
type CollisionKind int

const (
	CollisionBegin CollisionKind = iota
	CollisionEnd
)

func (k CollisionKind) String() string {
	if k == CollisionEnd {
		return "end"
	}
	return "begin"
}

// CollisionEvent is a trigger overlap between two entities.
type CollisionEvent struct {
	A, B donburi.Entity
	Kind CollisionKind
}

// CollisionFeedData buffers the events of one physics step.
type CollisionFeedData struct {
	events []CollisionEvent
}

// Push queues an event for the current tick.
func (f *CollisionFeedData) Push(e CollisionEvent) {
	f.events = append(f.events, e)
}

// Len returns the number of queued events.
func (f *CollisionFeedData) Len() int {
	return len(f.events)
}

// Drain hands the queued batch to a single consumer and empties the feed.
// The returned sequence yields the batch once; ranging over it again yields
// nothing.
func (f *CollisionFeedData) Drain() iter.Seq[CollisionEvent] {
	batch := f.events
	f.events = nil
	return func(yield func(CollisionEvent) bool) {
		b := batch
		batch = nil
		for _, e := range b {
			if !yield(e) {
				return
			}
		}
	}
}

var CollisionFeed = donburi.NewComponentType[CollisionFeedData]()

// CombatLogData holds the hits resolved during the last tick.
type CombatLogData struct {
	Reports []combat.Report
	Deaths  int // running total
}

var CombatLog = donburi.NewComponentType[CombatLogData]()

// ClockData tracks simulated time.
type ClockData struct {
	Delta   float64 // seconds in the current tick
	Elapsed float64
	Tick    uint64
}

var Clock = donburi.NewComponentType[ClockData]()
