package attack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var volume = donburi.NewComponentType[HitboxSpec]()

type fakeScene struct {
	world     donburi.World
	spawned   int
	destroyed int
	specs     []HitboxSpec
}

func newFakeScene() *fakeScene {
	return &fakeScene{world: donburi.NewWorld()}
}

func (f *fakeScene) SpawnHitbox(owner donburi.Entity, spec HitboxSpec) donburi.Entity {
	f.spawned++
	f.specs = append(f.specs, spec)
	e := f.world.Create(volume)
	volume.SetValue(f.world.Entry(e), spec)
	return e
}

func (f *fakeScene) DestroyHitbox(hitbox donburi.Entity) bool {
	if !f.world.Valid(hitbox) {
		return false
	}
	f.world.Remove(hitbox)
	f.destroyed++
	return true
}

func (f *fakeScene) owner() donburi.Entity {
	return f.world.Create(volume)
}

func TestUpdate_FullCycle(t *testing.T) {
	scene := newFakeScene()
	owner := scene.owner()
	spec := HitboxSpec{Width: 40, Height: 40}
	s := NewState(0.5, spec)

	tr := s.Update(scene, owner, true, 0.1)
	assert.True(t, tr.Started)
	assert.False(t, tr.Finished)
	assert.True(t, s.Attacking())
	assert.InDelta(t, 0.1, s.Elapsed, 1e-12)

	hb, ok := s.Hitbox()
	require.True(t, ok)
	assert.True(t, scene.world.Valid(hb))
	assert.Equal(t, []HitboxSpec{spec}, scene.specs)

	for i := 0; i < 3; i++ {
		tr = s.Update(scene, owner, false, 0.1)
		assert.False(t, tr.Finished)
	}

	tr = s.Update(scene, owner, false, 0.1)
	assert.True(t, tr.Finished)
	assert.False(t, s.Attacking())
	assert.Equal(t, 0.0, s.Elapsed)
	assert.False(t, scene.world.Valid(hb))

	_, ok = s.Hitbox()
	assert.False(t, ok)
	assert.Equal(t, 1, scene.spawned)
	assert.Equal(t, 1, scene.destroyed)
}

func TestUpdate_PressWhileActiveIsIgnored(t *testing.T) {
	scene := newFakeScene()
	owner := scene.owner()
	s := NewState(0.5, HitboxSpec{Width: 10, Height: 10})

	s.Update(scene, owner, true, 0.05)
	first, _ := s.Hitbox()
	for i := 0; i < 5; i++ {
		tr := s.Update(scene, owner, true, 0.05)
		assert.False(t, tr.Started)
	}

	current, ok := s.Hitbox()
	require.True(t, ok)
	assert.Equal(t, first, current)
	assert.Equal(t, 1, scene.spawned)
	assert.InDelta(t, 0.3, s.Elapsed, 1e-9)
}

func TestUpdate_IdleWithoutPressDoesNothing(t *testing.T) {
	scene := newFakeScene()
	s := NewState(0.5, HitboxSpec{})

	tr := s.Update(scene, scene.owner(), false, 1)
	assert.Equal(t, Transition{}, tr)
	assert.Equal(t, Idle, s.Phase)
	assert.Equal(t, 0.0, s.Elapsed)
	assert.Equal(t, 0, scene.spawned)
}

func TestUpdate_WindowShorterThanTick(t *testing.T) {
	scene := newFakeScene()
	s := NewState(0.01, HitboxSpec{})

	tr := s.Update(scene, scene.owner(), true, 1.0/60.0)
	assert.True(t, tr.Started)
	assert.True(t, tr.Finished)
	assert.Equal(t, 1, scene.spawned)
	assert.Equal(t, 1, scene.destroyed)
	assert.Equal(t, Idle, s.Phase)
}

func TestUpdate_RepeatedCycles(t *testing.T) {
	scene := newFakeScene()
	owner := scene.owner()
	s := NewState(0.2, HitboxSpec{})

	for cycle := 0; cycle < 3; cycle++ {
		s.Update(scene, owner, true, 0.1)
		s.Update(scene, owner, true, 0.1)
		require.Equal(t, Idle, s.Phase)
	}
	assert.Equal(t, 3, scene.spawned)
	assert.Equal(t, 3, scene.destroyed)
}

func TestUpdate_HitboxDestroyedExternally(t *testing.T) {
	scene := newFakeScene()
	owner := scene.owner()
	s := NewState(0.2, HitboxSpec{})

	s.Update(scene, owner, true, 0.1)
	hb, _ := s.Hitbox()
	scene.world.Remove(hb)

	var tr Transition
	assert.NotPanics(t, func() {
		tr = s.Update(scene, owner, false, 0.1)
	})
	assert.True(t, tr.Finished)
	assert.Equal(t, Idle, s.Phase)
	assert.Equal(t, 0, scene.destroyed)

	// The next press starts a fresh cycle.
	tr = s.Update(scene, owner, true, 0.05)
	assert.True(t, tr.Started)
	assert.Equal(t, 2, scene.spawned)
}

func TestUpdate_WindowClosesOnTheExactTick(t *testing.T) {
	cases := []struct {
		duration float64
		dt       float64
		ticks    int
	}{
		{0.5, 1.0 / 60.0, 30},
		{0.4, 1.0 / 60.0, 24},
		{0.5, 1.0 / 30.0, 15},
		{0.3, 0.1, 3},
	}
	for _, tc := range cases {
		scene := newFakeScene()
		owner := scene.owner()
		s := NewState(tc.duration, HitboxSpec{})

		s.Update(scene, owner, true, tc.dt)
		ticks := 1
		for s.Attacking() && ticks < 1000 {
			s.Update(scene, owner, false, tc.dt)
			ticks++
		}
		assert.Equal(t, tc.ticks, ticks, "duration %v at dt %v", tc.duration, tc.dt)
		assert.Equal(t, 1, scene.destroyed)
	}
}
