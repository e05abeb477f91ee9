package movement

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const frame = 1.0 / 60.0

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func playerProfile() Profile {
	return Profile{Acceleration: 800, Deceleration: 700, MaxSpeed: 200}
}

func TestStep_HoldRightForOneSecond(t *testing.T) {
	v := dmath.Vec2{}
	for i := 0; i < 60; i++ {
		v = Step(v, Right, playerProfile(), frame)
	}

	assert.InDelta(t, 200.0, v.Magnitude(), 1e-9)
	assert.InDelta(t, 200.0, v.X, 1e-9)
	assert.Equal(t, 0.0, v.Y)
}

func TestStep_FromRestSkipsHeuristic(t *testing.T) {
	v := Step(dmath.Vec2{}, Right, playerProfile(), 0.01)
	assert.InDelta(t, 8.0, v.X, 1e-9)
	assert.Equal(t, 0.0, v.Y)
}

func TestStep_DiagonalIsNormalized(t *testing.T) {
	v := Step(dmath.Vec2{}, Up|Right, playerProfile(), 0.01)
	assert.InDelta(t, 8.0, v.Magnitude(), 1e-9)
	assert.InDelta(t, v.X, -v.Y, 1e-12)
}

func TestStep_OppositeDirectionsCancel(t *testing.T) {
	cases := []struct {
		name string
		held Directions
	}{
		{"left and right", Left | Right},
		{"up and down", Up | Down},
		{"all four", Up | Down | Left | Right},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := dmath.Vec2{X: 37, Y: -12}
			assert.Equal(t, start, Step(start, tc.held, playerProfile(), frame))
			assert.Equal(t, dmath.Vec2{}, Step(dmath.Vec2{}, tc.held, playerProfile(), frame))
		})
	}
}

func TestStep_ThreeKeysLeaveOneAxis(t *testing.T) {
	v := Step(dmath.Vec2{}, Left|Right|Up, playerProfile(), 0.01)
	assert.Equal(t, 0.0, v.X)
	assert.InDelta(t, -8.0, v.Y, 1e-9)
}

func TestTurnRegime_Boundaries(t *testing.T) {
	assert.Equal(t, SharpTurn, TurnRegime(-1))
	assert.Equal(t, SharpTurn, TurnRegime(math.Nextafter(0.9, 0)))
	assert.Equal(t, ShallowTurn, TurnRegime(0.9))
	assert.Equal(t, ShallowTurn, TurnRegime(math.Nextafter(0.98, 0)))
	assert.Equal(t, Aligned, TurnRegime(0.98))
	assert.Equal(t, Aligned, TurnRegime(1))
}

// velocityAt returns a vector of the given speed whose cosine similarity with
// +X equals similarity.
func velocityAt(similarity, speed float64) dmath.Vec2 {
	return dmath.Vec2{X: similarity * speed, Y: math.Sqrt(1-similarity*similarity) * speed}
}

func TestStep_TurnRegimes(t *testing.T) {
	p := Profile{Acceleration: 100, Deceleration: 100, MaxSpeed: 1000}
	const dt = 0.1

	t.Run("reversal gets the 4x boost", func(t *testing.T) {
		v := Step(dmath.Vec2{X: -50}, Right, p, dt)
		assert.InDelta(t, -50+TurnBoost*100*dt, v.X, 1e-9)
	})

	t.Run("just below 0.9 is boosted", func(t *testing.T) {
		start := velocityAt(0.89, 50)
		v := Step(start, Right, p, dt)
		assert.InDelta(t, start.X+TurnBoost*100*dt, v.X, 1e-9)
		assert.InDelta(t, start.Y, v.Y, 1e-9)
	})

	t.Run("just above 0.9 steers against current velocity", func(t *testing.T) {
		start := velocityAt(0.91, 50)
		v := Step(start, Right, p, dt)

		current := start.Normalized()
		steer := dmath.Vec2{X: 1}.Sub(current.MulScalar(ShallowTurnBlend)).Normalized()
		want := start.Add(steer.MulScalar(100 * dt))
		assert.InDelta(t, want.X, v.X, 1e-9)
		assert.InDelta(t, want.Y, v.Y, 1e-9)
		// The corrective steer bleeds off the sideways component.
		assert.Less(t, v.Y, start.Y)
	})

	t.Run("just below 0.98 still steers", func(t *testing.T) {
		start := velocityAt(0.979, 50)
		v := Step(start, Right, p, dt)
		assert.Less(t, v.Y, start.Y)
	})

	t.Run("at or above 0.98 applies acceleration directly", func(t *testing.T) {
		start := velocityAt(0.99, 50)
		v := Step(start, Right, p, dt)
		assert.InDelta(t, start.X+100*dt, v.X, 1e-9)
		assert.InDelta(t, start.Y, v.Y, 1e-9)
	})
}

func TestDecelerate(t *testing.T) {
	t.Run("reduces magnitude", func(t *testing.T) {
		v := Decelerate(dmath.Vec2{X: 30, Y: 40}, 10)
		assert.InDelta(t, 40.0, v.Magnitude(), 1e-9)
		assert.InDelta(t, 24.0, v.X, 1e-9)
		assert.InDelta(t, 32.0, v.Y, 1e-9)
	})

	t.Run("stops exactly at zero", func(t *testing.T) {
		assert.Equal(t, dmath.Vec2{}, Decelerate(dmath.Vec2{X: 5}, 5))
		assert.Equal(t, dmath.Vec2{}, Decelerate(dmath.Vec2{X: -3, Y: 1}, 100))
	})

	t.Run("no input decelerates through Step", func(t *testing.T) {
		v := Step(dmath.Vec2{X: 100}, 0, playerProfile(), 0.1)
		assert.InDelta(t, 30.0, v.X, 1e-9)
	})
}

func TestDecelerate_NeverOvershoots(t *testing.T) {
	rng := testRNG()
	p := playerProfile()

	for i := 0; i < 500; i++ {
		v := dmath.Vec2{X: rng.Float64()*400 - 200, Y: rng.Float64()*400 - 200}
		signX, signY := math.Signbit(v.X), math.Signbit(v.Y)
		prev := v.Magnitude()

		for step := 0; step < 120 && v != (dmath.Vec2{}); step++ {
			v = Step(v, 0, p, rng.Float64()*0.05)
			if v != (dmath.Vec2{}) {
				require.Equal(t, signX, math.Signbit(v.X), "x flipped sign")
				require.Equal(t, signY, math.Signbit(v.Y), "y flipped sign")
			}
			l := v.Magnitude()
			require.LessOrEqual(t, l, prev)
			prev = l
		}
		assert.Equal(t, dmath.Vec2{}, v)
	}
}

func TestStep_SpeedNeverExceedsMax(t *testing.T) {
	rng := testRNG()
	all := []Directions{Up, Down, Left, Right, Up | Left, Up | Right, Down | Left, Down | Right, Left | Right | Up}

	for i := 0; i < 2000; i++ {
		p := Profile{
			Acceleration: rng.Float64() * 5000,
			Deceleration: rng.Float64() * 5000,
			MaxSpeed:     rng.Float64() * 500,
		}
		v := dmath.Vec2{X: rng.Float64()*2000 - 1000, Y: rng.Float64()*2000 - 1000}
		held := all[rng.Intn(len(all))]

		v = Step(v, held, p, rng.Float64()*0.1)
		require.LessOrEqual(t, v.Magnitude(), p.MaxSpeed+1e-9)
	}
}

func TestClampSpeed_PreservesDirection(t *testing.T) {
	v := ClampSpeed(dmath.Vec2{X: 300, Y: 400}, 50)
	assert.InDelta(t, 30.0, v.X, 1e-9)
	assert.InDelta(t, 40.0, v.Y, 1e-9)

	under := dmath.Vec2{X: 3, Y: 4}
	assert.Equal(t, under, ClampSpeed(under, 50))
}
