package spawn

import (
	"math/rand"
	"testing"

	"github.com/aldermoor/highground/common"
	"github.com/aldermoor/highground/component"
	"github.com/aldermoor/highground/ecs"
)

type placerFunc func(origin common.Vec3, searchHeight float64) (common.Vec3, bool)

func (f placerFunc) FindGroundPoint(origin common.Vec3, searchHeight float64) (common.Vec3, bool) {
	return f(origin, searchHeight)
}

func alwaysGround(origin common.Vec3, _ float64) (common.Vec3, bool) {
	return common.Vec3{X: origin.X, Y: 0, Z: origin.Z}, true
}

func neverGround(common.Vec3, float64) (common.Vec3, bool) {
	return common.Vec3{}, false
}

func testRegion() Region {
	return Region{Origin: common.Vec3{Y: 5}, Width: 10, Depth: 10, SearchHeight: 10}
}

func TestBurstDirectorSpawnsOnceAtActivation(t *testing.T) {
	spawned := 0
	d := NewBurstDirector(testRegion(), 20, placerFunc(alwaysGround), func(common.Vec3) { spawned++ }, rand.New(rand.NewSource(7)))

	// Inactive directors perform no work.
	d.Update(nil, 1)
	if spawned != 0 {
		t.Fatalf("spawned %d before activation", spawned)
	}

	d.Activate()
	d.Update(nil, 1)
	if spawned != 20 {
		t.Fatalf("expected 20 spawns, got %d", spawned)
	}

	// Further frames and a pause/resume cycle spawn nothing more.
	d.Update(nil, 1)
	d.Deactivate()
	d.Activate()
	d.Update(nil, 1)
	if spawned != 20 {
		t.Fatalf("burst repeated: %d spawns", spawned)
	}
}

func TestBurstDirectorSkipsFailedPlacements(t *testing.T) {
	t.Run("all_over_gap", func(t *testing.T) {
		spawned := 0
		d := NewBurstDirector(testRegion(), 20, placerFunc(neverGround), func(common.Vec3) { spawned++ }, nil)
		d.Activate()
		d.Update(nil, 1)
		if spawned != 0 {
			t.Fatalf("expected zero spawns over a gap, got %d", spawned)
		}
	})

	t.Run("alternating", func(t *testing.T) {
		spawned := 0
		calls := 0
		flaky := placerFunc(func(origin common.Vec3, _ float64) (common.Vec3, bool) {
			calls++
			if calls%2 == 0 {
				return common.Vec3{}, false
			}
			return origin, true
		})
		d := NewBurstDirector(testRegion(), 10, flaky, func(common.Vec3) { spawned++ }, nil)
		d.Activate()
		d.Update(nil, 1)
		if calls != 10 {
			t.Fatalf("expected 10 independent attempts, got %d", calls)
		}
		if spawned != 5 {
			t.Fatalf("expected 5 spawns with alternating misses, got %d", spawned)
		}
	})
}

func worldWithPlayer() *ecs.World {
	w := ecs.NewWorld()
	p := w.CreateEntity()
	w.SetTransform(p, &component.Transform{Pos: common.Vec3{X: 3, Y: 1, Z: 4}})
	w.SetPlayer(p, component.NewHealth(100))
	return w
}

func TestPeriodicDirectorInterval(t *testing.T) {
	w := worldWithPlayer()
	spawned := 0
	d := NewPeriodicDirector(2, 8, 10, placerFunc(alwaysGround), func(common.Vec3, float64) { spawned++ }, rand.New(rand.NewSource(3)), nil)
	d.Activate()

	// Three half-second frames: accumulator below interval.
	for i := 0; i < 3; i++ {
		d.Update(w, 0.5)
	}
	if spawned != 0 {
		t.Fatalf("spawned %d before the interval elapsed", spawned)
	}

	d.Update(w, 0.5)
	if spawned != 1 {
		t.Fatalf("expected 1 spawn after 2s, got %d", spawned)
	}

	// The accumulator reset; another full interval is required.
	d.Update(w, 1.9)
	if spawned != 1 {
		t.Fatalf("accumulator did not reset, got %d spawns", spawned)
	}
	d.Update(w, 0.1)
	if spawned != 2 {
		t.Fatalf("expected 2 spawns after 4s, got %d", spawned)
	}
}

func TestPeriodicDirectorDeactivation(t *testing.T) {
	w := worldWithPlayer()
	spawned := 0
	d := NewPeriodicDirector(1, 8, 10, placerFunc(alwaysGround), func(common.Vec3, float64) { spawned++ }, nil, nil)
	d.Activate()
	d.Update(w, 1)
	if spawned != 1 {
		t.Fatalf("expected a spawn while active, got %d", spawned)
	}

	d.Deactivate()
	for i := 0; i < 10; i++ {
		d.Update(w, 1)
	}
	if spawned != 1 {
		t.Fatalf("deactivated director spawned: %d", spawned)
	}
}

func TestPeriodicDirectorRingPlacement(t *testing.T) {
	w := worldWithPlayer()
	var sampled []common.Vec3
	probe := placerFunc(func(origin common.Vec3, _ float64) (common.Vec3, bool) {
		sampled = append(sampled, origin)
		return origin, true
	})
	d := NewPeriodicDirector(1, 8, 10, probe, func(common.Vec3, float64) {}, rand.New(rand.NewSource(11)), nil)
	d.Activate()
	for i := 0; i < 5; i++ {
		d.Update(w, 1)
	}
	if len(sampled) != 5 {
		t.Fatalf("expected 5 attempts, got %d", len(sampled))
	}
	player := common.Vec3{X: 3, Y: 1, Z: 4}
	for _, origin := range sampled {
		dist := common.HorizontalDistance(origin, player)
		if dist < 7.99 || dist > 8.01 {
			t.Fatalf("sample at distance %v, want ring radius 8", dist)
		}
		if origin.Y != player.Y {
			t.Fatalf("ray origin should start at player height, got %v", origin.Y)
		}
	}
}

func TestPeriodicDirectorMissingPlayer(t *testing.T) {
	w := ecs.NewWorld() // no player registered
	spawned := 0
	d := NewPeriodicDirector(1, 8, 10, placerFunc(alwaysGround), func(common.Vec3, float64) { spawned++ }, nil, nil)
	d.Activate()
	for i := 0; i < 3; i++ {
		d.Update(w, 1)
	}
	if spawned != 0 {
		t.Fatalf("spawned %d with no player", spawned)
	}
}

type tunerFunc func(elapsed float64) (float64, float64)

func (f tunerFunc) Tune(elapsed float64) (float64, float64) { return f(elapsed) }

func TestPeriodicDirectorTunerFloor(t *testing.T) {
	w := worldWithPlayer()
	spawned := 0
	// Tuner that collapses the interval to nothing: the floor must hold.
	d := NewPeriodicDirector(4, 8, 10, placerFunc(alwaysGround), func(_ common.Vec3, speedScale float64) {
		spawned++
		if speedScale != 2 {
			t.Fatalf("speed scale not forwarded, got %v", speedScale)
		}
	}, nil, tunerFunc(func(float64) (float64, float64) { return 0, 2 }))
	d.Activate()

	d.Update(w, 0.5)
	if spawned != 0 {
		t.Fatalf("interval floor ignored, got %d spawns", spawned)
	}
	d.Update(w, 0.5)
	if spawned != 1 {
		t.Fatalf("expected spawn at floored interval (1s), got %d", spawned)
	}
}
