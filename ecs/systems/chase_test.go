package systems

import (
	"math"
	"testing"

	"github.com/aldermoor/highground/common"
	"github.com/aldermoor/highground/component"
	"github.com/aldermoor/highground/ecs"
	"github.com/aldermoor/highground/terrain"
)

func flatField(h float64) *terrain.Field {
	row := []float64{h, h, h, h, h, h, h, h}
	return terrain.NewField(2, [][]float64{row, row, row, row, row, row, row, row})
}

func chaseWorld(t *testing.T, playerPos, hostilePos common.Vec3) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	p := w.CreateEntity()
	w.SetTransform(p, &component.Transform{Pos: playerPos})
	w.SetPlayer(p, component.NewHealth(100))

	e := w.CreateEntity()
	w.SetTransform(e, &component.Transform{Pos: hostilePos})
	w.SetChaser(e, &component.Chaser{Speed: 2, StopDistance: 1, Clearance: 0.1})
	w.Contacts().AddHostile(e, hostilePos.Horizontal(), 0.5)
	return w, e
}

func TestChaseMovesTowardPlayerHorizontally(t *testing.T) {
	w, hostile := chaseWorld(t,
		common.Vec3{X: 10, Y: 9, Z: 4},
		common.Vec3{X: 4, Y: 0, Z: 4},
	)
	s := NewChaseSystem(flatField(3))

	s.Update(w, 0.5) // step = speed 2 * 0.5s = 1 unit

	tr := w.GetTransform(hostile)
	if math.Abs(tr.Pos.X-5) > 1e-9 || math.Abs(tr.Pos.Z-4) > 1e-9 {
		t.Fatalf("expected move to (5, 4), got (%v, %v)", tr.Pos.X, tr.Pos.Z)
	}
	// Vertical comes from the terrain, never from the player's height.
	if math.Abs(tr.Pos.Y-3.1) > 1e-9 {
		t.Fatalf("expected terrain anchor at 3.1, got %v", tr.Pos.Y)
	}
	if tr.Yaw == 0 {
		t.Fatalf("expected facing update while pursuing")
	}
}

func TestChaseHoldsInsideStopDistance(t *testing.T) {
	// Distance 0.5 with stop distance 1.0: no movement this frame...
	w, hostile := chaseWorld(t,
		common.Vec3{X: 4.5, Y: 9, Z: 4},
		common.Vec3{X: 4, Y: 0, Z: 4},
	)
	s := NewChaseSystem(flatField(3))
	s.Update(w, 0.5)

	tr := w.GetTransform(hostile)
	if tr.Pos.X != 4 || tr.Pos.Z != 4 {
		t.Fatalf("hostile moved inside stop distance: (%v, %v)", tr.Pos.X, tr.Pos.Z)
	}
	// ...but it still re-anchors to the terrain.
	if math.Abs(tr.Pos.Y-3.1) > 1e-9 {
		t.Fatalf("expected terrain anchor at 3.1, got %v", tr.Pos.Y)
	}
}

func TestChaseKeepsHeightOverHole(t *testing.T) {
	f := flatField(3)
	f.SetHole(2, 2)

	w, hostile := chaseWorld(t,
		common.Vec3{X: 5, Y: 9, Z: 5},
		common.Vec3{X: 5, Y: 2.5, Z: 5},
	)
	s := NewChaseSystem(f)
	s.Update(w, 0.01)

	tr := w.GetTransform(hostile)
	if tr.Pos.Y != 2.5 {
		t.Fatalf("height should hold where no ground exists, got %v", tr.Pos.Y)
	}
}

func TestChaseWithoutPlayerIsNoop(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	start := common.Vec3{X: 4, Y: 1, Z: 4}
	w.SetTransform(e, &component.Transform{Pos: start})
	w.SetChaser(e, &component.Chaser{Speed: 2, StopDistance: 1})

	NewChaseSystem(flatField(3)).Update(w, 1)

	tr := w.GetTransform(e)
	if tr.Pos != start {
		t.Fatalf("hostile moved with no player registered: %+v", tr.Pos)
	}
}

func TestSpinAdvancesPickupAngle(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	w.SetTransform(e, &component.Transform{})
	w.SetPickup(e, &component.Pickup{Kind: component.PickupCoin, SpinSpeed: math.Pi})

	s := NewSpinSystem()
	s.Update(w, 0.5)
	pk := w.GetPickup(e)
	if math.Abs(pk.Angle-math.Pi/2) > 1e-9 {
		t.Fatalf("expected quarter turn, got %v", pk.Angle)
	}

	// Angle wraps instead of growing without bound.
	for i := 0; i < 10; i++ {
		s.Update(w, 0.5)
	}
	if pk.Angle < 0 || pk.Angle > 2*math.Pi {
		t.Fatalf("angle out of range: %v", pk.Angle)
	}
}
