package systems

import (
	"math"

	"github.com/aldermoor/highground/ecs"
)

// SpinSystem rotates pickups for visual feedback. Purely cosmetic.
type SpinSystem struct{}

// NewSpinSystem creates a SpinSystem.
func NewSpinSystem() *SpinSystem {
	return &SpinSystem{}
}

// Update advances every pickup's spin angle.
func (s *SpinSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	for _, id := range w.Pickups().IDs() {
		e := w.EntityAt(id)
		pk := w.GetPickup(e)
		tr := w.GetTransform(e)
		if pk == nil || tr == nil || pk.Collected {
			continue
		}
		pk.Angle += pk.SpinSpeed * dt
		if pk.Angle > 2*math.Pi {
			pk.Angle -= 2 * math.Pi
		}
		tr.Yaw = pk.Angle
	}
}
