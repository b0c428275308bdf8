// Package systems holds the per-frame entity behaviors.
package systems

import (
	"math"

	"github.com/aldermoor/highground/ecs"
	"github.com/aldermoor/highground/terrain"
)

// ChaseSystem drives hostile pursuit: horizontal-only movement toward the
// player with a stop distance, plus terrain re-anchoring every frame whether
// or not the hostile moved.
type ChaseSystem struct {
	Field *terrain.Field
}

// NewChaseSystem creates a ChaseSystem over the given terrain.
func NewChaseSystem(field *terrain.Field) *ChaseSystem {
	return &ChaseSystem{Field: field}
}

// Update advances every chaser by one frame.
func (s *ChaseSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	playerTr := w.GetTransform(w.Player())
	if playerTr == nil {
		// No player registered: pursuit is a no-op this frame.
		return
	}

	for _, id := range w.Chasers().IDs() {
		e := w.EntityAt(id)
		ch := w.GetChaser(e)
		tr := w.GetTransform(e)
		if ch == nil || tr == nil || ch.Spent {
			continue
		}

		delta := playerTr.Pos.Horizontal().Sub(tr.Pos.Horizontal())
		dist := delta.Length()
		if dist > ch.StopDistance && dist > 0 {
			dir := delta.Mult(1 / dist)
			tr.Pos = tr.Pos.WithHorizontal(tr.Pos.Horizontal().Add(dir.Mult(ch.Speed * dt)))
			tr.Yaw = math.Atan2(dir.X, dir.Y)
		}

		// Re-anchor to the ground under the current horizontal position,
		// independent of whether the entity is mid-pursuit.
		if s.Field != nil {
			if h, ok := s.Field.HeightAt(tr.Pos.X, tr.Pos.Z); ok {
				tr.Pos.Y = h + ch.Clearance
			}
		}

		w.Contacts().Move(e, tr.Pos.Horizontal())
	}
}
