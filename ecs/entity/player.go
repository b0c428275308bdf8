package entity

import (
	"github.com/aldermoor/highground/common"
	"github.com/aldermoor/highground/component"
	"github.com/aldermoor/highground/ecs"
)

// NewPlayer registers the player entity: transform, health tracker, and the
// dynamic contact body the sensors test against.
func NewPlayer(w *ecs.World, pos common.Vec3, health *component.Health, contactRadius float64) ecs.Entity {
	if w == nil {
		return ecs.Entity{}
	}
	e := w.CreateEntity()
	w.SetTransform(e, &component.Transform{Pos: pos})
	w.Contacts().AddPlayer(e, pos.Horizontal(), contactRadius)
	w.SetPlayer(e, health)
	return e
}
