package entity

import (
	"github.com/aldermoor/highground/common"
	"github.com/aldermoor/highground/component"
	"github.com/aldermoor/highground/ecs"
)

// HostileConfig tunes a spawned hostile.
type HostileConfig struct {
	Speed         float64
	StopDistance  float64
	Clearance     float64
	Damage        int
	ContactRadius float64
}

// NewHostile creates a pursuing enemy at a terrain-anchored point.
func NewHostile(w *ecs.World, pos common.Vec3, cfg HostileConfig) ecs.Entity {
	if w == nil {
		return ecs.Entity{}
	}
	e := w.CreateEntity()
	w.SetTransform(e, &component.Transform{Pos: pos})
	w.SetChaser(e, &component.Chaser{
		Speed:        cfg.Speed,
		StopDistance: cfg.StopDistance,
		Clearance:    cfg.Clearance,
		Damage:       cfg.Damage,
	})
	w.Contacts().AddHostile(e, pos.Horizontal(), cfg.ContactRadius)
	return e
}
