// Package entity builds complete game entities from components.
package entity

import (
	"github.com/aldermoor/highground/common"
	"github.com/aldermoor/highground/component"
	"github.com/aldermoor/highground/ecs"
)

// PickupConfig tunes a spawned pickup.
type PickupConfig struct {
	Kind          string
	Value         int
	SpinSpeed     float64
	ContactRadius float64
}

// NewPickup creates a collectible at a terrain-anchored point.
func NewPickup(w *ecs.World, pos common.Vec3, cfg PickupConfig) ecs.Entity {
	if w == nil {
		return ecs.Entity{}
	}
	kind := cfg.Kind
	if kind == "" {
		kind = component.PickupCoin
	}
	e := w.CreateEntity()
	w.SetTransform(e, &component.Transform{Pos: pos})
	w.SetPickup(e, &component.Pickup{
		Kind:      kind,
		Value:     cfg.Value,
		SpinSpeed: cfg.SpinSpeed,
	})
	w.Contacts().AddPickup(e, pos.Horizontal(), cfg.ContactRadius)
	return e
}
