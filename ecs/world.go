// Package ecs is the frame-driven entity world: sparse-set component
// storage, a fixed system order, and horizontal-plane contact detection.
package ecs

import (
	"log"

	"github.com/aldermoor/highground/component"
)

// System updates the world once per simulated frame. dt is elapsed simulated
// time in seconds, already scaled by the session time scale.
type System interface {
	Update(w *World, dt float64)
}

// World owns entities, components, systems, and the contact space.
// Everything runs on the frame tick of the driving loop; there is no
// preemption, so no locking.
type World struct {
	entities entityStore
	systems  []System
	contacts *ContactSpace

	transforms SparseSet
	pickups    SparseSet
	chasers    SparseSet

	player       Entity
	playerHealth *component.Health

	// OnCollect reports a coin pickup's value to the session controller.
	// Left unset, collections are counted nowhere and a warning is logged.
	OnCollect func(value int)
}

// NewWorld creates an empty world with a fresh contact space.
func NewWorld() *World {
	return &World{contacts: NewContactSpace()}
}

// CreateEntity allocates a new entity handle.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components.
func (w *World) DestroyEntity(e Entity) {
	if w == nil || !w.entities.destroy(e) {
		return
	}
	w.transforms.Remove(e.ID)
	w.pickups.Remove(e.ID)
	w.chasers.Remove(e.ID)
	w.contacts.Remove(e)
}

// IsAlive reports whether a handle refers to a live entity.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// AddSystem appends a system to the fixed update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Contacts returns the contact space.
func (w *World) Contacts() *ContactSpace {
	if w == nil {
		return nil
	}
	return w.contacts
}

// SetPlayer registers the player entity and its health tracker. The player
// reference is injected once at build time; entities needing it treat its
// absence as a no-op, never as a search failure.
func (w *World) SetPlayer(e Entity, h *component.Health) {
	if w == nil {
		return
	}
	w.player = e
	w.playerHealth = h
}

// Player returns the player entity handle; Valid() is false if none is set.
func (w *World) Player() Entity {
	if w == nil {
		return Entity{}
	}
	return w.player
}

// PlayerHealth returns the player's health tracker, if set.
func (w *World) PlayerHealth() *component.Health {
	if w == nil {
		return nil
	}
	return w.playerHealth
}

// SetTransform attaches a transform component.
func (w *World) SetTransform(e Entity, t *component.Transform) {
	if w == nil || !w.entities.isAlive(e) {
		return
	}
	w.transforms.Set(e.ID, t)
}

// GetTransform returns the entity's transform, or nil.
func (w *World) GetTransform(e Entity) *component.Transform {
	if w == nil {
		return nil
	}
	if t, ok := w.transforms.Get(e.ID).(*component.Transform); ok {
		return t
	}
	return nil
}

// SetPickup attaches a pickup component.
func (w *World) SetPickup(e Entity, p *component.Pickup) {
	if w == nil || !w.entities.isAlive(e) {
		return
	}
	w.pickups.Set(e.ID, p)
}

// GetPickup returns the entity's pickup component, or nil.
func (w *World) GetPickup(e Entity) *component.Pickup {
	if w == nil {
		return nil
	}
	if p, ok := w.pickups.Get(e.ID).(*component.Pickup); ok {
		return p
	}
	return nil
}

// Pickups returns the pickup component set.
func (w *World) Pickups() *SparseSet {
	if w == nil {
		return nil
	}
	return &w.pickups
}

// SetChaser attaches a chaser component.
func (w *World) SetChaser(e Entity, c *component.Chaser) {
	if w == nil || !w.entities.isAlive(e) {
		return
	}
	w.chasers.Set(e.ID, c)
}

// GetChaser returns the entity's chaser component, or nil.
func (w *World) GetChaser(e Entity) *component.Chaser {
	if w == nil {
		return nil
	}
	if c, ok := w.chasers.Get(e.ID).(*component.Chaser); ok {
		return c
	}
	return nil
}

// Chasers returns the chaser component set.
func (w *World) Chasers() *SparseSet {
	if w == nil {
		return nil
	}
	return &w.chasers
}

// EntityAt reconstructs a live handle for a component-set id.
func (w *World) EntityAt(id int) Entity {
	if w == nil || id <= 0 || id > len(w.entities.gen) {
		return Entity{}
	}
	return Entity{ID: id, Gen: w.entities.gen[id-1]}
}

// Update runs one simulated frame: systems in fixed order, then the contact
// step, then contact resolution. Per-entity ordering is deterministic;
// ordering across entities within a frame is not.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w, dt)
	}
	w.contacts.Step(dt)
	for _, ev := range w.contacts.Drain() {
		w.resolveContact(ev)
	}
}

func (w *World) resolveContact(ev ContactEvent) {
	if !w.entities.isAlive(ev.Other) {
		return
	}
	switch ev.Kind {
	case ContactPickup:
		w.collectPickup(ev.Other)
	case ContactHostile:
		w.hostileContact(ev.Other)
	}
}

// collectPickup reports the pickup once and removes it. Marking Collected
// before any side effect makes report-and-destroy a single atomic step even
// if a second contact event for the same entity is queued this frame.
func (w *World) collectPickup(e Entity) {
	pk := w.GetPickup(e)
	if pk == nil || pk.Collected {
		return
	}
	pk.Collected = true
	switch pk.Kind {
	case component.PickupHeart:
		if w.playerHealth != nil {
			w.playerHealth.Heal(pk.Value)
		} else {
			log.Printf("ecs: heart collected with no player health tracker, skipping heal")
		}
	default:
		if w.OnCollect != nil {
			w.OnCollect(pk.Value)
		} else {
			log.Printf("ecs: pickup collected with no collect hook, skipping report")
		}
	}
	w.DestroyEntity(e)
}

// hostileContact deals the chaser's configured damage and consumes it.
// The hostile is removed even if the player is already dead.
func (w *World) hostileContact(e Entity) {
	ch := w.GetChaser(e)
	if ch == nil || ch.Spent {
		return
	}
	ch.Spent = true
	if w.playerHealth != nil {
		w.playerHealth.ApplyDamage(ch.Damage)
	} else {
		log.Printf("ecs: hostile contact with no player health tracker, skipping damage")
	}
	w.DestroyEntity(e)
}
