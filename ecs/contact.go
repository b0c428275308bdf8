package ecs

import "github.com/jakecoffman/cp"

// Contact detection runs in the horizontal (x, z) plane: every entity that
// can touch the player carries a sensor circle in a Chipmunk space. Begin
// events queue up during the step and are resolved after all systems ran.

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypePickup
	collisionTypeHostile
)

// ContactKind says what the player touched.
type ContactKind int

const (
	ContactPickup ContactKind = iota + 1
	ContactHostile
)

// ContactEvent records one player contact for end-of-frame resolution.
type ContactEvent struct {
	Other Entity
	Kind  ContactKind
}

// ContactSpace owns the Chipmunk space and the shape/entity bookkeeping.
type ContactSpace struct {
	space         *cp.Space
	bodies        map[int]*cp.Body
	shapeToEntity map[*cp.Shape]Entity
	pending       []ContactEvent
}

// NewContactSpace creates an empty contact space with handlers installed.
func NewContactSpace() *ContactSpace {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	cs := &ContactSpace{
		space:         space,
		bodies:        make(map[int]*cp.Body),
		shapeToEntity: make(map[*cp.Shape]Entity),
	}

	pickupHandler := space.NewCollisionHandler(collisionTypePlayer, collisionTypePickup)
	pickupHandler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		cs.queueContact(arb, ContactPickup)
		return true
	}
	hostileHandler := space.NewCollisionHandler(collisionTypePlayer, collisionTypeHostile)
	hostileHandler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		cs.queueContact(arb, ContactHostile)
		return true
	}
	return cs
}

func (cs *ContactSpace) queueContact(arb *cp.Arbiter, kind ContactKind) {
	// Handler shapes arrive in registration order: player first.
	_, other := arb.Shapes()
	ent, ok := cs.shapeToEntity[other]
	if !ok {
		return
	}
	cs.pending = append(cs.pending, ContactEvent{Other: ent, Kind: kind})
}

// AddPlayer registers the player's contact body. The player is the only
// dynamic body so that pairs against kinematic sensors are processed.
func (cs *ContactSpace) AddPlayer(e Entity, pos cp.Vector, radius float64) {
	if cs == nil || !e.Valid() {
		return
	}
	body := cp.NewBody(1, cp.INFINITY)
	body.SetPosition(pos)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetCollisionType(collisionTypePlayer)
	cs.space.AddBody(body)
	cs.space.AddShape(shape)
	cs.register(e, body, shape)
}

// AddPickup registers a pickup sensor circle.
func (cs *ContactSpace) AddPickup(e Entity, pos cp.Vector, radius float64) {
	cs.addSensor(e, pos, radius, collisionTypePickup)
}

// AddHostile registers a hostile sensor circle.
func (cs *ContactSpace) AddHostile(e Entity, pos cp.Vector, radius float64) {
	cs.addSensor(e, pos, radius, collisionTypeHostile)
}

func (cs *ContactSpace) addSensor(e Entity, pos cp.Vector, radius float64, ct cp.CollisionType) {
	if cs == nil || !e.Valid() {
		return
	}
	body := cp.NewKinematicBody()
	body.SetPosition(pos)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetCollisionType(ct)
	shape.SetSensor(true)
	cs.space.AddBody(body)
	cs.space.AddShape(shape)
	cs.register(e, body, shape)
}

func (cs *ContactSpace) register(e Entity, body *cp.Body, shape *cp.Shape) {
	cs.bodies[e.ID] = body
	cs.shapeToEntity[shape] = e
}

// Move teleports an entity's contact body to a new horizontal position.
func (cs *ContactSpace) Move(e Entity, pos cp.Vector) {
	if cs == nil {
		return
	}
	if body, ok := cs.bodies[e.ID]; ok {
		body.SetPosition(pos)
	}
}

// Position returns the entity's horizontal contact position.
func (cs *ContactSpace) Position(e Entity) (cp.Vector, bool) {
	if cs == nil {
		return cp.Vector{}, false
	}
	body, ok := cs.bodies[e.ID]
	if !ok {
		return cp.Vector{}, false
	}
	return body.Position(), true
}

// Remove drops an entity's body and shapes from the space. Safe to call
// outside a step only, which holds because resolution runs after Step.
func (cs *ContactSpace) Remove(e Entity) {
	if cs == nil {
		return
	}
	body, ok := cs.bodies[e.ID]
	if !ok {
		return
	}
	var shapes []*cp.Shape
	body.EachShape(func(s *cp.Shape) {
		shapes = append(shapes, s)
	})
	for _, s := range shapes {
		delete(cs.shapeToEntity, s)
		cs.space.RemoveShape(s)
	}
	cs.space.RemoveBody(body)
	delete(cs.bodies, e.ID)
}

// Step advances the space, firing begin handlers for new overlaps.
func (cs *ContactSpace) Step(dt float64) {
	if cs == nil || dt <= 0 {
		return
	}
	cs.space.Step(dt)
}

// Drain returns queued contacts in detection order and clears the queue.
func (cs *ContactSpace) Drain() []ContactEvent {
	if cs == nil || len(cs.pending) == 0 {
		return nil
	}
	out := cs.pending
	cs.pending = nil
	return out
}
