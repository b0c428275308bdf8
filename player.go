package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/aldermoor/highground/ecs"
	"github.com/aldermoor/highground/session"
	"github.com/aldermoor/highground/terrain"
)

// Player drives the player entity from keyboard input. Movement is
// horizontal only; height snaps to the ground under each step, and steps
// that would leave the field are dropped.
type Player struct {
	ent   ecs.Entity
	world *ecs.World
	sess  *session.Controller
	field *terrain.Field
	speed float64
}

func NewPlayer(ent ecs.Entity, world *ecs.World, sess *session.Controller, field *terrain.Field, speed float64) *Player {
	return &Player{ent: ent, world: world, sess: sess, field: field, speed: speed}
}

// Update applies one step of keyboard movement.
func (p *Player) Update(dt float64) {
	if p == nil || !p.sess.InputEnabled() {
		return
	}
	tr := p.world.GetTransform(p.ent)
	if tr == nil {
		return
	}

	var dir cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X += 1
	}
	if dir.X == 0 && dir.Y == 0 {
		return
	}
	dir = dir.Normalize()

	step := dir.Mult(p.speed * dt)
	candidate := tr.Pos.Horizontal().Add(step)
	ground, ok := p.field.HeightAt(candidate.X, candidate.Y)
	if !ok {
		// No ground there, hold position instead of walking off the field.
		return
	}

	tr.Pos = tr.Pos.WithHorizontal(candidate)
	tr.Pos.Y = ground + terrain.Clearance
	tr.Yaw = math.Atan2(dir.X, dir.Y)
	p.world.Contacts().Move(p.ent, candidate)
}
