// Package spawn decides when and where pickups and hostiles enter the
// world. Directors do no work while inactive; the session controller
// activates them on start/resume and deactivates them on pause/game-over.
package spawn

import (
	"log"
	"math"
	"math/rand"

	"github.com/aldermoor/highground/common"
	"github.com/aldermoor/highground/ecs"
)

// Placer finds a terrain-anchored point below a candidate origin.
// terrain.Field satisfies this.
type Placer interface {
	FindGroundPoint(origin common.Vec3, searchHeight float64) (common.Vec3, bool)
}

// Region is the horizontal sampling domain of a burst director plus the
// vertical search span for the ground ray.
type Region struct {
	Origin       common.Vec3
	Width        float64
	Depth        float64
	SearchHeight float64
}

// Tuner rescales periodic spawning as the session progresses.
type Tuner interface {
	Tune(elapsed float64) (intervalScale, speedScale float64)
}

// BurstDirector spawns up to Count entities once, on the first frame after
// activation. A placement miss skips that attempt; the next index is
// independent. Reactivation after a pause does not spawn again.
type BurstDirector struct {
	Region Region
	Count  int

	place  Placer
	create func(pos common.Vec3)
	rng    *rand.Rand

	active bool
	done   bool
}

// NewBurstDirector creates a burst director.
func NewBurstDirector(region Region, count int, place Placer, create func(pos common.Vec3), rng *rand.Rand) *BurstDirector {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &BurstDirector{Region: region, Count: count, place: place, create: create, rng: rng}
}

// Activate allows the director to run.
func (d *BurstDirector) Activate() { d.active = true }

// Deactivate guarantees no further spawn attempts until reactivated.
func (d *BurstDirector) Deactivate() { d.active = false }

// Update performs the one-time burst if active.
func (d *BurstDirector) Update(_ *ecs.World, _ float64) {
	if d == nil || !d.active || d.done || d.place == nil || d.create == nil {
		return
	}
	d.done = true
	for i := 0; i < d.Count; i++ {
		origin := d.Region.Origin
		origin.X += (d.rng.Float64() - 0.5) * d.Region.Width
		origin.Z += (d.rng.Float64() - 0.5) * d.Region.Depth
		pt, ok := d.place.FindGroundPoint(origin, d.Region.SearchHeight)
		if !ok {
			log.Printf("spawn: no ground under (%.1f, %.1f), skipping", origin.X, origin.Z)
			continue
		}
		d.create(pt)
	}
}

// PeriodicDirector spawns one entity per interval of simulated time while
// active, on a fixed-radius ring around the player's current position. The
// optional tuner shortens the interval and speeds up spawned entities as the
// session wears on.
type PeriodicDirector struct {
	Interval     float64 // seconds of simulated time between attempts
	MinInterval  float64 // floor under tuner scaling
	RingRadius   float64
	SearchHeight float64

	place  Placer
	create func(pos common.Vec3, speedScale float64)
	rng    *rand.Rand
	tuner  Tuner

	active      bool
	accumulated float64
	elapsed     float64
	warnedOnce  bool
}

// NewPeriodicDirector creates a periodic director. tuner may be nil.
func NewPeriodicDirector(interval, ringRadius, searchHeight float64, place Placer, create func(pos common.Vec3, speedScale float64), rng *rand.Rand, tuner Tuner) *PeriodicDirector {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &PeriodicDirector{
		Interval:     interval,
		MinInterval:  interval / 4,
		RingRadius:   ringRadius,
		SearchHeight: searchHeight,
		place:        place,
		create:       create,
		rng:          rng,
		tuner:        tuner,
	}
}

// Activate allows the director to run.
func (d *PeriodicDirector) Activate() { d.active = true }

// Deactivate guarantees no further spawn attempts until reactivated.
func (d *PeriodicDirector) Deactivate() { d.active = false }

// SetTuner swaps the difficulty tuner, e.g. after a spec hot reload.
func (d *PeriodicDirector) SetTuner(t Tuner) {
	if d == nil {
		return
	}
	d.tuner = t
}

// Update accumulates simulated time and makes one spawn attempt per elapsed
// interval. The accumulator resets whenever the interval is reached.
func (d *PeriodicDirector) Update(w *ecs.World, dt float64) {
	if d == nil || !d.active || d.place == nil || d.create == nil {
		return
	}
	d.elapsed += dt
	d.accumulated += dt

	interval := d.Interval
	speedScale := 1.0
	if d.tuner != nil {
		intervalScale, ss := d.tuner.Tune(d.elapsed)
		interval = math.Max(d.Interval*intervalScale, d.MinInterval)
		speedScale = ss
	}
	if interval <= 0 || d.accumulated < interval {
		return
	}
	d.accumulated = 0

	playerTr := w.GetTransform(w.Player())
	if playerTr == nil {
		if !d.warnedOnce {
			log.Printf("spawn: no player registered, periodic spawning idle")
			d.warnedOnce = true
		}
		return
	}

	angle := d.rng.Float64() * 2 * math.Pi
	origin := common.Vec3{
		X: playerTr.Pos.X + math.Cos(angle)*d.RingRadius,
		Y: playerTr.Pos.Y,
		Z: playerTr.Pos.Z + math.Sin(angle)*d.RingRadius,
	}
	pt, ok := d.place.FindGroundPoint(origin, d.SearchHeight)
	if !ok {
		log.Printf("spawn: no ground under (%.1f, %.1f), skipping", origin.X, origin.Z)
		return
	}
	d.create(pt, speedScale)
}
