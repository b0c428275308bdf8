package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/aldermoor/highground/common"
	"github.com/aldermoor/highground/component"
	"github.com/aldermoor/highground/ecs"
	"github.com/aldermoor/highground/ecs/entity"
	"github.com/aldermoor/highground/ecs/systems"
	"github.com/aldermoor/highground/prefabs"
	"github.com/aldermoor/highground/script"
	"github.com/aldermoor/highground/session"
	"github.com/aldermoor/highground/spawn"
	"github.com/aldermoor/highground/terrain"
	"github.com/ebitenui/ebitenui/widget"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Game is the ebiten shell driving the session. It owns the frame loop,
// routes input to the session controller, and rebuilds everything from
// scratch on restart.
type Game struct {
	debug bool

	spec   *prefabs.GameSpec
	field  *terrain.Field
	ctrl   *session.Controller
	world  *ecs.World
	player *Player

	hostileDir *spawn.PeriodicDirector

	menu      *surface
	pausePane *surface
	gameOver  *surface
	tally     *widget.Text
	hud       *HUD

	watcher        *prefabs.Watcher
	restartPending bool
	quitPending    bool
}

// NewGame loads specs and builds a fresh session in the menu state.
func NewGame(debug bool) (*Game, error) {
	g := &Game{debug: debug}
	if err := g.build(); err != nil {
		return nil, err
	}
	if debug {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: spec watcher unavailable: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

// loadField reads terrain.yaml into a height field with its holes punched.
func loadField() (*terrain.Field, error) {
	spec, err := prefabs.LoadTerrainSpec()
	if err != nil {
		return nil, err
	}
	field := terrain.NewField(spec.CellSize, spec.Heights)
	for _, hole := range spec.Holes {
		field.SetHole(hole[0], hole[1])
	}
	return field, nil
}

// build re-initializes the whole session: controller, world, entities,
// directors, and display surfaces. Called at startup and on restart.
func (g *Game) build() error {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	field, err := loadField()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	ctrl := session.NewController(session.Config{ScorePerCoin: spec.ScorePerCoin})
	ctrl.SetCursorVisible = func(visible bool) {
		if visible {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		}
	}
	ctrl.RestartHost = func() { g.restartPending = true }
	ctrl.QuitHost = func() { g.quitPending = true }

	world := ecs.NewWorld()
	world.OnCollect = ctrl.AddCollectible

	health := component.NewHealth(spec.Player.MaxHealth)
	health.OnDeath = ctrl.ReportDeath

	playerPos := common.Vec3{X: spec.Player.Spawn.X, Y: spec.Player.Spawn.Y, Z: spec.Player.Spawn.Z}
	if pt, ok := field.FindGroundPoint(playerPos, spec.Pickups.Region.SearchHeight); ok {
		playerPos = pt
	} else {
		log.Printf("game: no ground under player spawn (%.1f, %.1f)", playerPos.X, playerPos.Z)
	}
	playerEnt := entity.NewPlayer(world, playerPos, health, spec.Player.ContactRadius)

	var tuner spawn.Tuner
	if src, err := prefabs.LoadScript("difficulty.tengo"); err != nil {
		log.Printf("game: no difficulty script, spawning stays flat: %v", err)
	} else if ds, err := script.NewDifficultyScript(src); err != nil {
		log.Printf("game: difficulty script broken, spawning stays flat: %v", err)
	} else {
		tuner = ds
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	region := spawn.Region{
		Origin:       playerPos,
		Width:        spec.Pickups.Region.Width,
		Depth:        spec.Pickups.Region.Depth,
		SearchHeight: spec.Pickups.Region.SearchHeight,
	}
	coinDir := spawn.NewBurstDirector(region, spec.Pickups.CoinAmount, field, func(pos common.Vec3) {
		entity.NewPickup(world, pos, entity.PickupConfig{
			Kind:          component.PickupCoin,
			Value:         spec.Pickups.CoinValue,
			SpinSpeed:     spec.Pickups.SpinSpeed,
			ContactRadius: spec.Pickups.ContactRadius,
		})
	}, rng)
	heartDir := spawn.NewBurstDirector(region, spec.Pickups.HeartAmount, field, func(pos common.Vec3) {
		entity.NewPickup(world, pos, entity.PickupConfig{
			Kind:          component.PickupHeart,
			Value:         spec.Pickups.HeartValue,
			SpinSpeed:     spec.Pickups.SpinSpeed,
			ContactRadius: spec.Pickups.ContactRadius,
		})
	}, rng)
	hostileDir := spawn.NewPeriodicDirector(
		spec.Hostiles.Interval, spec.Hostiles.RingRadius, spec.Hostiles.SearchHeight,
		field,
		func(pos common.Vec3, speedScale float64) {
			entity.NewHostile(world, pos, entity.HostileConfig{
				Speed:         spec.Hostiles.Speed * speedScale,
				StopDistance:  spec.Hostiles.StopDistance,
				Clearance:     spec.Hostiles.Clearance,
				Damage:        spec.Hostiles.Damage,
				ContactRadius: spec.Hostiles.ContactRadius,
			})
		}, rng, tuner)

	ctrl.RegisterDirector(coinDir)
	ctrl.RegisterDirector(heartDir)
	ctrl.RegisterDirector(hostileDir)

	world.AddSystem(coinDir)
	world.AddSystem(heartDir)
	world.AddSystem(hostileDir)
	world.AddSystem(systems.NewChaseSystem(field))
	world.AddSystem(systems.NewSpinSystem())

	g.menu = newMenuSurface(ctrl)
	g.pausePane = newPauseSurface(ctrl)
	g.gameOver, g.tally = newGameOverSurface(ctrl)
	g.hud = newHUD()

	ctrl.AddListener(g)
	ctrl.AddScoreListener(g.hud)
	health.OnChange = g.hud.HealthChanged
	g.hud.HealthChanged(health.Current, health.Max)
	g.hud.ScoreChanged(ctrl.Coins(), ctrl.Score())

	g.spec = spec
	g.field = field
	g.ctrl = ctrl
	g.world = world
	g.player = NewPlayer(playerEnt, world, ctrl, field, spec.Player.MoveSpeed)

	g.hostileDir = hostileDir

	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	return nil
}

// SessionStarted hides the menu and reveals the HUD.
func (g *Game) SessionStarted() {
	g.menu.visible = false
	g.hud.visible = true
}

// SessionPaused shows the pause panel.
func (g *Game) SessionPaused() {
	g.pausePane.visible = true
}

// SessionResumed hides the pause panel.
func (g *Game) SessionResumed() {
	g.pausePane.visible = false
}

// SessionEnded shows the game-over panel with the final tally.
func (g *Game) SessionEnded() {
	g.pausePane.visible = false
	g.gameOver.visible = true
	g.tally.Label = fmt.Sprintf("Coins %d    Score %d", g.ctrl.Coins(), g.ctrl.Score())
}

// Update advances one host frame.
func (g *Game) Update() error {
	if g.quitPending {
		return ebiten.Termination
	}
	if g.restartPending {
		g.restartPending = false
		if err := g.build(); err != nil {
			return err
		}
	}
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.TogglePause()
	}

	// Simulated time advances only while the session is playing.
	dt := g.ctrl.TimeScale() / float64(ebiten.TPS())
	if dt > 0 {
		g.player.Update(dt)
		g.world.Update(dt)
	}

	g.menu.Update()
	g.pausePane.Update()
	g.gameOver.Update()
	g.hud.Update()
	return nil
}

// drainWatcher applies hot spec/script edits in debug mode.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: spec changed: %s", name)
			g.reloadTuning()
		case err := <-g.watcher.Errors:
			log.Printf("game: spec watcher: %v", err)
		default:
			return
		}
	}
}

// reloadTuning re-reads the specs that can change mid-session without a
// rebuild: spawn cadence, difficulty script, and player speed.
func (g *Game) reloadTuning() {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Printf("game: reload: %v", err)
		return
	}
	g.spec = spec
	g.hostileDir.Interval = spec.Hostiles.Interval
	g.hostileDir.MinInterval = spec.Hostiles.Interval / 4
	g.hostileDir.RingRadius = spec.Hostiles.RingRadius
	g.player.speed = spec.Player.MoveSpeed

	if src, err := prefabs.LoadScript("difficulty.tengo"); err == nil {
		if ds, err := script.NewDifficultyScript(src); err == nil {
			g.hostileDir.SetTuner(ds)
		} else {
			log.Printf("game: reload difficulty script: %v", err)
		}
	}
}

// Draw renders the world view and whichever surfaces are visible.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	g.hud.Draw(screen)
	g.menu.Draw(screen)
	g.pausePane.Draw(screen)
	g.gameOver.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s    FPS: %.2f", g.ctrl.State(), ebiten.ActualFPS()))
	}
}

// LayoutF keeps a fixed logical resolution.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
