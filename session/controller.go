// Package session owns the play/pause/menu/game-over state machine and the
// score for one play-through. All transitions go through Controller methods;
// invalid transitions are silent no-ops.
package session

import "log"

// State is the session phase. Exactly one Controller exists per session and
// it is the only writer.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Activatable is a spawn director toggled alongside the session. A
// deactivated director performs no spawn work until reactivated.
type Activatable interface {
	Activate()
	Deactivate()
}

// Listener receives session lifecycle notifications. Menu, HUD and pause
// surfaces use these to show and hide themselves.
type Listener interface {
	SessionStarted()
	SessionPaused()
	SessionResumed()
	SessionEnded()
}

// ScoreListener receives coin/score updates for display.
type ScoreListener interface {
	ScoreChanged(coins, score int)
}

// Config tunes a Controller.
type Config struct {
	ScorePerCoin int
}

// Controller is the session hub: it gates player input, activates and
// deactivates spawn directors, aggregates score, and reacts to the player's
// death signal.
type Controller struct {
	state        State
	coins        int
	score        int
	scorePerCoin int
	inputEnabled bool

	directors      []Activatable
	listeners      []Listener
	scoreListeners []ScoreListener

	// Host hooks. Each is optional; a missing hook logs a warning and the
	// side effect is skipped.
	SetCursorVisible func(bool)
	RestartHost      func()
	QuitHost         func()
}

// NewController creates a Controller in the menu state.
func NewController(cfg Config) *Controller {
	if cfg.ScorePerCoin < 0 {
		cfg.ScorePerCoin = 0
	}
	return &Controller{
		state:        StateMenu,
		scorePerCoin: cfg.ScorePerCoin,
	}
}

// State returns the current session state.
func (c *Controller) State() State { return c.state }

// Coins returns the collected coin count.
func (c *Controller) Coins() int { return c.coins }

// Score returns the accumulated score.
func (c *Controller) Score() int { return c.score }

// InputEnabled reports whether the player controller may respond to input.
func (c *Controller) InputEnabled() bool { return c.inputEnabled }

// TimeScale is 1 while playing and 0 otherwise; the driving loop multiplies
// elapsed frame time by this so pause and game over freeze the simulation.
func (c *Controller) TimeScale() float64 {
	if c.state == StatePlaying {
		return 1
	}
	return 0
}

// RegisterDirector adds a spawn director to the activation set.
func (c *Controller) RegisterDirector(d Activatable) {
	if d == nil {
		return
	}
	c.directors = append(c.directors, d)
}

// AddListener subscribes a lifecycle listener.
func (c *Controller) AddListener(l Listener) {
	if l == nil {
		return
	}
	c.listeners = append(c.listeners, l)
}

// AddScoreListener subscribes a score display.
func (c *Controller) AddScoreListener(l ScoreListener) {
	if l == nil {
		return
	}
	c.scoreListeners = append(c.scoreListeners, l)
}

// StartSession begins play. Valid only from the menu; otherwise a no-op.
func (c *Controller) StartSession() {
	if c.state != StateMenu {
		return
	}
	c.state = StatePlaying
	c.inputEnabled = true
	c.setCursorVisible(false)
	c.setDirectorsActive(true)
	for _, l := range c.listeners {
		l.SessionStarted()
	}
}

// AddCollectible credits a collected pickup: coins grow by value, score by
// the configured score-per-coin. Always succeeds.
func (c *Controller) AddCollectible(value int) {
	if value < 0 {
		value = 0
	}
	c.coins += value
	c.score += c.scorePerCoin
	for _, l := range c.scoreListeners {
		l.ScoreChanged(c.coins, c.score)
	}
}

// ReportDeath transitions to game over. The guard is the state itself, so
// repeated reports after the first are no-ops and there is no separate flag
// to drift out of sync.
func (c *Controller) ReportDeath() {
	if c.state != StatePlaying {
		return
	}
	c.state = StateGameOver
	c.inputEnabled = false
	c.setCursorVisible(true)
	c.setDirectorsActive(false)
	for _, l := range c.listeners {
		l.SessionEnded()
	}
}

// Pause freezes play. Valid only while playing.
func (c *Controller) Pause() {
	if c.state != StatePlaying {
		return
	}
	c.state = StatePaused
	c.inputEnabled = false
	c.setCursorVisible(true)
	c.setDirectorsActive(false)
	for _, l := range c.listeners {
		l.SessionPaused()
	}
}

// Resume reverses Pause. Valid only while paused.
func (c *Controller) Resume() {
	if c.state != StatePaused {
		return
	}
	c.state = StatePlaying
	c.inputEnabled = true
	c.setCursorVisible(false)
	c.setDirectorsActive(true)
	for _, l := range c.listeners {
		l.SessionResumed()
	}
}

// TogglePause maps an escape/cancel input to Pause or Resume depending on
// the current state. No-op outside the playing/paused pair.
func (c *Controller) TogglePause() {
	switch c.state {
	case StatePlaying:
		c.Pause()
	case StatePaused:
		c.Resume()
	}
}

// Restart asks the host to rebuild the whole session from scratch. The
// rebuilt session starts back in the menu with fresh health and score.
func (c *Controller) Restart() {
	if c.RestartHost == nil {
		log.Printf("session: no restart hook set, skipping restart")
		return
	}
	c.RestartHost()
}

// Quit asks the host to halt the simulation.
func (c *Controller) Quit() {
	if c.QuitHost == nil {
		log.Printf("session: no quit hook set, skipping quit")
		return
	}
	c.QuitHost()
}

func (c *Controller) setCursorVisible(v bool) {
	if c.SetCursorVisible == nil {
		log.Printf("session: no cursor hook set, skipping cursor change")
		return
	}
	c.SetCursorVisible(v)
}

func (c *Controller) setDirectorsActive(active bool) {
	for _, d := range c.directors {
		if active {
			d.Activate()
		} else {
			d.Deactivate()
		}
	}
}
