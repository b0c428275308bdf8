package session

import "testing"

type recordingListener struct {
	started, paused, resumed, ended int
}

func (r *recordingListener) SessionStarted() { r.started++ }
func (r *recordingListener) SessionPaused()  { r.paused++ }
func (r *recordingListener) SessionResumed() { r.resumed++ }
func (r *recordingListener) SessionEnded()   { r.ended++ }

type recordingDirector struct {
	active      bool
	activations int
}

func (d *recordingDirector) Activate()   { d.active = true; d.activations++ }
func (d *recordingDirector) Deactivate() { d.active = false }

func newTestController() (*Controller, *recordingListener, *recordingDirector) {
	c := NewController(Config{ScorePerCoin: 10})
	c.SetCursorVisible = func(bool) {}
	l := &recordingListener{}
	d := &recordingDirector{}
	c.AddListener(l)
	c.RegisterDirector(d)
	return c, l, d
}

func TestStartSession(t *testing.T) {
	c, l, d := newTestController()

	if c.State() != StateMenu || c.InputEnabled() {
		t.Fatalf("fresh controller should be in menu with input disabled")
	}
	if d.active {
		t.Fatalf("director active before session start")
	}

	c.StartSession()
	if c.State() != StatePlaying {
		t.Fatalf("expected playing, got %v", c.State())
	}
	if !c.InputEnabled() || !d.active || l.started != 1 {
		t.Fatalf("start side effects missing: input=%v director=%v started=%d",
			c.InputEnabled(), d.active, l.started)
	}

	// Starting again is a no-op.
	c.StartSession()
	if l.started != 1 || d.activations != 1 {
		t.Fatalf("second start should be a no-op: started=%d activations=%d", l.started, d.activations)
	}
}

func TestPauseResumePair(t *testing.T) {
	c, l, d := newTestController()

	// Pause before start is a no-op.
	c.Pause()
	if c.State() != StateMenu {
		t.Fatalf("pause from menu moved state to %v", c.State())
	}

	c.StartSession()
	c.Pause()
	if c.State() != StatePaused || c.InputEnabled() || d.active {
		t.Fatalf("pause did not freeze session")
	}
	if c.TimeScale() != 0 {
		t.Fatalf("time should be frozen while paused")
	}

	// Pausing twice has the same observable effect as once.
	c.Pause()
	if l.paused != 1 {
		t.Fatalf("expected one pause notification, got %d", l.paused)
	}

	c.Resume()
	if c.State() != StatePlaying || !c.InputEnabled() || !d.active {
		t.Fatalf("resume did not restore session")
	}
	if c.TimeScale() != 1 {
		t.Fatalf("time should run while playing")
	}

	c.Resume()
	if l.resumed != 1 {
		t.Fatalf("resume while playing should be a no-op, got %d notifications", l.resumed)
	}
}

func TestTogglePause(t *testing.T) {
	c, _, _ := newTestController()

	c.TogglePause()
	if c.State() != StateMenu {
		t.Fatalf("toggle from menu should be a no-op")
	}

	c.StartSession()
	c.TogglePause()
	if c.State() != StatePaused {
		t.Fatalf("toggle while playing should pause")
	}
	c.TogglePause()
	if c.State() != StatePlaying {
		t.Fatalf("toggle while paused should resume")
	}
}

func TestReportDeathOnce(t *testing.T) {
	c, l, d := newTestController()
	c.StartSession()

	c.ReportDeath()
	if c.State() != StateGameOver || c.InputEnabled() || d.active {
		t.Fatalf("death did not end session")
	}
	if l.ended != 1 {
		t.Fatalf("expected one ended notification, got %d", l.ended)
	}

	// A repeat report while already game over is a no-op.
	c.ReportDeath()
	if l.ended != 1 {
		t.Fatalf("second death report produced another transition")
	}

	// Game over is terminal for this session.
	c.Resume()
	c.Pause()
	c.StartSession()
	if c.State() != StateGameOver {
		t.Fatalf("state escaped game over via %v", c.State())
	}
}

func TestAddCollectible(t *testing.T) {
	c := NewController(Config{ScorePerCoin: 10})
	var gotCoins, gotScore int
	c.AddScoreListener(scoreFunc(func(coins, score int) { gotCoins, gotScore = coins, score }))

	c.AddCollectible(1)
	if c.Coins() != 1 || c.Score() != 10 {
		t.Fatalf("got coins=%d score=%d, want 1/10", c.Coins(), c.Score())
	}
	c.AddCollectible(1)
	c.AddCollectible(1)
	if c.Coins() != 3 || c.Score() != 30 {
		t.Fatalf("got coins=%d score=%d, want 3/30", c.Coins(), c.Score())
	}
	if gotCoins != 3 || gotScore != 30 {
		t.Fatalf("score notification got %d/%d, want 3/30", gotCoins, gotScore)
	}
}

type scoreFunc func(coins, score int)

func (f scoreFunc) ScoreChanged(coins, score int) { f(coins, score) }

func TestMissingHostHooksAreNonFatal(t *testing.T) {
	c := NewController(Config{ScorePerCoin: 5})
	// No cursor, restart, or quit hooks wired: every call must proceed
	// with the side effect skipped.
	c.StartSession()
	c.Pause()
	c.Resume()
	c.ReportDeath()
	c.Restart()
	c.Quit()
	if c.State() != StateGameOver {
		t.Fatalf("transitions should survive missing hooks, got %v", c.State())
	}
}

func TestRestartHookInvoked(t *testing.T) {
	c, _, _ := newTestController()
	restarts := 0
	c.RestartHost = func() { restarts++ }
	c.StartSession()
	c.ReportDeath()
	c.Restart()
	if restarts != 1 {
		t.Fatalf("expected restart hook once, got %d", restarts)
	}
}
