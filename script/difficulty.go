// Package script runs the tengo difficulty script that re-tunes periodic
// spawning as a session wears on.
package script

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// DifficultyScript evaluates a tengo script mapping elapsed session time to
// spawn tuning. The script reads the global `elapsed` (seconds) and must
// assign `interval_scale` and `speed_scale`.
type DifficultyScript struct {
	compiled *tengo.Compiled
}

// NewDifficultyScript compiles the script source.
func NewDifficultyScript(src []byte) (*DifficultyScript, error) {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap("math"))
	if err := s.Add("elapsed", 0.0); err != nil {
		return nil, fmt.Errorf("script: add elapsed: %w", err)
	}
	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile difficulty: %w", err)
	}
	return &DifficultyScript{compiled: compiled}, nil
}

// Tune returns (intervalScale, speedScale) for the given elapsed time.
// Any script failure yields the neutral scales and a warning; tuning is
// never fatal to spawning.
func (d *DifficultyScript) Tune(elapsed float64) (float64, float64) {
	if d == nil || d.compiled == nil {
		return 1, 1
	}
	c := d.compiled.Clone()
	if err := c.Set("elapsed", elapsed); err != nil {
		log.Printf("script: set elapsed: %v", err)
		return 1, 1
	}
	if err := c.Run(); err != nil {
		log.Printf("script: difficulty run: %v", err)
		return 1, 1
	}
	intervalScale := c.Get("interval_scale").Float()
	speedScale := c.Get("speed_scale").Float()
	if intervalScale <= 0 || speedScale <= 0 {
		return 1, 1
	}
	return intervalScale, speedScale
}
