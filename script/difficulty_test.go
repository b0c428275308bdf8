package script

import (
	"testing"

	"github.com/aldermoor/highground/prefabs"
)

func TestDifficultyScriptRamp(t *testing.T) {
	src, err := prefabs.LoadScript("difficulty.tengo")
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	d, err := NewDifficultyScript(src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	i0, s0 := d.Tune(0)
	if i0 != 1 || s0 != 1 {
		t.Fatalf("expected neutral scales at t=0, got %v/%v", i0, s0)
	}

	i60, s60 := d.Tune(60)
	if i60 >= i0 || s60 <= s0 {
		t.Fatalf("expected ramping at t=60, got interval=%v speed=%v", i60, s60)
	}

	// The ramp holds after two minutes.
	iLate, sLate := d.Tune(120)
	iLater, sLater := d.Tune(600)
	if iLate != iLater || sLate != sLater {
		t.Fatalf("ramp should hold after 120s: %v/%v vs %v/%v", iLate, sLate, iLater, sLater)
	}
	if iLate <= 0 {
		t.Fatalf("interval scale must stay positive, got %v", iLate)
	}
}

func TestDifficultyScriptFailuresAreNeutral(t *testing.T) {
	if _, err := NewDifficultyScript([]byte("this is not tengo ::")); err == nil {
		t.Fatalf("expected compile error")
	}

	// A script that forgets the outputs tunes neutrally.
	d, err := NewDifficultyScript([]byte(`x := elapsed`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	i, s := d.Tune(30)
	if i != 1 || s != 1 {
		t.Fatalf("expected neutral scales, got %v/%v", i, s)
	}

	var nilScript *DifficultyScript
	if i, s := nilScript.Tune(5); i != 1 || s != 1 {
		t.Fatalf("nil script must tune neutrally")
	}
}
