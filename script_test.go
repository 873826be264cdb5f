package glide

import (
	"errors"
	"testing"
)

func TestLoadScrollScript(t *testing.T) {
	in := NewInjectedInput(nil)
	if _, err := LoadScrollScript([]byte(`{"steps": []}`), in); !errors.Is(err, errEmptyScript) {
		t.Errorf("empty script: %v", err)
	}
	if _, err := LoadScrollScript([]byte(`not json`), in); err == nil {
		t.Error("invalid JSON accepted")
	}
	if _, err := LoadScrollScript([]byte(`{"steps": [{"action": "fly"}]}`), in); err == nil {
		t.Error("unknown action accepted")
	}
}

func TestScrollScriptDrivesEngine(t *testing.T) {
	in := NewInjectedInput(nil)
	e := newTestEngine(t, testConfig(sectionConfig("a", 2000)), in)
	script, err := LoadScrollScript([]byte(`{"steps": [
		{"action": "wheel", "dy": 300},
		{"action": "wait", "frames": 3},
		{"action": "lock"},
		{"action": "wheel", "dy": 500},
		{"action": "unlock"},
		{"action": "touch", "dy": 100, "frames": 2},
		{"action": "pointer", "x": 5, "y": 5},
		{"action": "screenshot", "label": "end"}
	]}`), in)
	if err != nil {
		t.Fatalf("LoadScrollScript: %v", err)
	}

	var sawLocked bool
	for i := 0; i < 100 && !script.Done(); i++ {
		script.Step(e)
		sawLocked = sawLocked || e.ScrollLocked()
		e.Update(frameDT)
	}
	if !script.Done() {
		t.Fatal("script did not finish")
	}
	if !sawLocked || e.ScrollLocked() {
		t.Errorf("sawLocked=%v locked=%v", sawLocked, e.ScrollLocked())
	}
	// Native scrolling (reduced motion): the wheel during the lock is dropped.
	if got := e.ScrollState().Virtual; got != 400 {
		t.Errorf("virtual = %v, want 400", got)
	}
	if e.PendingScreenshots() != 1 {
		t.Errorf("screenshots queued = %d, want 1", e.PendingScreenshots())
	}
}
