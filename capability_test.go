package glide

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name       string
		env        StaticEnvironment
		breakpoint float64
		want       CapabilityFlags
		full       bool
	}{
		{"desktop", StaticEnvironment{Width: 1280}, 0, CapabilityFlags{}, true},
		{"reduced motion", StaticEnvironment{ReducedMotion: true, Width: 1280}, 0, CapabilityFlags{ReducedMotion: true}, false},
		{"at breakpoint", StaticEnvironment{Width: 767}, 0, CapabilityFlags{NarrowViewport: true}, false},
		{"above breakpoint", StaticEnvironment{Width: 768}, 0, CapabilityFlags{}, true},
		{"custom breakpoint", StaticEnvironment{Width: 900}, 1024, CapabilityFlags{NarrowViewport: true}, false},
		{"both", StaticEnvironment{ReducedMotion: true, Width: 320}, 0, CapabilityFlags{ReducedMotion: true, NarrowViewport: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.env, tt.breakpoint)
			if got != tt.want {
				t.Errorf("Detect = %+v, want %+v", got, tt.want)
			}
			if got.FullMotion() != tt.full {
				t.Errorf("FullMotion = %v, want %v", got.FullMotion(), tt.full)
			}
		})
	}
}

func TestEbitenEnvironmentReducedMotion(t *testing.T) {
	t.Setenv(ReducedMotionEnv, "")
	if (EbitenEnvironment{}).PrefersReducedMotion() {
		t.Error("reduced motion with empty env")
	}
	if !(EbitenEnvironment{ForceReducedMotion: true}).PrefersReducedMotion() {
		t.Error("ForceReducedMotion ignored")
	}
	t.Setenv(ReducedMotionEnv, "true")
	if !(EbitenEnvironment{}).PrefersReducedMotion() {
		t.Error("env var ignored")
	}
	t.Setenv(ReducedMotionEnv, "nope")
	if (EbitenEnvironment{}).PrefersReducedMotion() {
		t.Error("unparsable env var treated as true")
	}
}
