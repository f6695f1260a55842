package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseOverlaysDefault(t *testing.T) {
	tuning, err := Parse([]byte("melee:\n  damage: 30\nshake:\n  seed: 7\n"))
	if err != nil {
		t.Fatal(err)
	}
	if tuning.Melee.Damage != 30 || tuning.Shake.Seed != 7 {
		t.Fatalf("overrides not applied: %+v %+v", tuning.Melee, tuning.Shake)
	}
	if tuning.Melee.KnockbackForce != Default().Melee.KnockbackForce {
		t.Fatal("unset keys should keep their defaults")
	}
}

func TestParseEmptyIsDefault(t *testing.T) {
	tuning, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if tuning != Default() {
		t.Fatal("empty document should yield the default tuning")
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		invalid bool // wraps ErrInvalidTuning
	}{
		{"unknown key", "melee:\n  dmg: 30\n", false},
		{"negative duration", "ragdoll:\n  duration: -1\n", true},
		{"zero health", "combatant:\n  heavy_health: 0\n", true},
		{"cone too wide", "targeting:\n  cone_angle_deg: 400\n", true},
		{"unknown curve", "hitstop:\n  recovery_curve: wobble\n", true},
		{"negative frames", "hitstop:\n  base_frames: -2\n", true},
		{"recovery speed above one", "slow_motion:\n  recovery_speed: 1.5\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, ErrInvalidTuning); got != tt.invalid {
				t.Fatalf("errors.Is(ErrInvalidTuning) = %v, want %v: %v", got, tt.invalid, err)
			}
		})
	}
}

func TestZeroDurationsAreAllowed(t *testing.T) {
	if _, err := Parse([]byte("hitstop:\n  base_duration: 0\n  recovery_time: 0\n")); err != nil {
		t.Fatalf("zero durations disable the effect and should validate: %v", err)
	}
}

func TestHitstopFramesOverrideSeconds(t *testing.T) {
	tuning := Default()
	tuning.Hitstop.BaseFrames = 6
	tuning.Hitstop.RecoveryFrames = 12

	base, recovery := tuning.HitstopDurations()
	if base != 0.1 || recovery != 0.2 {
		t.Fatalf("durations = %v, %v; want 0.1, 0.2", base, recovery)
	}

	settings := tuning.TimeSettings()
	if settings.Hitstop.BaseDuration != 0.1 {
		t.Fatalf("time settings base = %v, want 0.1", settings.Hitstop.BaseDuration)
	}
}

func TestFramesToSecondsWithoutFPS(t *testing.T) {
	tuning := Default()
	tuning.Frame.AssumedFPS = 0
	if got := tuning.FramesToSeconds(10); got != 0 {
		t.Fatalf("FramesToSeconds = %v, want 0", got)
	}
}

func TestLoadWrapsPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestWatcherDeliversReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("melee:\n  damage: 15\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	// Replace the file the way editors do so the watcher sees one complete write.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte("melee:\n  damage: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	select {
	case tuning := <-w.Updates:
		if tuning.Melee.Damage != 42 {
			t.Fatalf("reloaded damage = %d, want 42", tuning.Melee.Damage)
		}
	case err := <-w.Errors:
		t.Fatalf("reload failed: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no reload within 2s")
	}
}
