package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultNbolConfig()) {
		t.Errorf("embedded defaults drifted from DefaultNbolConfig():\n%+v\n%+v", cfg, DefaultNbolConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("enemy:\n  count: 3\n  aggro_memory: 0\nprojectile:\n  level_scaling: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Enemy.Count != 3 {
		t.Errorf("enemy.count = %d, expected 3", cfg.Enemy.Count)
	}
	if cfg.Enemy.AggroMemory != 0 {
		t.Errorf("enemy.aggro_memory = %f, expected 0", cfg.Enemy.AggroMemory)
	}
	if cfg.Projectile.LevelScaling {
		t.Error("projectile.level_scaling should be overridden to false")
	}
	// Untouched keys keep their defaults
	if cfg.Player.Health != 500 {
		t.Errorf("player.health = %f, expected default 500", cfg.Player.Health)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("player:\n  health: 0\nprojectile:\n  crit:\n    chance: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultNbolConfig()

	fixed := DefaultNbolConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	hard := DefaultNbolConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Enemy.Count <= base.Enemy.Count || hard.Enemy.Speed <= base.Enemy.Speed {
		t.Error("hard preset should add enemies and speed them up")
	}
	if hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard initial level = %f, expected 0.7", hard.Difficulty.InitialLevel)
	}

	easy := DefaultNbolConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Player.Health <= base.Player.Health {
		t.Error("easy preset should raise player health")
	}
}

func TestMarshalRoundTripKeepsKeys(t *testing.T) {
	data, err := Marshal(DefaultNbolConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Experience.Award != 25 || cfg.Projectile.TTL != 5.0 {
		t.Errorf("unexpected values after Marshal: %+v", cfg)
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "wave", MaxAt: 4},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, HealthMultiplier: 2.0, CountIncrease: 8},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		wave  int
		level float64
	}{
		{0, 0.0},
		{2, 0.5},
		{4, 1.0},
		{10, 1.0}, // clamped
	}
	for _, tc := range tests {
		if got := d.Level(tc.wave, 0); got != tc.level {
			t.Errorf("Level(wave=%d) = %f, expected %f", tc.wave, got, tc.level)
		}
	}

	if got := d.Speed(0.5, 4, 0); got != 1.0 {
		t.Errorf("Speed at max = %f, expected 1.0", got)
	}
	if got := d.Health(100, 2, 0); got != 200 {
		t.Errorf("Health at half = %f, expected 200", got)
	}
	if got := d.Count(10, 2, 0); got != 14 {
		t.Errorf("Count at half = %d, expected 14", got)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.7,
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := d.Speed(0.5, 9, 9999); got != 0.5 {
		t.Errorf("disabled manager should not scale speed, got %f", got)
	}
}
