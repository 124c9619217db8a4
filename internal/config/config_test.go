package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.PlayerMass <= cfg.PuckMass {
		t.Error("players should be heavier than the puck")
	}
	if cfg.Substeps < 4 {
		t.Errorf("expected at least 4 substeps by default, got %d", cfg.Substeps)
	}
	if cfg.MaxDelta() != 50*time.Millisecond {
		t.Errorf("expected 50ms delta cap, got %v", cfg.MaxDelta())
	}
}

func TestTickInterval(t *testing.T) {
	cfg := Default()
	cfg.TickRate = 250
	if got := cfg.TickInterval(); got != 4*time.Millisecond {
		t.Errorf("expected 4ms, got %v", got)
	}
	cfg.RenderRate = 50
	if got := cfg.RenderInterval(); got != 20*time.Millisecond {
		t.Errorf("expected 20ms, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative puck mass", func(c *Config) { c.PuckMass = -1 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"lerp above one", func(c *Config) { c.PlayerLerp = 1.5 }},
		{"zero lerp", func(c *Config) { c.PlayerLerp = 0 }},
		{"friction above one", func(c *Config) { c.PuckFriction = 1.01 }},
		{"no substeps", func(c *Config) { c.Substeps = 0 }},
		{"player larger than corner", func(c *Config) { c.PlayerRadius = 120 }},
		{"goal into corners", func(c *Config) { c.GoalWidth = 400 }},
		{"puck wider than goal", func(c *Config) { c.PuckRadius = 80 }},
		{"negative header", func(c *Config) { c.HeaderHeight = -1 }},
		{"rink too small", func(c *Config) { c.Height = 250 }},
		{"nan player speed", func(c *Config) { c.PlayerSpeed = math.NaN() }},
		{"infinite max delta", func(c *Config) { c.MaxDeltaMS = math.Inf(1) }},
		{"nan header", func(c *Config) { c.HeaderHeight = math.NaN() }},
		{"infinite header", func(c *Config) { c.HeaderHeight = math.Inf(1) }},
		{"nan lerp", func(c *Config) { c.PlayerLerp = math.NaN() }},
		{"nan friction", func(c *Config) { c.PuckFriction = math.NaN() }},
		{"nan corner radius", func(c *Config) { c.CornerRadius = math.NaN() }},
		{"negative infinite width", func(c *Config) { c.Width = math.Inf(-1) }},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.modify(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", tt.name)
			continue
		}
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rink.yaml")
	data := []byte("substeps: 8\nplayer_speed: 10\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Substeps != 8 {
		t.Errorf("expected substeps 8, got %d", cfg.Substeps)
	}
	if cfg.PlayerSpeed != 10 {
		t.Errorf("expected player speed 10, got %f", cfg.PlayerSpeed)
	}
	if cfg.GoalWidth != DefaultGoalWidth {
		t.Errorf("unset field should keep default, got goal width %f", cfg.GoalWidth)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("substeps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadRejectsNonFinite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	if err := os.WriteFile(path, []byte("player_speed: .nan\nmax_delta_ms: .inf\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Substeps = 6
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Error("expected defaults when no config path is set")
	}

	path := filepath.Join(t.TempDir(), "env.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: 120\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)
	cfg, err = FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TickRate != 120 {
		t.Errorf("expected tick rate 120, got %f", cfg.TickRate)
	}
}
