package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() invalid: %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults: %v", err)
	}
	want := Default()
	if cfg.Display != want.Display || cfg.Tetris != want.Tetris || cfg.Snake != want.Snake ||
		cfg.Terminal != want.Terminal || cfg.Storage != want.Storage {
		t.Errorf("embedded config = %+v, expected %+v", cfg, want)
	}
	if len(cfg.Games) != 2 || cfg.Games[0] != "tetris" || cfg.Games[1] != "snake" {
		t.Errorf("Games = %v, expected [tetris snake]", cfg.Games)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("tetris:\n  strict_full_rows: true\nsnake:\n  move_interval_ms: 300\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Tetris.StrictFullRows {
		t.Error("StrictFullRows not applied")
	}
	if cfg.Snake.MoveInterval() != 300*time.Millisecond {
		t.Errorf("MoveInterval() = %v, expected 300ms", cfg.Snake.MoveInterval())
	}
	// Omitted keys keep their defaults.
	if cfg.Tetris.DropInterval() != 400*time.Millisecond {
		t.Errorf("DropInterval() = %v, expected 400ms", cfg.Tetris.DropInterval())
	}
	if cfg.Display.Rows != 16 || cfg.Display.Cols != 42 {
		t.Errorf("display = %dx%d, expected 16x42", cfg.Display.Rows, cfg.Display.Cols)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("display: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("games: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(empty games) error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Display.Rows = 0 }},
		{"zero tick", func(c *Config) { c.Display.TickMS = 0 }},
		{"no games", func(c *Config) { c.Games = nil }},
		{"zero drop", func(c *Config) { c.Tetris.DropIntervalMS = 0 }},
		{"min above start", func(c *Config) { c.Snake.MinIntervalMS = 500 }},
		{"negative speedup", func(c *Config) { c.Snake.SpeedupMS = -1 }},
		{"zero hold", func(c *Config) { c.Terminal.HoldMS = 0 }},
		{"zero flush", func(c *Config) { c.Storage.FlushEvery = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Tetris.DropIntervalMS >= Default().Tetris.DropIntervalMS {
		t.Error("hard should drop faster than normal")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset invalid: %v", err)
	}

	cfg = Default()
	ApplyPreset(&cfg, DifficultyEasy)
	if err := cfg.Validate(); err != nil {
		t.Errorf("easy preset invalid: %v", err)
	}

	cfg = Default()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Snake.SpeedupMS != 0 {
		t.Errorf("fixed preset SpeedupMS = %d, expected 0", cfg.Snake.SpeedupMS)
	}

	cfg = Default()
	ApplyPreset(&cfg, DifficultyNormal)
	if cfg.Tetris != Default().Tetris || cfg.Snake != Default().Snake {
		t.Error("normal preset should not change timings")
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
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(Default())): %v", err)
	}
	if cfg.Snake != Default().Snake {
		t.Errorf("Snake = %+v after round trip", cfg.Snake)
	}
}
