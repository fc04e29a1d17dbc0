package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
}

func TestDefaultBounds(t *testing.T) {
	cfg := Default()
	cfg.Field.Width = 802

	x := cfg.BallXRange()
	if x.Max != 386 || x.Min != -386 {
		t.Errorf("Expected ball x range [-386, 386], got [%g, %g]", x.Min, x.Max)
	}

	y := cfg.BallYRange()
	if y.Min != -212.5 || y.Max != 165.5 {
		t.Errorf("Expected ball y range [-212.5, 165.5], got [%g, %g]", y.Min, y.Max)
	}

	p := cfg.PaddleYRange()
	if p.Min != -167.5 || p.Max != 120.5 {
		t.Errorf("Expected paddle y range [-167.5, 120.5], got [%g, %g]", p.Min, p.Max)
	}

	if got := cfg.PaddleX(true); got != -384 {
		t.Errorf("Expected left paddle x -384, got %g", got)
	}
	if got := cfg.PaddleX(false); got != 384 {
		t.Errorf("Expected right paddle x 384, got %g", got)
	}
	if got := cfg.ServeSpeed(); got != 520 {
		t.Errorf("Expected serve speed 520, got %g", got)
	}
}

func TestDecodeOverridesDefaults(t *testing.T) {
	data := []byte(`
[match]
win_score = 3

[paddle]
ai_speed_modifier = 0.95

[keys]
left_up = "e"
`)
	cfg := Default()
	if err := Decode(data, cfg); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if cfg.Match.WinScore != 3 {
		t.Errorf("Expected win score 3, got %d", cfg.Match.WinScore)
	}
	if cfg.Paddle.AISpeedModifier != 0.95 {
		t.Errorf("Expected AI modifier 0.95, got %g", cfg.Paddle.AISpeedModifier)
	}
	if cfg.Keys.LeftUp != "e" {
		t.Errorf("Expected left_up 'e', got %q", cfg.Keys.LeftUp)
	}
	// Untouched keys keep defaults
	if cfg.Keys.LeftDown != "s" {
		t.Errorf("Expected left_down default 's', got %q", cfg.Keys.LeftDown)
	}
	if cfg.Ball.DefaultSpeed != 800 {
		t.Errorf("Expected default speed 800, got %g", cfg.Ball.DefaultSpeed)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "[ball]\nspin = 3\n"},
		{"negative speed", "[ball]\ndefault_speed = -1\n"},
		{"zero win score", "[match]\nwin_score = 0\n"},
		{"paddle taller than field", "[paddle]\nheight = 500\n"},
		{"volume out of range", "[audio]\nmaster_volume = 2.0\n"},
		{"serve cone too wide", "[ball]\nserve_spread_deg = 90.0\n"},
	}

	for _, tc := range tests {
		err := Decode([]byte(tc.data), Default())
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tc.name, err)
		}
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	err := Decode([]byte("[ball\n"), Default())
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Syntax error should not be reported as validation failure: %v", err)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with empty path failed: %v", err)
	}
	if cfg.Match.WinScore != 10 {
		t.Errorf("Expected default win score 10, got %d", cfg.Match.WinScore)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "pong.toml")
	if err := os.WriteFile(path, []byte("[display]\nfps = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Display.FPS != 30 {
		t.Errorf("Expected fps 30, got %d", cfg.Display.FPS)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
