// Package config holds the tunable gameplay, input, audio and display settings
// Defaults reproduce the classic field: 802x455 with a 47-unit score bar
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-pong/parameter"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of the TOML document
type Config struct {
	Field   FieldConfig   `toml:"field"`
	Ball    BallConfig    `toml:"ball"`
	Paddle  PaddleConfig  `toml:"paddle"`
	Match   MatchConfig   `toml:"match"`
	Keys    KeyConfig     `toml:"keys"`
	Audio   AudioConfig   `toml:"audio"`
	Display DisplayConfig `toml:"display"`
}

// FieldConfig describes the play field in field units, origin at the center
type FieldConfig struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	UIHeight float64 `toml:"ui_height"` // Score bar band along the top edge
}

type BallConfig struct {
	Size            float64 `toml:"size"`
	DefaultSpeed    float64 `toml:"default_speed"`
	ServeMultiplier float64 `toml:"serve_multiplier"`
	ServeSpreadDeg  float64 `toml:"serve_spread_deg"` // Half-width of the serve cone around horizontal
}

type PaddleConfig struct {
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
	Speed           float64 `toml:"speed"`
	AISpeedModifier float64 `toml:"ai_speed_modifier"`
}

type MatchConfig struct {
	WinScore uint32 `toml:"win_score"`
}

// KeyConfig holds key names resolved by input.ParseKey
type KeyConfig struct {
	LeftUp    string `toml:"left_up"`
	LeftDown  string `toml:"left_down"`
	RightUp   string `toml:"right_up"`
	RightDown string `toml:"right_down"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

type DisplayConfig struct {
	FPS int `toml:"fps"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Field: FieldConfig{
			Width:    802,
			Height:   455,
			UIHeight: 47,
		},
		Ball: BallConfig{
			Size:            30,
			DefaultSpeed:    800,
			ServeMultiplier: 0.65,
			ServeSpreadDeg:  45,
		},
		Paddle: PaddleConfig{
			Width:           17,
			Height:          120,
			Speed:           500,
			AISpeedModifier: 0.8,
		},
		Match: MatchConfig{
			WinScore: 10,
		},
		Keys: KeyConfig{
			LeftUp:    "w",
			LeftDown:  "s",
			RightUp:   "up",
			RightDown: "down",
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.6,
			SampleRate:   parameter.AudioSampleRate,
		},
		Display: DisplayConfig{
			FPS: parameter.DefaultFPS,
		},
	}
}

// Load decodes path over the defaults; keys absent from the file keep their default value
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Decode parses TOML data into cfg and validates the result
// Unknown keys are rejected so typos do not silently fall back to defaults
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}

	return cfg.Validate()
}

// Validate checks ranges the simulation depends on
func (c *Config) Validate() error {
	positives := []struct {
		name string
		val  float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"ball.size", c.Ball.Size},
		{"ball.default_speed", c.Ball.DefaultSpeed},
		{"ball.serve_multiplier", c.Ball.ServeMultiplier},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
		{"paddle.ai_speed_modifier", c.Paddle.AISpeedModifier},
	}
	for _, p := range positives {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, p.name, p.val)
		}
	}

	if c.Field.UIHeight < 0 {
		return fmt.Errorf("%w: field.ui_height must not be negative", ErrInvalidConfig)
	}
	if c.Ball.ServeSpreadDeg < 0 || c.Ball.ServeSpreadDeg >= 90 {
		return fmt.Errorf("%w: ball.serve_spread_deg must be in [0, 90)", ErrInvalidConfig)
	}

	playHeight := c.Field.Height - c.Field.UIHeight
	if c.Paddle.Height > playHeight {
		return fmt.Errorf("%w: paddle.height %g exceeds play height %g", ErrInvalidConfig, c.Paddle.Height, playHeight)
	}
	if c.Ball.Size >= playHeight || c.Ball.Size >= c.Field.Width {
		return fmt.Errorf("%w: ball.size %g does not fit the field", ErrInvalidConfig, c.Ball.Size)
	}

	if c.Match.WinScore == 0 {
		return fmt.Errorf("%w: match.win_score must be at least 1", ErrInvalidConfig)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume must be in [0, 1]", ErrInvalidConfig)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalidConfig)
	}
	if c.Display.FPS <= 0 || c.Display.FPS > 240 {
		return fmt.Errorf("%w: display.fps must be in [1, 240]", ErrInvalidConfig)
	}

	return nil
}
