package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePaddleSound generates a short sine blip
func CreatePaddleSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone, err := generators.SineTone(rate, parameter.PaddleSoundFreq)
	if err != nil {
		// Frequency above Nyquist for this rate
		tone = NewOscillator(parameter.PaddleSoundFreq, parameter.PaddleSoundDuration, WaveSine, rate)
	}
	blip := beep.Take(rate.N(parameter.PaddleSoundDuration), tone)
	shaped := NewEnvelope(blip, parameter.PaddleSoundDuration, parameter.PaddleSoundAttack, parameter.PaddleSoundRelease, rate)

	return newVolume(shaped, effectVolumes[SoundPaddle]*cfg.MasterVolume)
}

// CreateWallSound generates a dull square tick
func CreateWallSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.WallSoundFreq, parameter.WallSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.WallSoundDuration, parameter.WallSoundAttack, parameter.WallSoundRelease, rate)

	return newVolume(shaped, effectVolumes[SoundWall]*cfg.MasterVolume)
}

// CreateGoalSound generates a falling two-note saw phrase
func CreateGoalSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(parameter.GoalSoundNote1Freq, parameter.GoalSoundNote1Duration, WaveSaw, rate)
	n1Shaped := NewEnvelope(n1, parameter.GoalSoundNote1Duration, parameter.GoalSoundAttack, parameter.GoalSoundNote1Release, rate)

	n2 := NewOscillator(parameter.GoalSoundNote2Freq, parameter.GoalSoundNote2Duration, WaveSaw, rate)
	n2Shaped := NewEnvelope(n2, parameter.GoalSoundNote2Duration, parameter.GoalSoundAttack, parameter.GoalSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolumes[SoundGoal]*cfg.MasterVolume)
}

// CreateWinSound generates a bell chord with an octave overtone
func CreateWinSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (C5)
	fund := NewOscillator(523.25, parameter.WinSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.WinSoundDuration, parameter.WinSoundAttack, parameter.WinSoundFundamentalRelease, rate)

	// Octave up
	over := NewOscillator(1046.5, parameter.WinSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.WinSoundDuration, parameter.WinSoundAttack, parameter.WinSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, effectVolumes[SoundWin]*cfg.MasterVolume)
}

// GetSoundEffect returns a fresh streamer for the given type, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *config.AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPaddle:
		return CreatePaddleSound(cfg)
	case SoundWall:
		return CreateWallSound(cfg)
	case SoundGoal:
		return CreateGoalSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	default:
		return nil
	}
}
