package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddle SoundType = iota // Ball returned by a paddle
	SoundWall                    // Ball off the top or bottom wall
	SoundGoal                    // Rally lost
	SoundWin                     // Match decided
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundPaddle:
		return "paddle"
	case SoundWall:
		return "wall"
	case SoundGoal:
		return "goal"
	case SoundWin:
		return "win"
	default:
		return "unknown"
	}
}

// effectVolumes balances the effects against each other before the master volume
var effectVolumes = [soundTypeCount]float64{
	SoundPaddle: 0.8,
	SoundWall:   0.5,
	SoundGoal:   0.9,
	SoundWin:    1.0,
}

// ErrAudioUnavailable wraps any failure to open the output device
var ErrAudioUnavailable = errors.New("audio output unavailable")
