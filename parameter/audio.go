package parameter

import "time"

// Audio output
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
)

// Paddle hit blip
const (
	PaddleSoundFreq     = 440.0
	PaddleSoundDuration = 60 * time.Millisecond
	PaddleSoundAttack   = 2 * time.Millisecond
	PaddleSoundRelease  = 30 * time.Millisecond
)

// Wall bounce tick
const (
	WallSoundFreq     = 220.0
	WallSoundDuration = 40 * time.Millisecond
	WallSoundAttack   = 2 * time.Millisecond
	WallSoundRelease  = 20 * time.Millisecond
)

// Goal two-note fall
const (
	GoalSoundNote1Freq     = 523.25
	GoalSoundNote2Freq     = 261.63
	GoalSoundNote1Duration = 90 * time.Millisecond
	GoalSoundNote2Duration = 260 * time.Millisecond
	GoalSoundAttack        = 5 * time.Millisecond
	GoalSoundNote1Release  = 40 * time.Millisecond
	GoalSoundNote2Release  = 200 * time.Millisecond
)

// Match won chime
const (
	WinSoundDuration           = 700 * time.Millisecond
	WinSoundAttack             = 5 * time.Millisecond
	WinSoundFundamentalRelease = 650 * time.Millisecond
	WinSoundOvertoneRelease    = 250 * time.Millisecond
)
