package parameter

import "time"

// Event queue sizing; size must be a power of two
const (
	EventQueueSize  = 64
	EventBufferMask = EventQueueSize - 1
)

// Frame timing
const (
	// DefaultFPS is the target render and simulation rate
	DefaultFPS = 60

	// MaxFrameDelta caps dt so a stalled frame resumes as one ordinary step
	MaxFrameDelta = 50 * time.Millisecond
)

// Input hold detection; terminals report presses and auto-repeat, never releases
const (
	// KeyInitialHold bridges the terminal auto-repeat delay after the first press
	KeyInitialHold = 500 * time.Millisecond

	// KeyRepeatHold is the hold window once auto-repeat is running
	KeyRepeatHold = 90 * time.Millisecond
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-pong.log"
)
