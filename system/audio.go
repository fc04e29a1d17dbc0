package system

import (
	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
)

// SoundPlayer is the narrow view of the sound manager the simulation needs
type SoundPlayer interface {
	Play(audio.SoundType)
}

// AudioSystem maps gameplay events to sound effects
// Decouples game systems from direct SoundManager access
type AudioSystem struct {
	ctx    *engine.GameContext
	player SoundPlayer
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(ctx *engine.GameContext, player SoundPlayer) *AudioSystem {
	return &AudioSystem{ctx: ctx, player: player}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPaddleHit,
		event.EventWallBounce,
		event.EventScoreChanged,
		event.EventMatchWon,
	}
}

// HandleEvent plays the effect for the event
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if s.player == nil {
		return
	}

	switch ev.Type {
	case event.EventPaddleHit:
		s.player.Play(audio.SoundPaddle)
	case event.EventWallBounce:
		s.player.Play(audio.SoundWall)
	case event.EventScoreChanged:
		// The winning goal is covered by the match chime
		if payload, ok := ev.Payload.(*event.ScoreChangedPayload); ok {
			if _, reached := payload.Score.Leader(s.ctx.Config.Match.WinScore); reached {
				return
			}
		}
		s.player.Play(audio.SoundGoal)
	case event.EventMatchWon:
		s.player.Play(audio.SoundWin)
	}
}
