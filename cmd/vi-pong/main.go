package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/system"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Log to logs/vi-pong.log and show the debug overlay")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	fpsFlag    = flag.Int("fps", 0, "Override display.fps")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if *fpsFlag > 0 {
		cfg.Display.FPS = *fpsFlag
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("-fps: %w", err)
		}
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	keys, err := input.ResolveBindings(cfg.Keys)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetTerminalRestore(screen.Fini)

	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("[audio] %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	keyState := input.NewKeyState(nil)
	inputMachine := input.NewMachine(keyState)

	ctx := engine.NewGameContext(cfg, keys, keyState, nil)
	game, err := system.Bootstrap(ctx, nil, sound)
	if err != nil {
		return err
	}
	renderer := render.NewTerminalRenderer(screen)
	overlay := render.Overlay{Debug: *debugFlag, Muted: sound.Muted()}

	eventChan := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)

	// Input polling runs off the main goroutine; PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	frameTicker := time.NewTicker(time.Second / time.Duration(cfg.Display.FPS))
	defer frameTicker.Stop()

	fps := ctx.Status.Floats.Get(status.KeyFPS)
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			intent := inputMachine.Process(ev)
			if intent == nil {
				continue
			}

			switch intent.Type {
			case input.IntentQuit:
				log.Printf("[main] quit after %d frames", ctx.World.FrameNumber())
				return nil
			case input.IntentToggleMute:
				overlay.Muted = sound.ToggleMute()
			case input.IntentTogglePause:
				if ctx.State == engine.StateGame {
					ctx.Paused = !ctx.Paused
				}
			case input.IntentToggleDebug:
				overlay.Debug = !overlay.Debug
			case input.IntentResize:
				screen.Sync()
			case input.IntentMenuSelect:
				ctx.PushEvent(event.EventMenuButton, &event.MenuButtonPayload{SinglePlayer: intent.SinglePlayer})
			case input.IntentEndConfirm:
				ctx.PushEvent(event.EventEndButton, nil)
			case input.IntentMouseClick:
				pushButton(ctx, render.HitTest(renderer.Buttons(ctx.State), intent.X, intent.Y))
			}

			// Dispatch button presses immediately, bypassing the frame wait
			game.Dispatch()

		case now := <-frameTicker.C:
			dt := now.Sub(last)
			last = now

			game.Tick(dt)
			if dt > 0 {
				// Exponential smoothing keeps the overlay readable
				fps.Store(0.9*fps.Load() + 0.1/dt.Seconds())
			}
			renderer.RenderFrame(ctx, overlay)
		}
	}
}

// pushButton queues the event for a clicked screen button
func pushButton(ctx *engine.GameContext, kind render.ButtonKind) {
	switch kind {
	case render.ButtonOnePlayer:
		ctx.PushEvent(event.EventMenuButton, &event.MenuButtonPayload{SinglePlayer: true})
	case render.ButtonTwoPlayer:
		ctx.PushEvent(event.EventMenuButton, &event.MenuButtonPayload{SinglePlayer: false})
	case render.ButtonGG:
		ctx.PushEvent(event.EventEndButton, nil)
	}
}
