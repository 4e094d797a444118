// pkg/render/frontend.go
package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-lander/pkg/engine"
	"github.com/opd-ai/go-lander/pkg/logging"
)

// Terminal runs a game in a character terminal
type Terminal struct {
	screen    tcell.Screen
	game      *engine.Game
	renderer  *TerminalRenderer
	keys      *KeyTracker
	logger    *logging.Logger
	frameTime time.Duration
}

// NewTerminal wraps an initialised screen. frameRate is in frames per second.
func NewTerminal(screen tcell.Screen, game *engine.Game, frameRate int, logger *logging.Logger) *Terminal {
	if frameRate <= 0 {
		frameRate = 60
	}
	params := game.Terrain.Params
	return &Terminal{
		screen:    screen,
		game:      game,
		renderer:  NewTerminalRenderer(screen, params.Width, 2*params.HalfHeight),
		keys:      NewKeyTracker(),
		logger:    logger,
		frameTime: time.Second / time.Duration(frameRate),
	}
}

// Run polls input and steps the game once per frame until the player
// quits or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.frameTime)
	defer ticker.Stop()

	t.logger.Info(ctx, "terminal frontend started", "frame_time", t.frameTime.String())
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if t.handleEvent(ev) {
				t.logger.Info(ctx, "terminal frontend stopped", "tick", t.game.CurrentTick)
				return nil
			}
		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			last = now
			t.game.Update(deltaTime, t.keys)
			Draw(t.renderer, t.game.Terrain, t.game.GetGameState())
		}
	}
}

// handleEvent reports whether the event asks to quit
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true
		}
		t.keys.HandleEvent(ev)
	case *tcell.EventResize:
		t.screen.Sync()
		t.renderer.Resize(t.screen.Size())
	}
	return false
}
