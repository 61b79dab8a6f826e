package ui

import (
	"snake-term/game"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Poll waits up to timeout for a key that maps to a game input. Resize
// events repaint the screen and count as no input; a resize below the arena
// is kept and returned by the next Render.
func (t *Terminal) Poll(timeout time.Duration) (game.Input, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.events:
		switch e := ev.(type) {
		case *tcell.EventResize:
			if err := t.checkSize(t.arena); err != nil && t.err == nil {
				t.err = errors.Wrap(err, "terminal resized")
				return game.Input{}, false
			}
			t.screen.Sync()
		case *tcell.EventKey:
			return KeyToInput(e)
		}
		return game.Input{}, false
	case <-timer.C:
		return game.Input{}, false
	}
}

// KeyToInput maps arrows, WASD and hjkl to directions, q, Esc and Ctrl-C to
// quit, and p or space to pause.
func KeyToInput(e *tcell.EventKey) (game.Input, bool) {
	switch e.Key() {
	case tcell.KeyLeft:
		return game.Input{Dir: game.Left}, true
	case tcell.KeyRight:
		return game.Input{Dir: game.Right}, true
	case tcell.KeyUp:
		return game.Input{Dir: game.Up}, true
	case tcell.KeyDown:
		return game.Input{Dir: game.Down}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Input{Control: game.Quit}, true
	case tcell.KeyRune:
	default:
		return game.Input{}, false
	}

	switch e.Rune() {
	case 'a', 'A', 'h':
		return game.Input{Dir: game.Left}, true
	case 'd', 'D', 'l':
		return game.Input{Dir: game.Right}, true
	case 'w', 'W', 'k':
		return game.Input{Dir: game.Up}, true
	case 's', 'S', 'j':
		return game.Input{Dir: game.Down}, true
	case 'q', 'Q':
		return game.Input{Control: game.Quit}, true
	case 'p', 'P', ' ':
		return game.Input{Control: game.Pause}, true
	}
	return game.Input{}, false
}
