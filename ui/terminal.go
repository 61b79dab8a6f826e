package ui

import (
	"os"
	"snake-term/game"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

var (
	wallStyle        = tcell.StyleDefault.Foreground(tcell.ColorGray)
	bodyStyle        = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	headStyle        = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	collectibleStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	hudStyle         = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Terminal owns the screen for the length of a game. It is both the input
// source and the renderer of the game loop.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	arena  game.Arena
	err    error
}

// Open puts the controlling terminal in raw mode on the alternate screen.
// The caller must Close it on every exit path.
func Open() (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal")
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	return NewTerminal(s)
}

// NewTerminal initialises s and starts reading its events.
func NewTerminal(s tcell.Screen) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	s.HideCursor()
	s.Clear()

	t := &Terminal{
		screen: s,
		events: make(chan tcell.Event, 32),
		done:   make(chan struct{}),
	}
	go t.readEvents(s)
	return t, nil
}

func (t *Terminal) readEvents(s tcell.Screen) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			// screen finalised
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Closed reports whether Close has run.
func (t *Terminal) Closed() bool {
	return t.screen == nil
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	if t.screen == nil {
		return
	}
	close(t.done)
	t.screen.Fini()
	t.screen = nil
}
