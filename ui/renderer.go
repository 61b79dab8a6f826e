package ui

import (
	"fmt"
	"snake-term/game"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const helpText = "arrows/wasd move  p pause  q quit"

// Init checks the screen is large enough and paints the walls.
func (t *Terminal) Init(a game.Arena) error {
	if err := t.checkSize(a); err != nil {
		return err
	}
	t.arena = a
	t.screen.Clear()
	for _, p := range a.Walls() {
		t.screen.SetContent(p.X, p.Y, game.GlyphWall, nil, wallStyle)
	}
	t.screen.Show()
	return nil
}

// Render applies f to the screen: erases first, then draws, then the HUD.
func (t *Terminal) Render(f game.Frame) error {
	if t.screen == nil {
		return errors.New("render on closed terminal")
	}
	if t.err != nil {
		return t.err
	}
	if err := t.checkSize(t.arena); err != nil {
		return err
	}
	for _, p := range f.Erase {
		t.screen.SetContent(p.X, p.Y, ' ', nil, tcell.StyleDefault)
	}
	for _, c := range f.Draw {
		t.screen.SetContent(c.Pos.X, c.Pos.Y, c.Glyph, nil, glyphStyle(c.Glyph))
	}
	t.drawHUD(f)
	t.screen.Show()
	return nil
}

// checkSize fails when the screen cannot hold the walls of a and the HUD row.
func (t *Terminal) checkSize(a game.Arena) error {
	w, h := t.screen.Size()
	// walls take Width+1 columns and Height+1 rows, plus one HUD row
	if w < a.Width+1 || h < a.Height+2 {
		return errors.Errorf("terminal is %dx%d, need at least %dx%d", w, h, a.Width+1, a.Height+2)
	}
	return nil
}

func (t *Terminal) drawHUD(f game.Frame) {
	y := t.arena.Height + 1
	w, _ := t.screen.Size()
	line := fmt.Sprintf("Score: %d  %s", f.Score, helpText)
	if f.Paused {
		line = fmt.Sprintf("Score: %d  PAUSED", f.Score)
	}
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, hudStyle)
	}
	drawText(t.screen, 0, y, line, hudStyle)
}

func glyphStyle(g rune) tcell.Style {
	switch g {
	case game.GlyphHead:
		return headStyle
	case game.GlyphBody:
		return bodyStyle
	case game.GlyphCollectible:
		return collectibleStyle
	case game.GlyphWall:
		return wallStyle
	default:
		return tcell.StyleDefault
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}
