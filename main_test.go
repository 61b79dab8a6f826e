package main

import (
	"bytes"
	"snake-term/ui"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// simTerminal opens terminals on a simulation screen and remembers the last one.
type simTerminal struct {
	t      *testing.T
	width  int
	height int
	keys   []rune
	term   *ui.Terminal
}

func (s *simTerminal) open() (*ui.Terminal, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := ui.NewTerminal(screen)
	if err != nil {
		return nil, err
	}
	screen.SetSize(s.width, s.height)
	for _, r := range s.keys {
		screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	s.term = term
	s.t.Cleanup(term.Close)
	return term, nil
}

// closeCheckWriter records whether anything was written while the terminal
// was still open.
type closeCheckWriter struct {
	sim          *simTerminal
	buf          bytes.Buffer
	writtenEarly bool
}

func (w *closeCheckWriter) Write(p []byte) (int, error) {
	if w.sim.term == nil || !w.sim.term.Closed() {
		w.writtenEarly = true
	}
	return w.buf.Write(p)
}

func runWithSim(t *testing.T, sim *simTerminal, args ...string) (int, *closeCheckWriter, *closeCheckWriter) {
	t.Helper()
	isolateConfig(t)
	stdout := &closeCheckWriter{sim: sim}
	stderr := &closeCheckWriter{sim: sim}
	code := run(args, stdout, stderr, sim.open)
	return code, stdout, stderr
}

func TestRunCollisionRestoresTerminalFirst(t *testing.T) {
	sim := &simTerminal{t: t, width: 80, height: 25}
	code, stdout, stderr := runWithSim(t, sim, "-width", "10", "-height", "5", "-tick", "2ms", "-poll", "1ms", "-seed", "3")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.buf.String())
	}
	if !strings.HasPrefix(stdout.buf.String(), "Game over! You ran into the wall.") {
		t.Fatalf("stdout = %q, want game over message", stdout.buf.String())
	}
	if stdout.writtenEarly {
		t.Fatalf("message printed before the terminal was restored")
	}
}

func TestRunQuitRestoresTerminalFirst(t *testing.T) {
	sim := &simTerminal{t: t, width: 80, height: 25, keys: []rune{'q'}}
	code, stdout, stderr := runWithSim(t, sim, "-width", "70", "-height", "10", "-tick", "20ms", "-poll", "1ms", "-seed", "3")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.buf.String())
	}
	if !strings.HasPrefix(stdout.buf.String(), "Quit. Final score:") {
		t.Fatalf("stdout = %q, want quit message", stdout.buf.String())
	}
	if stdout.writtenEarly {
		t.Fatalf("message printed before the terminal was restored")
	}
}

func TestRunScreenTooSmall(t *testing.T) {
	sim := &simTerminal{t: t, width: 20, height: 5}
	code, stdout, stderr := runWithSim(t, sim, "-width", "40", "-height", "10")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if stdout.buf.Len() != 0 {
		t.Fatalf("stdout = %q, want nothing", stdout.buf.String())
	}
	if !strings.Contains(stderr.buf.String(), "need at least") || stderr.writtenEarly {
		t.Fatalf("stderr = %q (early %v), want size error after restore", stderr.buf.String(), stderr.writtenEarly)
	}
}
