package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"snake-term/game"
	"snake-term/ui"
	"syscall"

	"github.com/pkg/errors"
)

// openTerminal acquires the screen for one game.
type openTerminal func() (*ui.Terminal, error)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, ui.Open))
}

func run(args []string, stdout, stderr io.Writer, open openTerminal) int {
	cfg, err := LoadConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "snake: %v\n", err)
		return 2
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "snake: %v\n", err)
		return 1
	}
	defer closeLog()

	stats := NewSessionStats()
	res, err := play(cfg, stats, open)
	if err != nil {
		log.Printf("session %s failed: %v", stats.UUID, err)
		fmt.Fprintf(stderr, "snake: %v\n", err)
		return 1
	}

	stats.Finish(res)
	log.Printf("session %s ended: reason=%s collision=%s score=%d ticks=%d",
		stats.UUID, res.Reason, res.Collision, res.Score, res.Ticks)

	if cfg.JSON {
		err = stats.WriteJSON(stdout)
	} else {
		fmt.Fprintln(stdout, exitMessage(res))
		err = stats.WriteSummary(stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "snake: %v\n", err)
		return 1
	}
	return 0
}

// play owns the terminal: it is restored before play returns on every path.
func play(cfg Config, stats *SessionStats, open openTerminal) (game.Result, error) {
	arena := game.NewArena(cfg.Width, cfg.Height)
	g, err := game.NewGame(arena, game.NewSpawner(cfg.Seed, cfg.MinValue, cfg.MaxValue))
	if err != nil {
		return game.Result{}, err
	}

	term, err := open()
	if err != nil {
		return game.Result{}, errors.Wrap(err, "open terminal")
	}
	defer term.Close()

	if err := term.Init(arena); err != nil {
		return game.Result{}, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("session %s started: arena=%dx%d seed=%d tick=%v",
		stats.UUID, arena.Width, arena.Height, cfg.Seed, cfg.TickInterval)

	loop := &game.Loop{
		Game:         g,
		Input:        term,
		Renderer:     term,
		TickInterval: cfg.TickInterval,
		PollTimeout:  cfg.PollTimeout,
		OnEat: func(reward int) {
			stats.RecordEat(reward)
			log.Printf("ate %d at tick %d, score %d", reward, g.Ticks, g.Snake.Score)
		},
	}
	res, err := loop.Run(ctx)
	return res, errors.Wrap(err, "game loop")
}

func setupLogging(path string) (func(), error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
