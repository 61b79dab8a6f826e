package game

import (
	"context"
	"time"
)

// Control is a non-movement signal from the player.
type Control int

const (
	NoControl Control = iota
	Quit
	Pause
)

// Input is one polled signal: either a movement direction or a control.
type Input struct {
	Dir     Direction
	Control Control
}

type InputSource interface {
	// Poll waits at most timeout for a signal. It reports false when
	// nothing arrived.
	Poll(timeout time.Duration) (Input, bool)
}

type Renderer interface {
	Render(Frame) error
}

type State int

const (
	Running State = iota
	Paused
	GameOver
)

type Reason int

const (
	ReasonCollision Reason = iota + 1
	ReasonQuit
)

func (r Reason) String() string {
	switch r {
	case ReasonCollision:
		return "collision"
	case ReasonQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result describes how a game ended.
type Result struct {
	Reason    Reason
	Collision CollisionType
	Score     int
	Ticks     int
	Length    int
}

// Loop alternates between a bounded input poll and a tick. It owns the game
// and is the only thing that mutates it.
type Loop struct {
	Game         *Game
	Input        InputSource
	Renderer     Renderer
	TickInterval time.Duration
	PollTimeout  time.Duration

	// OnEat, when set, is called with the reward of every collectible eaten.
	OnEat func(reward int)

	state State
}

func (l *Loop) State() State {
	return l.state
}

// Run plays until a collision, a quit signal or ctx is done. Render errors
// end the run and are returned as is.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	l.state = Running
	if err := l.Renderer.Render(l.Game.Snapshot()); err != nil {
		return l.result(0), err
	}

	for {
		if ctx.Err() != nil {
			return l.finish(ReasonQuit, NoCollision), nil
		}

		if in, ok := l.Input.Poll(l.pollTimeout()); ok {
			switch {
			case in.Control == Quit:
				return l.finish(ReasonQuit, NoCollision), nil
			case in.Control == Pause:
				if err := l.togglePause(); err != nil {
					return l.result(0), err
				}
			case in.Dir.Valid() && l.state == Running:
				l.Game.Snake.SetDirection(in.Dir)
			}
			continue
		}

		if l.state == Paused {
			continue
		}

		frame, reward, collision := l.Game.Step()
		if reward > 0 && l.OnEat != nil {
			l.OnEat(reward)
		}
		if collision != NoCollision {
			return l.finish(ReasonCollision, collision), nil
		}
		if err := l.Renderer.Render(frame); err != nil {
			return l.result(0), err
		}
		l.sleep(ctx)
	}
}

// pollTimeout is the wait for the next input. Paused games have no tick to
// keep, so they wait up to a whole tick interval.
func (l *Loop) pollTimeout() time.Duration {
	if l.state == Paused && l.TickInterval > l.PollTimeout {
		return l.TickInterval
	}
	return l.PollTimeout
}

func (l *Loop) togglePause() error {
	if l.state == Paused {
		l.state = Running
	} else {
		l.state = Paused
	}
	return l.Renderer.Render(Frame{Score: l.Game.Snake.Score, Paused: l.state == Paused})
}

func (l *Loop) sleep(ctx context.Context) {
	if l.TickInterval <= 0 {
		return
	}
	t := time.NewTimer(l.TickInterval)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (l *Loop) finish(reason Reason, collision CollisionType) Result {
	l.state = GameOver
	res := l.result(reason)
	res.Collision = collision
	return res
}

func (l *Loop) result(reason Reason) Result {
	return Result{
		Reason: reason,
		Score:  l.Game.Snake.Score,
		Ticks:  l.Game.Ticks,
		Length: l.Game.Snake.Len(),
	}
}
