package main

import (
	"encoding/json"
	"fmt"
	"io"
	"snake-term/game"
	"time"

	"github.com/google/uuid"
)

// SessionStats records one game. It lives only as long as the process.
type SessionStats struct {
	UUID       string    `json:"uuid"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Reason     string    `json:"reason"`
	Collision  string    `json:"collision,omitempty"`
	Score      int       `json:"score"`
	Ticks      int       `json:"ticks"`
	Length     int       `json:"length"`
	Eaten      int       `json:"eaten"`
	BestReward int       `json:"best_reward"`
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		UUID:      uuid.New().String(),
		StartTime: time.Now(),
	}
}

func (s *SessionStats) RecordEat(reward int) {
	s.Eaten++
	if reward > s.BestReward {
		s.BestReward = reward
	}
}

func (s *SessionStats) Finish(res game.Result) {
	s.EndTime = time.Now()
	s.Reason = res.Reason.String()
	if res.Collision != game.NoCollision {
		s.Collision = res.Collision.String()
	}
	s.Score = res.Score
	s.Ticks = res.Ticks
	s.Length = res.Length
}

// Duration is the wall time of the session in seconds.
func (s *SessionStats) Duration() float64 {
	return s.EndTime.Sub(s.StartTime).Seconds()
}

func (s *SessionStats) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func (s *SessionStats) WriteSummary(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Score: %d  Eaten: %d  Length: %d  Ticks: %d  Time: %.1fs\n",
		s.Score, s.Eaten, s.Length, s.Ticks, s.Duration())
	return err
}

// exitMessage is the line printed once the terminal has been restored.
func exitMessage(res game.Result) string {
	switch res.Reason {
	case game.ReasonCollision:
		what := "the wall"
		if res.Collision == game.SelfCollision {
			what = "yourself"
		}
		return fmt.Sprintf("Game over! You ran into %s. Final score: %d", what, res.Score)
	case game.ReasonQuit:
		return fmt.Sprintf("Quit. Final score: %d", res.Score)
	default:
		return fmt.Sprintf("Final score: %d", res.Score)
	}
}
