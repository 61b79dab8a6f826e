package game

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection is returned when a snake is built with a value outside
// Left, Right, Up and Down.
var ErrInvalidDirection = errors.New("invalid direction")

// Snake is the player's body. Body holds the trailing segments, oldest first;
// the last element is the neck. The head is kept apart from Body.
type Snake struct {
	Body      []Point
	Head      Point
	Direction Direction
	Score     int
}

// NewSnake returns a snake whose single body segment sits on the start head.
func NewSnake(head Point, dir Direction) (*Snake, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("new snake: %w: %d", ErrInvalidDirection, int(dir))
	}
	return &Snake{
		Body:      []Point{head},
		Head:      head,
		Direction: dir,
	}, nil
}

// SetDirection changes the direction of travel and reports whether it did.
// Same-direction and reversing requests are ignored. Passing a non-movement
// value panics.
func (s *Snake) SetDirection(dir Direction) bool {
	if !dir.Valid() {
		panic(fmt.Sprintf("snake: set direction: %v: %d", ErrInvalidDirection, int(dir)))
	}
	if dir == s.Direction || dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// Advance moves the head one cell. The old head becomes the neck and the
// oldest segment is dropped and returned as the vacated cell.
// A single-segment snake vacates its previous head.
func (s *Snake) Advance() Point {
	s.Body = append(s.Body, s.Head)
	s.Head = s.Head.Add(s.Direction.ToPoint())
	vacated := s.Body[0]
	s.Body = s.Body[1:]
	return vacated
}

// TryEat consumes c when the head is on it. The body grows by one segment
// per meal regardless of the reward; the caller must respawn c.
func (s *Snake) TryEat(c Collectible) (int, bool) {
	if s.Head != c.Pos {
		return 0, false
	}
	s.Score += c.Value
	s.Body = append(s.Body, s.Neck())
	return c.Value, true
}

// IsSelfCollision reports whether the head overlaps a body segment.
func (s *Snake) IsSelfCollision() bool {
	for _, part := range s.Body {
		if part == s.Head {
			return true
		}
	}
	return false
}

// Neck returns the segment right behind the head.
func (s *Snake) Neck() Point {
	if len(s.Body) == 0 {
		return s.Head
	}
	return s.Body[len(s.Body)-1]
}

// Occupies reports whether p is covered by the head or any body segment.
func (s *Snake) Occupies(p Point) bool {
	if p == s.Head {
		return true
	}
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Len is the number of body segments, head excluded.
func (s *Snake) Len() int {
	return len(s.Body)
}
