package game

import (
	"golang.org/x/exp/rand"
)

// Collectible is the item the snake eats. It is replaced wholesale once eaten.
type Collectible struct {
	Pos   Point
	Value int
}

// Spawner places collectibles. Placement ignores the snake, so a collectible
// can land under the body.
type Spawner struct {
	rng      *rand.Rand
	MinValue int
	MaxValue int
}

func NewSpawner(seed uint64, minValue, maxValue int) *Spawner {
	return &Spawner{
		rng:      rand.New(rand.NewSource(seed)),
		MinValue: minValue,
		MaxValue: maxValue,
	}
}

// Respawn draws a position uniformly from the arena floor and a value
// uniformly from [MinValue, MaxValue].
func (s *Spawner) Respawn(a Arena) Collectible {
	return Collectible{
		Pos: Point{
			X: 1 + s.rng.Intn(a.Width-1),
			Y: 1 + s.rng.Intn(a.Height-1),
		},
		Value: s.MinValue + s.rng.Intn(s.MaxValue-s.MinValue+1),
	}
}
