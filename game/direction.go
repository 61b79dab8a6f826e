package game

// Direction is a cardinal movement direction. The zero value is not a valid movement.
type Direction int

const (
	NoDirection Direction = iota
	Left
	Right
	Up
	Down
)

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

// ToPoint returns the unit vector for d (Y grows downwards).
func (d Direction) ToPoint() Point {
	switch d {
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing back along d.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return NoDirection
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}
