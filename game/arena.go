package game

type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Arena is the play rectangle. Cells with x == 0, x == Width, y == 0 or
// y == Height are wall; the floor is the strict interior.
type Arena struct {
	Width  int
	Height int
}

func NewArena(width, height int) Arena {
	return Arena{Width: width, Height: height}
}

func (a Arena) ContainsInterior(p Point) bool {
	return p.X > 0 && p.X < a.Width && p.Y > 0 && p.Y < a.Height
}

func (a Arena) IsWallCollision(p Point) bool {
	return !a.ContainsInterior(p)
}

// Center returns the middle of the floor.
func (a Arena) Center() Point {
	return Point{X: a.Width / 2, Y: a.Height / 2}
}

// Walls lists every boundary cell, row by row.
func (a Arena) Walls() []Point {
	walls := make([]Point, 0, 2*(a.Width+1)+2*(a.Height-1))
	for y := 0; y <= a.Height; y++ {
		for x := 0; x <= a.Width; x++ {
			if y == 0 || y == a.Height || x == 0 || x == a.Width {
				walls = append(walls, Point{X: x, Y: y})
			}
		}
	}
	return walls
}
