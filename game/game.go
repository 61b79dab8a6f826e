package game

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

const (
	GlyphHead        = '@'
	GlyphBody        = '*'
	GlyphCollectible = '$'
	GlyphWall        = '#'
)

type Cell struct {
	Pos   Point
	Glyph rune
}

// Frame is the incremental redraw for one tick. Erase is applied before Draw.
type Frame struct {
	Erase  []Point
	Draw   []Cell
	Score  int
	Paused bool
}

// Game holds everything that changes from tick to tick.
type Game struct {
	Arena       Arena
	Snake       *Snake
	Collectible Collectible
	Ticks       int

	spawner *Spawner
}

// NewGame starts a snake in the middle of the arena heading right.
func NewGame(arena Arena, spawner *Spawner) (*Game, error) {
	snake, err := NewSnake(arena.Center(), Right)
	if err != nil {
		return nil, err
	}
	return &Game{
		Arena:       arena,
		Snake:       snake,
		Collectible: spawner.Respawn(arena),
		spawner:     spawner,
	}, nil
}

// Snapshot draws the whole board except the walls.
func (g *Game) Snapshot() Frame {
	f := Frame{Score: g.Snake.Score}
	for _, part := range g.Snake.Body {
		f.Draw = append(f.Draw, Cell{Pos: part, Glyph: GlyphBody})
	}
	f.Draw = append(f.Draw,
		Cell{Pos: g.Collectible.Pos, Glyph: GlyphCollectible},
		Cell{Pos: g.Snake.Head, Glyph: GlyphHead},
	)
	return f
}

// Step advances one tick: move, eat, then check collisions on the new head.
// The returned frame is only meaningful when no collision occurred.
func (g *Game) Step() (Frame, int, CollisionType) {
	g.Ticks++
	s := g.Snake

	vacated := s.Advance()
	reward, ate := s.TryEat(g.Collectible)
	if ate {
		g.Collectible = g.spawner.Respawn(g.Arena)
	}

	if collision := g.checkCollision(); collision != NoCollision {
		return Frame{Score: s.Score}, reward, collision
	}

	f := Frame{
		Erase: []Point{vacated},
		Score: s.Score,
	}
	f.Draw = append(f.Draw, Cell{Pos: s.Neck(), Glyph: GlyphBody})
	switch {
	case vacated == s.Neck() || vacated == s.Head:
	case s.Occupies(vacated):
		// a duplicated segment from a meal still covers the cell
		f.Draw = append(f.Draw, Cell{Pos: vacated, Glyph: GlyphBody})
	case vacated == g.Collectible.Pos && !ate:
		f.Draw = append(f.Draw, Cell{Pos: vacated, Glyph: GlyphCollectible})
	}
	if ate {
		f.Draw = append(f.Draw, Cell{Pos: g.Collectible.Pos, Glyph: GlyphCollectible})
	}
	f.Draw = append(f.Draw, Cell{Pos: s.Head, Glyph: GlyphHead})
	return f, reward, NoCollision
}

func (g *Game) checkCollision() CollisionType {
	if g.Arena.IsWallCollision(g.Snake.Head) {
		return WallCollision
	}
	if g.Snake.IsSelfCollision() {
		return SelfCollision
	}
	return NoCollision
}
