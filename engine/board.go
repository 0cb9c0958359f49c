package engine

import "github.com/joonazan/vec2"

// Coord is a board position. (0,0) is the bottom-left corner.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) Vec() vec2.Vector {
	return vec2.Vector{X: float64(c.X), Y: float64(c.Y)}
}

// Move returns the coordinate one step from c in direction d.
func (c Coord) Move(d Direction) Coord {
	delta := d.Delta()
	return Coord{X: c.X + int(delta.X), Y: c.Y + int(delta.Y)}
}

// Distance is the Manhattan distance between c and o.
func (c Coord) Distance(o Coord) int {
	diff := c.Vec().Minus(o.Vec())
	return abs(int(diff.X)) + abs(int(diff.Y))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

type Snake struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Body   []Coord `json:"body"`
}

func (s *Snake) Head() Coord {
	return s.Body[0]
}

// Neck is the cell the head just left. ok is false for a snake with a
// single segment.
func (s *Snake) Neck() (neck Coord, ok bool) {
	if len(s.Body) < 2 {
		return Coord{}, false
	}
	return s.Body[1], true
}

// TailVacates reports whether the tail cell is free after this turn's
// move. A stacked tail (last two segments equal) stays put.
func (s *Snake) TailVacates() bool {
	n := len(s.Body)
	if n < 2 {
		return false
	}
	return s.Body[n-1] != s.Body[n-2]
}

type Board struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Snakes []Snake `json:"snakes"`
	Food   []Coord `json:"food"`
}

func (b *Board) Outside(c Coord) bool {
	return c.X < 0 || c.X >= b.Width || c.Y < 0 || c.Y >= b.Height
}

// Occupied returns the set of cells holding a snake segment next turn.
// With conservative set every segment counts, tails included.
func (b *Board) Occupied(conservative bool) map[Coord]struct{} {
	occ := make(map[Coord]struct{})
	for i := range b.Snakes {
		s := &b.Snakes[i]
		body := s.Body
		if !conservative && s.TailVacates() {
			body = body[:len(body)-1]
		}
		for _, c := range body {
			occ[c] = struct{}{}
		}
	}
	return occ
}

// GameState is one turn's snapshot. You must also appear in Board.Snakes.
type GameState struct {
	GameID string `json:"game_id,omitempty"`
	Turn   int    `json:"turn"`
	Board  Board  `json:"board"`
	You    Snake  `json:"you"`
}
