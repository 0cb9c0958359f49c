package engine

import (
	"io"
	"strings"
	"unicode"
)

var snakeIDList = []rune("abcdeghjk")

// Grid renders the board top row first. Food is F, empty cells are -, our
// snake is M (head) and m (body), opponents get a letter each, upper case
// for the head.
type Grid struct {
	state *GameState
}

func NewGrid(state *GameState) Grid {
	return Grid{state: state}
}

func (g Grid) cells() [][]rune {
	b := &g.state.Board
	rows := make([][]rune, b.Height)
	for y := range rows {
		rows[y] = []rune(strings.Repeat("-", b.Width))
	}
	set := func(c Coord, r rune) {
		if !b.Outside(c) {
			rows[c.Y][c.X] = r
		}
	}
	for _, f := range b.Food {
		set(f, 'F')
	}
	other := 0
	for i := range b.Snakes {
		s := &b.Snakes[i]
		mark := 'm'
		if s.ID != g.state.You.ID {
			mark = snakeIDList[other%len(snakeIDList)]
			other++
		}
		// Draw tail first so a stacked segment keeps the head marker.
		for j := len(s.Body) - 1; j >= 0; j-- {
			r := mark
			if j == 0 {
				r = unicode.ToUpper(mark)
			}
			set(s.Body[j], r)
		}
	}
	return rows
}

func (g Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}

func (g Grid) String() string {
	rows := g.cells()
	var sb strings.Builder
	for y := len(rows) - 1; y >= 0; y-- {
		sb.WriteString(string(rows[y]))
		sb.WriteByte('\n')
	}
	return sb.String()
}
