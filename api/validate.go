package api

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tonobo/battlesnake-starter/engine"
)

// ErrInvalidRequest wraps every rejection of a malformed game state.
var ErrInvalidRequest = errors.New("invalid request")

// MaxBoardSize bounds width and height.
const MaxBoardSize = 255

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// Validate checks what the engine takes for granted: a positive board,
// snakes whose segments lie on the board and are adjacent or stacked, food
// without duplicates, and "you" being one of the board's snakes with the
// same body.
func (r *MoveRequest) Validate() error {
	b := &r.Board
	if b.Width <= 0 || b.Height <= 0 || b.Width > MaxBoardSize || b.Height > MaxBoardSize {
		return invalid("board size %dx%d", b.Width, b.Height)
	}
	if r.Turn < 0 {
		return invalid("turn %d", r.Turn)
	}
	board := engine.Board{Width: b.Width, Height: b.Height}
	food := make(map[engine.Coord]struct{}, len(b.Food))
	for _, f := range b.Food {
		if board.Outside(f) {
			return invalid("food at (%d,%d) is off the board", f.X, f.Y)
		}
		if _, dup := food[f]; dup {
			return invalid("duplicate food at (%d,%d)", f.X, f.Y)
		}
		food[f] = struct{}{}
	}

	seen := make(map[string]struct{}, len(b.Snakes))
	var found *Snake
	for i := range b.Snakes {
		s := &b.Snakes[i]
		if _, dup := seen[s.ID]; dup {
			return invalid("duplicate snake id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
		if err := validateSnake(&board, s); err != nil {
			return err
		}
		if s.ID == r.You.ID {
			found = s
		}
	}
	if found == nil {
		return invalid("you (%q) is not on the board", r.You.ID)
	}
	if err := validateSnake(&board, &r.You); err != nil {
		return err
	}
	if !slices.Equal(found.Body, r.You.Body) {
		return invalid("you (%q) body differs from its board entry", r.You.ID)
	}
	return nil
}

func validateSnake(board *engine.Board, s *Snake) error {
	if s.ID == "" {
		return invalid("snake without id")
	}
	if s.Health < 0 || s.Health > 100 {
		return invalid("snake %q health %d", s.ID, s.Health)
	}
	if len(s.Body) == 0 {
		return invalid("snake %q has no body", s.ID)
	}
	for i, c := range s.Body {
		if board.Outside(c) {
			return invalid("snake %q segment %d at (%d,%d) is off the board", s.ID, i, c.X, c.Y)
		}
		if i > 0 && c.Distance(s.Body[i-1]) > 1 {
			return invalid("snake %q segments %d and %d are not adjacent", s.ID, i-1, i)
		}
	}
	return nil
}
