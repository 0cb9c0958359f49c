package engine

import (
	"fmt"
	"strings"

	"github.com/joonazan/vec2"
)

// Direction is one of the four moves a snake can make.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every move in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

var direction2Vector = [...]vec2.Vector{
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

var directionNames = [...]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta is the vector added to a head moving in direction d.
func (d Direction) Delta() vec2.Vector {
	return direction2Vector[d]
}

func (d Direction) MarshalText() ([]byte, error) {
	if int(d) >= len(directionNames) {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(directionNames[d]), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// DirectionSet is a bitmask over the four directions.
type DirectionSet uint8

const AllDirections DirectionSet = 1<<Up | 1<<Down | 1<<Left | 1<<Right

func NewDirectionSet(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s |= 1 << d
	}
	return s
}

func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

func (s DirectionSet) Without(d Direction) DirectionSet {
	return s &^ (1 << d)
}

func (s DirectionSet) Len() int {
	n := 0
	for _, d := range Directions {
		if s.Has(d) {
			n++
		}
	}
	return n
}

func (s DirectionSet) Empty() bool {
	return s&AllDirections == 0
}

// Directions returns the members of s in Up, Down, Left, Right order.
func (s DirectionSet) Directions() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s DirectionSet) String() string {
	names := make([]string, 0, 4)
	for _, d := range s.Directions() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
