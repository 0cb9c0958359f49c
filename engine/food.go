package engine

import "math"

// FoodBias keeps the candidates whose next cell is closest (Manhattan) to
// any food. Without food, or with no candidates, the set is returned as is.
func FoodBias(state *GameState, candidates DirectionSet) DirectionSet {
	if len(state.Board.Food) == 0 || candidates.Empty() {
		return candidates
	}
	head := state.You.Head()
	best := math.MaxInt
	var out DirectionSet
	for _, d := range candidates.Directions() {
		dist := nearestFood(head.Move(d), state.Board.Food)
		switch {
		case dist < best:
			best = dist
			out = NewDirectionSet(d)
		case dist == best:
			out |= NewDirectionSet(d)
		}
	}
	return out
}

func nearestFood(from Coord, food []Coord) int {
	best := math.MaxInt
	for _, f := range food {
		if d := from.Distance(f); d < best {
			best = d
		}
	}
	return best
}
