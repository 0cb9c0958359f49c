package engine

// Filter removes unsafe directions from a candidate set. Filters must not
// modify the state.
type Filter func(state *GameState, candidates DirectionSet) DirectionSet

// DefaultFilters is the safe-move pipeline, applied in order.
var DefaultFilters = []Filter{AvoidNeck, AvoidWalls, AvoidSnakes}

// SafeMoves runs DefaultFilters over all four directions.
func SafeMoves(state *GameState) DirectionSet {
	return Apply(state, AllDirections, DefaultFilters...)
}

func Apply(state *GameState, candidates DirectionSet, filters ...Filter) DirectionSet {
	for _, f := range filters {
		if candidates.Empty() {
			break
		}
		candidates = f(state, candidates)
	}
	return candidates
}

// AvoidNeck drops the move that would put the head back onto its neck.
// Head and neck are always orthogonally adjacent or stacked; a stacked
// neck (turn 0) rules nothing out.
func AvoidNeck(state *GameState, candidates DirectionSet) DirectionSet {
	neck, ok := state.You.Neck()
	if !ok {
		return candidates
	}
	head := state.You.Head()
	for _, d := range Directions {
		if head.Move(d) == neck {
			candidates = candidates.Without(d)
		}
	}
	return candidates
}

func AvoidWalls(state *GameState, candidates DirectionSet) DirectionSet {
	head := state.You.Head()
	for _, d := range candidates.Directions() {
		if state.Board.Outside(head.Move(d)) {
			candidates = candidates.Without(d)
		}
	}
	return candidates
}

// AvoidSnakes drops moves into any snake body, ours included. A tail that
// moves away this turn is treated as free.
func AvoidSnakes(state *GameState, candidates DirectionSet) DirectionSet {
	return avoidSnakes(state, candidates, false)
}

// AvoidSnakesConservative is AvoidSnakes with every tail treated as
// occupied.
func AvoidSnakesConservative(state *GameState, candidates DirectionSet) DirectionSet {
	return avoidSnakes(state, candidates, true)
}

func avoidSnakes(state *GameState, candidates DirectionSet, conservative bool) DirectionSet {
	occ := state.Board.Occupied(conservative)
	head := state.You.Head()
	for _, d := range candidates.Directions() {
		if _, hit := occ[head.Move(d)]; hit {
			candidates = candidates.Without(d)
		}
	}
	return candidates
}
