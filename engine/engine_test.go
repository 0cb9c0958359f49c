package engine

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func coords(xy ...int) []Coord {
	out := make([]Coord, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, Coord{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func newState(width, height int, you Snake, others ...Snake) *GameState {
	snakes := append([]Snake{you}, others...)
	return &GameState{
		Turn:  3,
		Board: Board{Width: width, Height: height, Snakes: snakes},
		You:   you,
	}
}

func TestScenarioNeckExcluded(t *testing.T) {
	you := Snake{ID: "me", Health: 90, Body: coords(5, 5, 4, 5)}
	state := newState(11, 11, you)

	safe := SafeMoves(state)
	require.False(t, safe.Has(Left))
	require.Equal(t, NewDirectionSet(Up, Down, Right), safe)

	for i := int64(0); i < 50; i++ {
		require.NotEqual(t, Left, Decide(state, rand.New(rand.NewSource(i))))
	}
}

func TestScenarioWallExcluded(t *testing.T) {
	you := Snake{ID: "me", Health: 90, Body: coords(10, 5, 10, 4)}
	state := newState(11, 11, you)

	safe := SafeMoves(state)
	require.False(t, safe.Has(Right))
	require.Equal(t, NewDirectionSet(Up, Left), safe)
}

func TestScenarioOpponentExcluded(t *testing.T) {
	you := Snake{ID: "me", Health: 90, Body: coords(5, 5, 5, 4)}
	other := Snake{ID: "them", Health: 90, Body: coords(5, 6, 6, 6, 7, 6)}
	state := newState(11, 11, you, other)

	safe := SafeMoves(state)
	require.False(t, safe.Has(Up))
	require.Equal(t, NewDirectionSet(Left, Right), safe)
}

func TestScenarioBoxedInFallsBack(t *testing.T) {
	you := Snake{ID: "me", Health: 90, Body: coords(0, 0, 1, 0, 1, 1)}
	other := Snake{ID: "them", Health: 90, Body: coords(0, 1, 0, 2, 0, 3)}
	state := newState(11, 11, you, other)

	require.True(t, SafeMoves(state).Empty())
	for i := int64(0); i < 10; i++ {
		require.Equal(t, Down, Decide(state, rand.New(rand.NewSource(i))))
	}
	require.Equal(t, Down, New(Config{Seed: 7}).Decide(state))
}

func TestTailHandling(t *testing.T) {
	moving := Snake{ID: "me", Health: 90, Body: coords(2, 2, 2, 1, 3, 1, 3, 2)}
	stacked := Snake{ID: "me", Health: 90, Body: coords(2, 2, 2, 1, 3, 1, 3, 2, 3, 2)}

	tests := []struct {
		name     string
		you      Snake
		filter   Filter
		expected DirectionSet
	}{
		{"vacating tail is free", moving, AvoidSnakes, NewDirectionSet(Up, Down, Left, Right).Without(Down)},
		{"stacked tail blocks", stacked, AvoidSnakes, NewDirectionSet(Up, Left)},
		{"conservative blocks every tail", moving, AvoidSnakesConservative, NewDirectionSet(Up, Left)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newState(7, 7, tt.you)
			got := Apply(state, AllDirections, AvoidNeck, AvoidWalls, tt.filter)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestStackedStartExcludesNothing(t *testing.T) {
	you := Snake{ID: "me", Health: 100, Body: coords(3, 3, 3, 3, 3, 3)}
	state := newState(7, 7, you)

	require.Equal(t, AllDirections, AvoidNeck(state, AllDirections))
	require.Equal(t, AllDirections, SafeMoves(state))
}

func cloneBodies(snakes []Snake) [][]Coord {
	out := make([][]Coord, len(snakes))
	for i, s := range snakes {
		out[i] = append([]Coord(nil), s.Body...)
	}
	return out
}

func TestFilteringIsIdempotent(t *testing.T) {
	you := Snake{ID: "me", Health: 40, Body: coords(5, 5, 5, 4, 5, 3)}
	other := Snake{ID: "them", Health: 90, Body: coords(6, 5, 7, 5, 7, 5)}
	state := newState(11, 11, you, other)
	state.Board.Food = coords(0, 0, 9, 9)

	wantYou := append([]Coord(nil), state.You.Body...)
	wantSnakes := cloneBodies(state.Board.Snakes)
	wantFood := append([]Coord(nil), state.Board.Food...)
	unchanged := func() {
		t.Helper()
		require.Equal(t, wantYou, state.You.Body)
		require.Equal(t, wantSnakes, cloneBodies(state.Board.Snakes))
		require.Equal(t, wantFood, state.Board.Food)
	}

	first := SafeMoves(state)
	unchanged()
	second := SafeMoves(state)
	unchanged()
	require.Equal(t, first, second)

	e := New(Config{FoodHealthLimit: 100, Seed: 5})
	require.Equal(t, e.Decide(state), e.Decide(state))
	unchanged()
	require.Equal(t, first, SafeMoves(state))
}

func TestEngineConcurrentGames(t *testing.T) {
	you := Snake{ID: "me", Health: 30, Body: coords(5, 5, 5, 4, 5, 3)}
	other := Snake{ID: "them", Health: 90, Body: coords(6, 5, 7, 5, 8, 5)}
	state := newState(11, 11, you, other)
	state.Board.Food = coords(1, 1)
	safe := SafeMoves(state)

	e := New(Config{FoodHealthLimit: FoodHealthLimit})
	var wg sync.WaitGroup
	errs := make(chan Direction, 16*200)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if move := e.Decide(state); !safe.Has(move) {
					errs <- move
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for move := range errs {
		t.Errorf("unsafe move %s", move)
	}
}

func TestFoodBias(t *testing.T) {
	you := Snake{ID: "me", Health: 30, Body: coords(5, 5, 5, 4)}
	state := newState(11, 11, you)
	state.Board.Food = coords(1, 5, 9, 9)

	require.Equal(t, NewDirectionSet(Left), FoodBias(state, NewDirectionSet(Up, Left, Right)))

	state.Board.Food = coords(5, 9)
	require.Equal(t, NewDirectionSet(Up), FoodBias(state, NewDirectionSet(Up, Left, Right)))

	state.Board.Food = nil
	require.Equal(t, NewDirectionSet(Up, Left), FoodBias(state, NewDirectionSet(Up, Left)))
}

func TestEngineUsesFoodBiasWhenHungry(t *testing.T) {
	you := Snake{ID: "me", Health: 20, Body: coords(5, 5, 5, 4)}
	state := newState(11, 11, you)
	state.Board.Food = coords(0, 5)

	e := New(Config{FoodHealthLimit: FoodHealthLimit, Seed: 42})
	for turn := 0; turn < 20; turn++ {
		state.Turn = turn
		require.Equal(t, Left, e.Decide(state))
	}

	state.You.Health = 100
	state.Board.Snakes[0].Health = 100
	seen := map[Direction]bool{}
	for turn := 0; turn < 200; turn++ {
		state.Turn = turn
		seen[e.Decide(state)] = true
	}
	require.Greater(t, len(seen), 1)
}

func TestEngineSeedIsReproducible(t *testing.T) {
	you := Snake{ID: "me", Health: 90, Body: coords(5, 5, 5, 4)}
	state := newState(11, 11, you)

	a := New(Config{Seed: 99})
	b := New(Config{Seed: 99})
	for turn := 0; turn < 30; turn++ {
		state.Turn = turn
		require.Equal(t, a.Decide(state), b.Decide(state))
	}
}

// randomWalk grows a body of up to n segments from a free cell without
// overlapping itself or anything in taken.
func randomWalk(rng *rand.Rand, w, h, n int, taken map[Coord]struct{}) []Coord {
	start := Coord{X: rng.Intn(w), Y: rng.Intn(h)}
	if _, ok := taken[start]; ok {
		return nil
	}
	body := []Coord{start}
	used := map[Coord]struct{}{start: {}}
	for len(body) < n {
		next := body[len(body)-1].Move(Directions[rng.Intn(4)])
		if next.X < 0 || next.X >= w || next.Y < 0 || next.Y >= h {
			continue
		}
		if _, ok := used[next]; ok {
			break
		}
		if _, ok := taken[next]; ok {
			break
		}
		body = append(body, next)
		used[next] = struct{}{}
	}
	for c := range used {
		taken[c] = struct{}{}
	}
	return body
}

func TestDecideProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	checked := 0
	for i := 0; i < 2000; i++ {
		w, h := 3+rng.Intn(6), 3+rng.Intn(6)
		taken := map[Coord]struct{}{}
		body := randomWalk(rng, w, h, 2+rng.Intn(6), taken)
		if len(body) < 2 {
			continue
		}
		you := Snake{ID: "me", Health: 100, Body: body}
		state := newState(w, h, you)
		opponents := rng.Intn(4)
		for j := 0; j < opponents; j++ {
			if ob := randomWalk(rng, w, h, 2+rng.Intn(4), taken); len(ob) > 0 {
				state.Board.Snakes = append(state.Board.Snakes, Snake{ID: "o", Health: 100, Body: ob})
			}
		}

		candidates := SafeMoves(state)
		move := Decide(state, rand.New(rand.NewSource(int64(i))))
		next := body[0].Move(move)

		if candidates.Empty() {
			require.Equal(t, Down, move)
			continue
		}
		checked++
		require.True(t, candidates.Has(move))
		require.NotEqual(t, body[1], next, "moved onto neck")
		require.False(t, state.Board.Outside(next), "moved off board")
		_, hit := state.Board.Occupied(false)[next]
		require.False(t, hit, "moved into a body")
		require.Equal(t, candidates, SafeMoves(state))
	}
	require.Greater(t, checked, 100)
}

func TestEngineConservativeTails(t *testing.T) {
	you := Snake{ID: "me", Health: 90, Body: coords(2, 2, 2, 1, 3, 1, 3, 2)}
	state := newState(7, 7, you)

	require.True(t, New(Config{}).Candidates(state).Has(Right))
	require.False(t, New(Config{ConservativeTails: true}).Candidates(state).Has(Right))
}
