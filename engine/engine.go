// Package engine picks a move for one Battlesnake turn.
//
// A decision runs the candidate set through a list of filters (neck, walls,
// snake bodies), optionally narrows it with a chooser such as FoodBias, and
// then picks uniformly at random among what is left. When nothing is left it
// answers Fallback. Nothing here keeps state between calls, so one Engine can
// serve any number of games at once.
package engine

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

// Fallback is returned when every direction has been ruled out.
const Fallback = Down

// FoodHealthLimit is the health at or below which the engine starts
// steering toward food.
const FoodHealthLimit = 50

// Chooser narrows an already safe candidate set by preference. It must
// return a non-empty subset when given a non-empty set.
type Chooser func(state *GameState, candidates DirectionSet) DirectionSet

// Decide runs the default safety pipeline and picks a random survivor. A
// nil rng is replaced by a time-seeded one.
func Decide(state *GameState, rng *rand.Rand) Direction {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return pick(SafeMoves(state), rng)
}

func pick(candidates DirectionSet, rng *rand.Rand) Direction {
	dirs := candidates.Directions()
	if len(dirs) == 0 {
		return Fallback
	}
	return dirs[rng.Intn(len(dirs))]
}

type Config struct {
	// FoodHealthLimit enables FoodBias once health drops to this value.
	// Zero disables it.
	FoodHealthLimit int
	// Seed makes decisions reproducible: each turn is seeded with
	// Seed^turn. Zero seeds from the clock.
	Seed int64
	// ConservativeTails treats every tail as occupied.
	ConservativeTails bool
}

type Engine struct {
	filters         []Filter
	hungry          Chooser
	foodHealthLimit int
	seed            int64
}

func New(cfg Config) *Engine {
	snakes := AvoidSnakes
	if cfg.ConservativeTails {
		snakes = AvoidSnakesConservative
	}
	return &Engine{
		filters:         []Filter{AvoidNeck, AvoidWalls, snakes},
		hungry:          FoodBias,
		foodHealthLimit: cfg.FoodHealthLimit,
		seed:            cfg.Seed,
	}
}

// Candidates returns the directions that survive the engine's filters.
func (e *Engine) Candidates(state *GameState) DirectionSet {
	return Apply(state, AllDirections, e.filters...)
}

// Decide picks this turn's move and logs it.
func (e *Engine) Decide(state *GameState) Direction {
	candidates := e.Candidates(state)
	preferred := candidates
	if e.foodHealthLimit > 0 && state.You.Health <= e.foodHealthLimit {
		preferred = e.hungry(state, candidates)
	}
	move := pick(preferred, e.rand(state.Turn))

	log.Info().
		Str("game", state.GameID).
		Int("turn", state.Turn).
		Stringer("safe", candidates).
		Stringer("move", move).
		Msg("move")
	return move
}

func (e *Engine) rand(turn int) *rand.Rand {
	if e.seed == 0 {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(e.seed ^ int64(turn)))
}
