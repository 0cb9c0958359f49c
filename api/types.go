package api

import "github.com/tonobo/battlesnake-starter/engine"

// MoveRequest is the body of /start, /move and /end.
type MoveRequest struct {
	Game  Game  `json:"game"`
	Turn  int   `json:"turn" binding:"min=0"`
	Board Board `json:"board"`
	You   Snake `json:"you"`
}

type Game struct {
	ID      string  `json:"id" binding:"required"`
	Ruleset Ruleset `json:"ruleset"`
	Map     string  `json:"map"`
	Timeout int     `json:"timeout"`
	Source  string  `json:"source"`
}

type Ruleset struct {
	Name     string          `json:"name"`
	Version  string          `json:"version"`
	Settings RulesetSettings `json:"settings"`
}

type RulesetSettings struct {
	FoodSpawnChance     int `json:"foodSpawnChance"`
	MinimumFood         int `json:"minimumFood"`
	HazardDamagePerTurn int `json:"hazardDamagePerTurn"`
}

type Board struct {
	Height  int            `json:"height" binding:"required,gt=0"`
	Width   int            `json:"width" binding:"required,gt=0"`
	Food    []engine.Coord `json:"food"`
	Hazards []engine.Coord `json:"hazards"`
	Snakes  []Snake        `json:"snakes" binding:"dive"`
}

type Snake struct {
	ID             string         `json:"id" binding:"required"`
	Name           string         `json:"name"`
	Latency        string         `json:"latency"`
	Health         int            `json:"health" binding:"min=0,max=100"`
	Body           []engine.Coord `json:"body" binding:"required,min=1"`
	Head           engine.Coord   `json:"head"`
	Length         int            `json:"length"`
	Shout          string         `json:"shout"`
	Squad          string         `json:"squad"`
	Customizations Customizations `json:"customizations"`
}

type Customizations struct {
	Color string `json:"color"`
	Head  string `json:"head"`
	Tail  string `json:"tail"`
}

// InfoResponse is returned from GET /.
type InfoResponse struct {
	APIVersion string `json:"apiversion"`
	Author     string `json:"author"`
	Color      string `json:"color"`
	Head       string `json:"head"`
	Tail       string `json:"tail"`
	Version    string `json:"version"`
}

type MoveResponse struct {
	Move  engine.Direction `json:"move"`
	Shout string           `json:"shout,omitempty"`
}

func (s Snake) toEngine() engine.Snake {
	body := make([]engine.Coord, len(s.Body))
	copy(body, s.Body)
	return engine.Snake{ID: s.ID, Name: s.Name, Health: s.Health, Body: body}
}

// GameState converts a validated request into the engine's snapshot.
func (r *MoveRequest) GameState() *engine.GameState {
	state := &engine.GameState{
		GameID: r.Game.ID,
		Turn:   r.Turn,
		Board: engine.Board{
			Width:  r.Board.Width,
			Height: r.Board.Height,
			Snakes: make([]engine.Snake, len(r.Board.Snakes)),
			Food:   make([]engine.Coord, len(r.Board.Food)),
		},
		You: r.You.toEngine(),
	}
	copy(state.Board.Food, r.Board.Food)
	for i, s := range r.Board.Snakes {
		state.Board.Snakes[i] = s.toEngine()
	}
	return state
}
