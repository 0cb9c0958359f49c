// Package api serves the Battlesnake HTTP protocol on top of the move engine.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tonobo/battlesnake-starter/config"
	"github.com/tonobo/battlesnake-starter/engine"
)

// Version is reported from GET /. Set with -ldflags at build time.
var Version = "0.1.0"

// BoxedInShout accompanies the fallback move when nothing was safe.
const BoxedInShout = "boxed in"

type Server struct {
	cfg       *config.Config
	engine    *engine.Engine
	router    *gin.Engine
	accessLog *accessLog
}

func New(cfg *config.Config, eng *engine.Engine) *Server {
	s := &Server{
		cfg:       cfg,
		engine:    eng,
		router:    gin.New(),
		accessLog: &accessLog{dir: cfg.LogDir},
	}
	s.router.Use(gin.Recovery(), requestLogger())

	s.router.GET("/", s.handleIndex)
	s.router.POST("/start", s.handleStart)
	s.router.POST("/move", s.handleMove)
	s.router.POST("/end", s.handleEnd)
	s.router.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until the server fails.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info().Str("addr", addr).Msg("battlesnake server listening")
	return srv.ListenAndServe()
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		APIVersion: "1",
		Author:     s.cfg.Author,
		Color:      s.cfg.Color,
		Head:       s.cfg.Head,
		Tail:       s.cfg.Tail,
		Version:    Version,
	})
}

// bind decodes the body, answering 400 on failure. With validate set the
// request must also pass Validate; /end skips that since "you" may already
// be off the board.
func bind(c *gin.Context, validate bool) (*MoveRequest, bool) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if !validate {
		return &req, true
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &req, true
}

func (s *Server) handleStart(c *gin.Context) {
	req, ok := bind(c, true)
	if !ok {
		return
	}
	log.Info().
		Str("game", req.Game.ID).
		Str("ruleset", req.Game.Ruleset.Name).
		Str("map", req.Game.Map).
		Int("timeout", req.Game.Timeout).
		Int("width", req.Board.Width).
		Int("height", req.Board.Height).
		Int("snakes", len(req.Board.Snakes)).
		Int("hazards", len(req.Board.Hazards)).
		Int("food_spawn_chance", req.Game.Ruleset.Settings.FoodSpawnChance).
		Int("minimum_food", req.Game.Ruleset.Settings.MinimumFood).
		Int("hazard_damage", req.Game.Ruleset.Settings.HazardDamagePerTurn).
		Msg("game started")
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) handleMove(c *gin.Context) {
	req, ok := bind(c, true)
	if !ok {
		return
	}
	s.logRequest(req)

	state := req.GameState()
	if e := log.Debug(); e.Enabled() {
		e.Str("game", req.Game.ID).Int("turn", req.Turn).Msg("board\n" + engine.NewGrid(state).String())
	}
	res := MoveResponse{Move: s.engine.Decide(state)}
	if s.engine.Candidates(state).Empty() {
		res.Shout = BoxedInShout
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleEnd(c *gin.Context) {
	req, ok := bind(c, false)
	if !ok {
		return
	}
	s.logRequest(req)

	log.Info().
		Str("game", req.Game.ID).
		Int("turn", req.Turn).
		Str("result", result(req)).
		Msg("game ended")
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) logRequest(req *MoveRequest) {
	if err := s.accessLog.Write(req); err != nil {
		log.Warn().Err(err).Str("game", req.Game.ID).Msg("access log")
	}
}

// result reads the outcome from the final board: we won if we are the
// last snake standing.
func result(req *MoveRequest) string {
	alive := false
	for _, s := range req.Board.Snakes {
		if s.ID == req.You.ID {
			alive = true
			break
		}
	}
	switch {
	case alive && len(req.Board.Snakes) == 1:
		return "won"
	case alive:
		return "alive"
	case len(req.Board.Snakes) == 0:
		return "draw"
	}
	return "lost"
}
