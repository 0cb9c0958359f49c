package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonobo/battlesnake-starter/api"
	"github.com/tonobo/battlesnake-starter/config"
	"github.com/tonobo/battlesnake-starter/engine"
)

func newEngine(cfg *config.Config) *engine.Engine {
	return engine.New(engine.Config{
		FoodHealthLimit:   cfg.FoodHealthLimit,
		Seed:              cfg.Seed,
		ConservativeTails: cfg.ConservativeTails,
	})
}

func newServeCommand() *cobra.Command {
	var host, port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Battlesnake API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Host = host
			}
			if port != "" {
				cfg.Port = port
			}
			return api.New(cfg, newEngine(cfg)).Run(cfg.Addr())
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "Listen host (overrides HOST)")
	cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides PORT)")
	return cmd
}

// newMoveCommand reads one /move request body from stdin and prints the
// chosen direction.
func newMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move",
		Short: "Decide one move from a request read on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			var req api.MoveRequest
			if err := json.NewDecoder(cmd.InOrStdin()).Decode(&req); err != nil {
				return fmt.Errorf("decode request: %w", err)
			}
			if err := req.Validate(); err != nil {
				return err
			}
			state := req.GameState()
			if verbose {
				if _, err := engine.NewGrid(state).WriteTo(cmd.ErrOrStderr()); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), newEngine(cfg).Decide(state))
			return err
		},
	}
}
