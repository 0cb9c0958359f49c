package main // import "github.com/tonobo/battlesnake-starter"

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tonobo/battlesnake-starter/config"
)

var verbose bool

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "battlesnake",
		Short:         "Battlesnake starter bot",
		Long:          "Serves the Battlesnake API and answers each turn with a safe move.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMoveCommand())
	return rootCmd
}

// setupLogging applies LOG_LEVEL, or debug with console output when
// --verbose is set.
func setupLogging(cfg *config.Config) error {
	if verbose {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		gin.SetMode(gin.DebugMode)
		return nil
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	gin.SetMode(gin.ReleaseMode)
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := setupLogging(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
