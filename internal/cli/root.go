package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-go/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against the computer",
		Long: `tictactoe plays noughts and crosses in the terminal.

Play against one of three computer opponents, watch two of them play each
other, run a batch of matches, or ask for the best move in a position.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.LoadEnvFile(); err != nil {
				return err
			}
			cfg.applyEnv(cmd.Flags().Changed)
			if err := cfg.Validate(); err != nil {
				return err
			}

			var err error
			app, err = factory.New(factory.Config{
				Logger: newLogger(cmd.ErrOrStderr(), cfg.Verbose),
				Seed:   cfg.Seed,
			})
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Difficulty, "difficulty", "d", cfg.Difficulty, "Computer difficulty: random, tactical, perfect (env: TICTACTOE_DIFFICULTY)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: TICTACTOE_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log every computer decision")
	rootCmd.PersistentFlags().StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Env file to load (env: TICTACTOE_ENV_FILE)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the computer's choices, 0 for random (env: TICTACTOE_SEED)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newSuggestCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
