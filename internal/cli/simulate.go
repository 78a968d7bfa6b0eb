package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-go/internal/model"
)

func newSimulateCmd() *cobra.Command {
	var flagA, flagB string
	var games int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play many computer matches and report the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if games < 1 {
				return fmt.Errorf("--games must be at least 1, got %d", games)
			}
			da, db, err := seatDifficulties(flagA, flagB)
			if err != nil {
				return err
			}

			result := SimulationResult{Games: games}
			for range games {
				a, b, err := botSeats(da, db)
				if err != nil {
					return err
				}
				result.PlayerA, result.PlayerB = a.Seat.Label, b.Seat.Label

				record, err := app.GameController.PlayMatch(cmd.Context(), a, b, nil)
				if err != nil {
					return err
				}
				switch {
				case record.Outcome.Status == model.StatusDraw:
					result.Draws++
				case record.Outcome.Winner == model.PlayerA:
					result.WinsA++
				default:
					result.WinsB++
				}
			}
			app.Logger.Info("simulation complete",
				slog.Int("games", games),
				slog.Int("draws", result.Draws),
			)

			NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagA, "a", "", "Difficulty for X (default --difficulty)")
	cmd.Flags().StringVar(&flagB, "b", "", "Difficulty for O (default --difficulty)")
	cmd.Flags().IntVarP(&games, "games", "n", 100, "Number of matches to play")

	return cmd
}
