package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/game"
)

// seatDifficulties resolves the --a and --b flags, falling back to --difficulty
func seatDifficulties(a, b string) (model.Difficulty, model.Difficulty, error) {
	if a == "" {
		a = cfg.Difficulty
	}
	if b == "" {
		b = cfg.Difficulty
	}
	da, err := model.ParseDifficulty(a)
	if err != nil {
		return "", "", err
	}
	db, err := model.ParseDifficulty(b)
	if err != nil {
		return "", "", err
	}
	return da, db, nil
}

// botSeats creates fresh computer players labelled with their marker
func botSeats(da, db model.Difficulty) (game.Player, game.Player, error) {
	a, err := app.GameController.NewBotPlayer(da, fmt.Sprintf("%s (%s)", da.DisplayName(), model.PlayerA))
	if err != nil {
		return game.Player{}, game.Player{}, err
	}
	b, err := app.GameController.NewBotPlayer(db, fmt.Sprintf("%s (%s)", db.DisplayName(), model.PlayerB))
	if err != nil {
		return game.Player{}, game.Player{}, err
	}
	return a, b, nil
}

func newWatchCmd() *cobra.Command {
	var flagA, flagB string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the computer play itself",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			da, db, err := seatDifficulties(flagA, flagB)
			if err != nil {
				return err
			}
			a, b, err := botSeats(da, db)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			labels := map[model.Cell]string{model.PlayerA: a.Seat.Label, model.PlayerB: b.Seat.Label}

			record, err := app.GameController.PlayMatch(cmd.Context(), a, b, game.ObserverFunc(func(event model.Event) {
				if event.Type != model.EventMoveApplied {
					return
				}
				out.PrintMessage("%s plays %d:", labels[event.Player], keypad(event.Position))
				out.PrintBoard(event.Board)
				out.PrintMessage("")
			}))
			if err != nil {
				return err
			}
			out.Print(newMatchResult(record))
			return nil
		},
	}

	cmd.Flags().StringVar(&flagA, "a", "", "Difficulty for X (default --difficulty)")
	cmd.Flags().StringVar(&flagB, "b", "", "Difficulty for O (default --difficulty)")

	return cmd
}
