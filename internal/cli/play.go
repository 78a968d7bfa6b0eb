package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/game"
)

const humanLabel = "You"

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play against the computer",
		Long: `Play against the computer on the terminal.

Squares are numbered 1-9 row by row from the top left. X always moves first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty, err := model.ParseDifficulty(cfg.Difficulty)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			var promptW io.Writer = cmd.OutOrStdout()
			if out.JSON() {
				promptW = cmd.ErrOrStderr()
			}
			p := newPrompter(cmd.InOrStdin(), promptW)

			if err := playSession(cmd.Context(), p, out, difficulty); err != nil {
				return err
			}

			tally, err := app.GameController.Tally(cmd.Context())
			if err != nil {
				return err
			}
			out.Print(newTallyResult(tally))
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.First, "first", cfg.First, "Move first: yes, no, ask (env: TICTACTOE_FIRST)")

	return cmd
}

// playSession plays matches until the player declines another or quits
func playSession(ctx context.Context, p *prompter, out *Output, difficulty model.Difficulty) error {
	out.PrintMessage("You are playing %s.", difficulty.DisplayName())
	for {
		humanFirst, err := resolveFirst(ctx, p, cfg.First)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		human := game.HumanPlayer(humanLabel, &humanSource{prompter: p, out: out})
		computer, err := app.GameController.NewBotPlayer(difficulty, "")
		if err != nil {
			return err
		}
		a, b := human, computer
		computerCell := model.PlayerB
		if !humanFirst {
			a, b = computer, human
			computerCell = model.PlayerA
		}

		record, err := app.GameController.PlayMatch(ctx, a, b, playObserver(out, computer.Seat.Label, computerCell))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		out.Print(newMatchResult(record))

		again, err := p.confirm(ctx, "Play again?")
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// resolveFirst decides whether the human plays X
func resolveFirst(ctx context.Context, p *prompter, first string) (bool, error) {
	switch strings.ToLower(first) {
	case FirstYes:
		return true, nil
	case FirstNo:
		return false, nil
	default:
		return p.confirm(ctx, "Do you want to go first?")
	}
}

// playObserver reports the computer's moves and draws the final board
func playObserver(out *Output, computer string, computerCell model.Cell) game.Observer {
	return game.ObserverFunc(func(event model.Event) {
		switch event.Type {
		case model.EventMoveApplied:
			if event.Player == computerCell {
				out.PrintMessage("%s plays %d.", computer, keypad(event.Position))
			}
		case model.EventMatchComplete:
			out.PrintBoard(event.Board)
		}
	})
}
