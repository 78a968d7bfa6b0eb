package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-go/internal/model"
)

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <board>",
		Short: "Show the computer's move for a position",
		Long: `Show the move the selected difficulty would play.

The board is nine squares row by row, X and O for markers and . for empty
squares. Slashes, bars and spaces are ignored, so "X.O/.X./..O" works.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty, err := model.ParseDifficulty(cfg.Difficulty)
			if err != nil {
				return err
			}
			board, err := model.ParseBoard(strings.Join(args, ""))
			if err != nil {
				return err
			}
			match, err := model.RestoreMatch(board)
			if err != nil {
				return err
			}

			strategy, err := app.BotService.NewStrategy(difficulty)
			if err != nil {
				return err
			}
			player := match.CurrentPlayer()
			move, err := strategy.Play(match)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(Suggestion{
				Board:      board.String(),
				Player:     player.String(),
				Difficulty: string(difficulty),
				Move:       keypad(move.Position),
				Row:        move.Position.Row,
				Col:        move.Position.Col,
				Result:     move.Result.String(),
			})
			return nil
		},
	}
}
