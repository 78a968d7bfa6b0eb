package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/game"
)

// errQuit is returned when the player quits or input ends
var errQuit = errors.New("player quit")

// prompter reads answers line by line
type prompter struct {
	scanner *bufio.Scanner
	w       io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(r), w: w}
}

// ask prints the question and returns the trimmed answer
func (p *prompter) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.w, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(p.w)
		return "", errQuit
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// confirm asks a yes/no question; anything but y or yes means no
func (p *prompter) confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.ask(ctx, question+" [y/n] ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// humanSource asks the player for moves on the terminal
type humanSource struct {
	prompter *prompter
	out      *Output
}

var _ game.MoveSource = (*humanSource)(nil)

// NextMove keeps asking until the player names an empty square
func (h *humanSource) NextMove(ctx context.Context, board model.Board, player model.Cell) (model.Position, error) {
	h.out.PrintBoard(board)
	for {
		answer, err := h.prompter.ask(ctx, fmt.Sprintf("Your move as %s (1-9, q to quit): ", player))
		if err != nil {
			return model.Position{}, err
		}
		if strings.EqualFold(answer, "q") {
			return model.Position{}, errQuit
		}

		pos, err := parseKeypad(answer)
		if err != nil {
			fmt.Fprintln(h.prompter.w, "Enter a number from 1 to 9.")
			continue
		}
		if !board.IsEmpty(pos) {
			fmt.Fprintf(h.prompter.w, "Square %d is taken.\n", keypad(pos))
			continue
		}
		return pos, nil
	}
}

// parseKeypad reads a square number 1-9, numbered row by row from the top left
func parseKeypad(s string) (model.Position, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return model.Position{}, fmt.Errorf("%w: %q", model.ErrOutOfRange, s)
	}
	if n < 1 || n > model.BoardSize*model.BoardSize {
		return model.Position{}, fmt.Errorf("%w: %d", model.ErrOutOfRange, n)
	}
	return model.PositionFromIndex(n - 1), nil
}
