package bot

import (
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
	"github.com/mcoot/tictactoe-go/internal/model"
)

// RandomStrategy plays a uniformly random empty cell
type RandomStrategy struct {
	random random.Random
	logger *slog.Logger
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random, logger *slog.Logger) *RandomStrategy {
	return &RandomStrategy{random: rnd, logger: logger}
}

// Difficulty returns DifficultyRandom
func (s *RandomStrategy) Difficulty() model.Difficulty {
	return model.DifficultyRandom
}

// Play picks a random empty cell. A full board yields ErrNoLegalMove.
func (s *RandomStrategy) Play(match *model.Match) (Move, error) {
	board := match.Board()
	open := board.OpenCells()
	if len(open) == 0 {
		return Move{}, model.ErrNoLegalMove
	}
	pos := pick(s.random, open)
	logDecision(s.logger, "random", match.CurrentPlayer(), pos)
	return apply(match, pos)
}
