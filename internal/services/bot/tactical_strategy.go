package bot

import (
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
	"github.com/mcoot/tictactoe-go/internal/model"
)

// TacticalStrategy takes an immediate win, otherwise blocks the opponent's
// immediate win, otherwise plays randomly
type TacticalStrategy struct {
	fallback *RandomStrategy
	logger   *slog.Logger
}

// NewTacticalStrategy creates a new TacticalStrategy
func NewTacticalStrategy(rnd random.Random, logger *slog.Logger) *TacticalStrategy {
	return &TacticalStrategy{
		fallback: NewRandomStrategy(rnd, logger),
		logger:   logger,
	}
}

// Difficulty returns DifficultyTactical
func (s *TacticalStrategy) Difficulty() model.Difficulty {
	return model.DifficultyTactical
}

// Play applies a win or block if one exists, else a random move
func (s *TacticalStrategy) Play(match *model.Match) (Move, error) {
	if move, ok, err := s.playWinOrBlock(match); ok || err != nil {
		return move, err
	}
	return s.fallback.Play(match)
}

// playWinOrBlock applies a win or block and reports whether one was found
func (s *TacticalStrategy) playWinOrBlock(match *model.Match) (Move, bool, error) {
	board := match.Board()
	rule := "win"
	pos, ok := completingCell(&board, match.CurrentPlayer())
	if !ok {
		rule = "block"
		pos, ok = completingCell(&board, match.NextPlayer())
	}
	if !ok {
		return Move{}, false, nil
	}
	logDecision(s.logger, rule, match.CurrentPlayer(), pos)
	move, err := apply(match, pos)
	return move, true, err
}

// completingCell finds the empty cell of the first line holding two of the
// player's markers and nothing else
func completingCell(board *model.Board, player model.Cell) (model.Position, bool) {
	for line := range board.Lines() {
		if line.Count(player) == 2 && line.Count(model.Empty) == 1 {
			return line.OpenPositions()[0], true
		}
	}
	return model.Position{}, false
}
