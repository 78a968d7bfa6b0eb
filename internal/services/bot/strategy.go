package bot

import (
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
	"github.com/mcoot/tictactoe-go/internal/model"
)

// Move is a move a strategy has applied to the match
type Move struct {
	Position model.Position
	Result   model.MoveResult
}

// Strategy chooses and applies the next move for the player whose turn it is.
// Instances are scoped to a single match.
type Strategy interface {
	// Play applies exactly one move to the match
	Play(match *model.Match) (Move, error)
	// Difficulty names the tier this strategy implements
	Difficulty() model.Difficulty
}

// apply plays pos for the current player
func apply(match *model.Match, pos model.Position) (Move, error) {
	result, err := match.ApplyMove(pos)
	if err != nil {
		return Move{}, err
	}
	return Move{Position: pos, Result: result}, nil
}

// pick selects one candidate uniformly at random
func pick(rnd random.Random, candidates []model.Position) model.Position {
	return candidates[rnd.Intn(len(candidates))]
}

func logDecision(logger *slog.Logger, rule string, player model.Cell, pos model.Position) {
	logger.Debug("bot move",
		slog.String("rule", rule),
		slog.String("player", player.String()),
		slog.String("position", pos.String()),
	)
}
