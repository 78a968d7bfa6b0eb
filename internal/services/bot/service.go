package bot

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
	"github.com/mcoot/tictactoe-go/internal/model"
)

// Service builds strategies. Every match gets fresh instances, so no state
// carries over from one match to the next.
type Service struct {
	random random.Random
	logger *slog.Logger
}

// NewService creates a new bot Service
func NewService(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger.With(slog.String("component", "bot")),
	}
}

// NewStrategy returns a new strategy for the given difficulty
func (s *Service) NewStrategy(difficulty model.Difficulty) (Strategy, error) {
	switch difficulty {
	case model.DifficultyRandom:
		return NewRandomStrategy(s.random, s.logger), nil
	case model.DifficultyTactical:
		return NewTacticalStrategy(s.random, s.logger), nil
	case model.DifficultyPerfect:
		return NewPerfectStrategy(s.random, s.logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownDifficulty, difficulty)
	}
}
