package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tictactoe-go/internal/dependencies/mocks"
	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/bot"
	"github.com/mcoot/tictactoe-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	service    *bot.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.service = bot.NewService(s.mockRandom, testutil.NopLogger())
}

func (s *ServiceSuite) TestNewStrategyForEachDifficulty() {
	for _, d := range model.ValidDifficulties() {
		strategy, err := s.service.NewStrategy(d)
		s.Require().NoError(err)
		s.Equal(d, strategy.Difficulty())
	}
}

func (s *ServiceSuite) TestNewStrategyTypes() {
	random, err := s.service.NewStrategy(model.DifficultyRandom)
	s.Require().NoError(err)
	s.IsType(&bot.RandomStrategy{}, random)

	tactical, err := s.service.NewStrategy(model.DifficultyTactical)
	s.Require().NoError(err)
	s.IsType(&bot.TacticalStrategy{}, tactical)

	perfect, err := s.service.NewStrategy(model.DifficultyPerfect)
	s.Require().NoError(err)
	s.IsType(&bot.PerfectStrategy{}, perfect)
}

func (s *ServiceSuite) TestNewStrategyUnknownDifficulty() {
	_, err := s.service.NewStrategy(model.Difficulty("grandmaster"))
	s.ErrorIs(err, model.ErrUnknownDifficulty)
}

func (s *ServiceSuite) TestNewStrategyIsFresh() {
	// A used perfect strategy has already opened; a new one opens again
	first, err := s.service.NewStrategy(model.DifficultyPerfect)
	s.Require().NoError(err)
	s.mockRandom.QueueIntn(3)
	move, err := first.Play(model.NewMatch())
	s.Require().NoError(err)
	s.Equal(model.Position{Row: 2, Col: 2}, move.Position)

	second, err := s.service.NewStrategy(model.DifficultyPerfect)
	s.Require().NoError(err)
	s.mockRandom.QueueIntn(1)
	move, err = second.Play(model.NewMatch())
	s.Require().NoError(err)
	s.Equal(model.Position{Row: 0, Col: 2}, move.Position)
}
