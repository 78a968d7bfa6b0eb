package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type DifficultySuite struct {
	suite.Suite
}

func TestDifficultySuite(t *testing.T) {
	suite.Run(t, new(DifficultySuite))
}

func (s *DifficultySuite) TestParseDifficulty() {
	tests := []struct {
		input string
		want  Difficulty
	}{
		{"random", DifficultyRandom},
		{"Easy", DifficultyRandom},
		{"1", DifficultyRandom},
		{" tactical ", DifficultyTactical},
		{"smart", DifficultyTactical},
		{"2", DifficultyTactical},
		{"PERFECT", DifficultyPerfect},
		{"impossible", DifficultyPerfect},
		{"3", DifficultyPerfect},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.input)
		s.Require().NoError(err, tt.input)
		s.Equal(tt.want, got, tt.input)
	}
}

func (s *DifficultySuite) TestParseDifficultyUnknown() {
	for _, input := range []string{"", "4", "grandmaster"} {
		_, err := ParseDifficulty(input)
		s.ErrorIs(err, ErrUnknownDifficulty, input)
	}
}

func (s *DifficultySuite) TestDisplayName() {
	s.Equal("Easy", DifficultyRandom.DisplayName())
	s.Equal("Smart", DifficultyTactical.DisplayName())
	s.Equal("Impossible", DifficultyPerfect.DisplayName())
}
