package bot_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tictactoe-go/internal/dependencies/mocks"
	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/bot"
	"github.com/mcoot/tictactoe-go/internal/testutil"
)

type PerfectStrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	strategy   *bot.PerfectStrategy
}

func TestPerfectStrategySuite(t *testing.T) {
	suite.Run(t, new(PerfectStrategySuite))
}

func (s *PerfectStrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.strategy = bot.NewPerfectStrategy(s.mockRandom, testutil.NopLogger())
}

func (s *PerfectStrategySuite) play(match *model.Match) model.Position {
	move, err := s.strategy.Play(match)
	s.Require().NoError(err)
	return move.Position
}

// Opening tests

func (s *PerfectStrategySuite) TestOpensInCorner() {
	for i, corner := range model.Corners {
		s.SetupTest()
		s.mockRandom.QueueIntn(i)
		s.Equal(corner, s.play(model.NewMatch()))
	}
}

func (s *PerfectStrategySuite) TestAnswersCenterWithCorner() {
	for i, corner := range model.Corners {
		s.SetupTest()
		s.mockRandom.QueueIntn(i)
		match := restore(s.T(), ".../.X./...")
		s.Equal(corner, s.play(match))
		s.Equal([]int{4}, s.mockRandom.Calls)
	}
}

func (s *PerfectStrategySuite) TestAnswersCornerWithCenter() {
	for _, board := range []string{"X../.../...", "..X/.../...", ".../.../X..", ".../.../..X"} {
		s.SetupTest()
		s.Equal(model.Center, s.play(restore(s.T(), board)), board)
	}
}

func (s *PerfectStrategySuite) TestAnswersSide() {
	tests := []struct {
		board string
		want  []model.Position
	}{
		{".X./.../...", []model.Position{model.Center, {Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 1}}},
		{".../X../...", []model.Position{model.Center, {Row: 0, Col: 0}, {Row: 2, Col: 0}, {Row: 1, Col: 2}}},
		{".../..X/...", []model.Position{model.Center, {Row: 0, Col: 2}, {Row: 2, Col: 2}, {Row: 1, Col: 0}}},
		{".../.../.X.", []model.Position{model.Center, {Row: 2, Col: 0}, {Row: 2, Col: 2}, {Row: 0, Col: 1}}},
	}
	for _, tt := range tests {
		for i, want := range tt.want {
			s.SetupTest()
			s.mockRandom.QueueIntn(i)
			s.Equal(want, s.play(restore(s.T(), tt.board)), tt.board)
			s.Equal([]int{4}, s.mockRandom.Calls)
		}
	}
}

func (s *PerfectStrategySuite) TestOpeningOnlyOnFirstMove() {
	match := model.NewMatch()
	s.mockRandom.QueueIntn(0)
	s.Equal(model.Position{Row: 0, Col: 0}, s.play(match))

	// A fresh match reusing the strategy no longer opens in a corner
	match = model.NewMatch()
	s.Equal(model.Center, s.play(match))
}

// Steady state tests

func (s *PerfectStrategySuite) TestTakesWin() {
	// X at (0,0),(0,1) and O at (1,1) leaves O to move in real play, so O's
	// reply at (2,2) is added to put the win in front of X
	match := model.NewMatch()
	for _, pos := range []model.Position{
		{Row: 0, Col: 0}, model.Center, {Row: 0, Col: 1}, {Row: 2, Col: 2},
	} {
		_, err := match.ApplyMove(pos)
		s.Require().NoError(err)
	}
	s.Equal(model.Position{Row: 0, Col: 2}, s.play(match))
	s.True(match.Won())
}

func (s *PerfectStrategySuite) TestBlocks() {
	match := restore(s.T(), "XX./.O./...")
	s.Equal(model.Position{Row: 0, Col: 2}, s.play(match))
	s.False(match.Won())
}

func (s *PerfectStrategySuite) TestTakesOppositeCorner() {
	// O holds the center and X the corner (0,0); nothing more urgent is on
	// the board
	match := restore(s.T(), "XOX/XO./OX.")
	s.Equal(model.Position{Row: 2, Col: 2}, s.play(match))
	s.Equal([]int{1}, s.mockRandom.Calls)
}

func (s *PerfectStrategySuite) TestSkipsOccupiedOppositeCorner() {
	// (2,2) is taken, so any empty corner is played: (0,2) or (2,0)
	match := restore(s.T(), "X../.OX/.XO")
	s.mockRandom.QueueIntn(1)
	s.Equal(model.Position{Row: 2, Col: 0}, s.play(match))
	s.Equal([]int{2}, s.mockRandom.Calls)
}

func (s *PerfectStrategySuite) TestPlaysOwnFork() {
	// (0,0) completes two open lines for X at once
	match := restore(s.T(), ".../X.O/.OX")
	s.Equal(model.Position{Row: 0, Col: 0}, s.play(match))
	s.Equal([]int{1}, s.mockRandom.Calls)
}

func (s *PerfectStrategySuite) TestForkThreatFromCenter() {
	// X holds opposite corners around O's center, threatening forks at
	// (0,2) and (2,0); O must make a threat from a side
	match := restore(s.T(), "X../.O./..X")
	s.mockRandom.QueueIntn(2)
	s.Equal(model.Position{Row: 1, Col: 2}, s.play(match))
	s.Equal([]int{4}, s.mockRandom.Calls)
}

func (s *PerfectStrategySuite) TestBlocksForksByForcing() {
	// X has fork points at (0,0), (1,1) and (1,2). Only (1,1) forces a reply
	// that is not itself an X fork point.
	match := restore(s.T(), ".../X../.OX")
	s.Equal(model.Center, s.play(match))
	s.Equal([]int{1}, s.mockRandom.Calls)
}

func (s *PerfectStrategySuite) TestBlocksSingleForkPoint() {
	// X at (0,0) and (1,2) share the fork point (0,2). O holds the center
	// but a side move here would let X fork.
	match := restore(s.T(), "X../.OX/...")
	s.Equal(model.Position{Row: 0, Col: 2}, s.play(match))
	s.Equal([]int{1}, s.mockRandom.Calls)
}

func (s *PerfectStrategySuite) TestFullBoard() {
	match := restore(s.T(), "XOX/XOO/OXX")
	_, err := s.strategy.Play(match)
	s.ErrorIs(err, model.ErrNoLegalMove)
}

func (s *PerfectStrategySuite) TestDifficulty() {
	s.Equal(model.DifficultyPerfect, s.strategy.Difficulty())
}

// replayRandom replays a fixed prefix of choices, answers 0 beyond it, and
// records every call so the caller can enumerate the next branch
type replayRandom struct {
	script []int
	made   []int
	widths []int
}

func (r *replayRandom) Intn(n int) int {
	v := 0
	if len(r.made) < len(r.script) {
		v = r.script[len(r.made)]
	}
	r.made = append(r.made, v)
	r.widths = append(r.widths, n)
	return v
}

var _ random.Random = (*replayRandom)(nil)

// playOut runs one game: the perfect strategy plays side, the opponent picks
// an open cell using the same random source
func (s *PerfectStrategySuite) playOut(rnd *replayRandom, side model.Cell) *model.Match {
	strategy := bot.NewPerfectStrategy(rnd, testutil.NopLogger())
	match := model.NewMatch()
	for {
		var result model.MoveResult
		if match.CurrentPlayer() == side {
			move, err := strategy.Play(match)
			s.Require().NoError(err, match.History())
			result = move.Result
		} else {
			board := match.Board()
			open := board.OpenCells()
			var err error
			result, err = match.ApplyMove(open[rnd.Intn(len(open))])
			s.Require().NoError(err)
		}
		if result == model.GameOver {
			return match
		}
	}
}

// TestNeverLoses enumerates every sequence of opponent replies, and every
// random choice the strategy itself makes, as first and as second mover
func (s *PerfectStrategySuite) TestNeverLoses() {
	for _, side := range []model.Cell{model.PlayerA, model.PlayerB} {
		var script []int
		games := 0
		for {
			rnd := &replayRandom{script: script}
			match := s.playOut(rnd, side)
			games++

			if match.Won() {
				s.Require().Equal(side, match.Outcome().Winner, "lost as %s: %v", side, match.History())
			}

			i := len(rnd.made) - 1
			for i >= 0 && rnd.made[i]+1 >= rnd.widths[i] {
				i--
			}
			if i < 0 {
				break
			}
			script = append(slices.Clone(rnd.made[:i]), rnd.made[i]+1)
		}
		s.Greater(games, 100, side.String())
	}
}

func (s *PerfectStrategySuite) TestDrawsAgainstItself() {
	rnd := random.NewWithSeed(1, 2)
	logger := testutil.NopLogger()
	for range 100 {
		a := bot.NewPerfectStrategy(rnd, logger)
		b := bot.NewPerfectStrategy(rnd, logger)
		match := model.NewMatch()
		for !match.Over() {
			strategy := a
			if match.CurrentPlayer() == model.PlayerB {
				strategy = b
			}
			_, err := strategy.Play(match)
			s.Require().NoError(err)
		}
		s.Equal(model.Outcome{Status: model.StatusDraw}, match.Outcome())
	}
}
