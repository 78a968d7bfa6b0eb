package bot

import (
	"errors"
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
	"github.com/mcoot/tictactoe-go/internal/model"
)

// PerfectStrategy never loses. It applies the tactical win/block checks, a
// fixed opening on its first move, and then a priority chain of rules.
//
// Rule order after the opening:
//  1. fork threat: holding the center against two or more fork points, play a side
//  2. fork: complete our own double threat
//  3. block fork: occupy the opponent's only fork point, or force them elsewhere
//  4. center
//  5. opposite corner of an opponent corner
//  6. any corner
//  7. any side
//
// Rules 1 and 3 carry guards on the opponent's fork points. Without them the
// chain loses as second mover, e.g. after X corner, O center, X far side.
type PerfectStrategy struct {
	tactical *TacticalStrategy
	fallback *RandomStrategy
	random   random.Random
	logger   *slog.Logger

	opened bool
	rules  []rule
}

// rule proposes candidate cells for the player to move
type rule struct {
	name       string
	candidates func(board *model.Board, me model.Cell) []model.Position
	// inOrder tries candidates one by one, skipping occupied cells,
	// instead of picking one at random
	inOrder bool
}

// NewPerfectStrategy creates a new PerfectStrategy for one match
func NewPerfectStrategy(rnd random.Random, logger *slog.Logger) *PerfectStrategy {
	s := &PerfectStrategy{
		tactical: NewTacticalStrategy(rnd, logger),
		fallback: NewRandomStrategy(rnd, logger),
		random:   rnd,
		logger:   logger,
	}
	s.rules = []rule{
		{name: "fork threat", candidates: forkThreat},
		{name: "fork", candidates: ownForks},
		{name: "block fork", candidates: blockForks},
		{name: "center", candidates: center},
		{name: "opposite corner", candidates: oppositeCorners, inOrder: true},
		{name: "any corner", candidates: emptyCorners},
		{name: "any side", candidates: emptySides},
	}
	return s
}

// Difficulty returns DifficultyPerfect
func (s *PerfectStrategy) Difficulty() model.Difficulty {
	return model.DifficultyPerfect
}

// Play applies the highest priority move available
func (s *PerfectStrategy) Play(match *model.Match) (Move, error) {
	if board := match.Board(); board.IsFull() {
		return Move{}, model.ErrNoLegalMove
	}
	if move, ok, err := s.tactical.playWinOrBlock(match); ok || err != nil {
		return move, err
	}

	if !s.opened {
		s.opened = true
		board := match.Board()
		if name, candidates := opening(&board); len(candidates) > 0 {
			pos := pick(s.random, candidates)
			logDecision(s.logger, name, match.CurrentPlayer(), pos)
			return apply(match, pos)
		}
	}

	for _, r := range s.rules {
		move, ok, err := s.try(match, r)
		if ok || err != nil {
			return move, err
		}
	}

	s.logger.Debug("no rule applies, falling back to random")
	return s.fallback.Play(match)
}

// try applies a rule and reports whether it produced a move
func (s *PerfectStrategy) try(match *model.Match, r rule) (Move, bool, error) {
	board := match.Board()
	candidates := r.candidates(&board, match.CurrentPlayer())
	if len(candidates) == 0 {
		return Move{}, false, nil
	}

	if !r.inOrder {
		pos := pick(s.random, candidates)
		logDecision(s.logger, r.name, match.CurrentPlayer(), pos)
		move, err := apply(match, pos)
		return move, true, err
	}

	mover := match.CurrentPlayer()
	for _, pos := range candidates {
		move, err := apply(match, pos)
		if errors.Is(err, model.ErrSpaceOccupied) {
			s.logger.Debug("candidate occupied", slog.String("rule", r.name), slog.String("position", pos.String()))
			continue
		}
		if err != nil {
			return Move{}, true, err
		}
		logDecision(s.logger, r.name, mover, pos)
		return move, true, nil
	}
	return Move{}, false, nil
}

// opening returns the first-move candidates when the board is empty or holds
// only the opponent's first marker
func opening(board *model.Board) (string, []model.Position) {
	switch board.Count(model.Empty) {
	case 9:
		return "opening corner", model.Corners[:]
	case 8:
	default:
		return "", nil
	}

	if !board.IsEmpty(model.Center) {
		return "corner against center", model.Corners[:]
	}
	for _, corner := range model.Corners {
		if !board.IsEmpty(corner) {
			return "center against corner", []model.Position{model.Center}
		}
	}

	for _, side := range model.Sides {
		if board.IsEmpty(side) {
			continue
		}
		y, x := side.Row, side.Col
		if y == 1 {
			return "answer side", []model.Position{model.Center, {Row: 0, Col: x}, {Row: 2, Col: x}, {Row: 1, Col: model.Flip(x)}}
		}
		return "answer side", []model.Position{model.Center, {Row: y, Col: 0}, {Row: y, Col: 2}, {Row: model.Flip(y), Col: 1}}
	}
	return "", nil
}

// forkTally counts, for every empty cell, the lines through it that hold
// exactly one of the player's markers and two empty cells. A count above one
// marks a fork point. Indexed by Position.Index.
func forkTally(board *model.Board, player model.Cell) [model.BoardSize * model.BoardSize]int {
	var tally [model.BoardSize * model.BoardSize]int
	for line := range board.Lines() {
		if line.Count(player) != 1 || line.Count(model.Empty) != 2 {
			continue
		}
		for _, pos := range line.OpenPositions() {
			tally[pos.Index()]++
		}
	}
	return tally
}

// forkPoints returns the player's fork points in row-major order
func forkPoints(board *model.Board, player model.Cell) []model.Position {
	var points []model.Position
	for i, count := range forkTally(board, player) {
		if count > 1 {
			points = append(points, model.PositionFromIndex(i))
		}
	}
	return points
}

func forkThreat(board *model.Board, me model.Cell) []model.Position {
	if cell, _ := board.Get(model.Center); cell != me {
		return nil
	}
	if len(forkPoints(board, me.Opponent())) < 2 {
		return nil
	}
	return emptySides(board, me)
}

func ownForks(board *model.Board, me model.Cell) []model.Position {
	return forkPoints(board, me)
}

// blockForks occupies a lone opponent fork point. Against several, it prefers
// a move that makes two in a row, provided the forced reply is not itself one
// of the opponent's fork points.
func blockForks(board *model.Board, me model.Cell) []model.Position {
	opponent := me.Opponent()
	points := forkPoints(board, opponent)
	if len(points) <= 1 {
		return points
	}

	oppTally := forkTally(board, opponent)
	var forcing []model.Position
	for _, pos := range board.OpenCells() {
		for line := range board.Lines() {
			if !line.Contains(pos) || line.Count(me) != 1 || line.Count(model.Empty) != 2 {
				continue
			}
			reply := replyCell(line, pos)
			if oppTally[reply.Index()] <= 1 {
				forcing = append(forcing, pos)
				break
			}
		}
	}
	if len(forcing) > 0 {
		return forcing
	}
	return points
}

// replyCell returns the other empty cell of a line holding one marker
func replyCell(line model.Line, played model.Position) model.Position {
	for _, pos := range line.OpenPositions() {
		if pos != played {
			return pos
		}
	}
	return played
}

func center(board *model.Board, _ model.Cell) []model.Position {
	if board.IsEmpty(model.Center) {
		return []model.Position{model.Center}
	}
	return nil
}

// oppositeCorners lists the corner opposite each opponent corner, occupied or not
func oppositeCorners(board *model.Board, me model.Cell) []model.Position {
	var out []model.Position
	for _, corner := range model.Corners {
		if cell, _ := board.Get(corner); cell == me.Opponent() {
			out = append(out, corner.Opposite())
		}
	}
	return out
}

func emptyCorners(board *model.Board, _ model.Cell) []model.Position {
	return emptyOf(board, model.Corners[:])
}

func emptySides(board *model.Board, _ model.Cell) []model.Position {
	return emptyOf(board, model.Sides[:])
}

func emptyOf(board *model.Board, cells []model.Position) []model.Position {
	var out []model.Position
	for _, pos := range cells {
		if board.IsEmpty(pos) {
			out = append(out, pos)
		}
	}
	return out
}
