package bot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcoot/tictactoe-go/internal/model"
)

// restore builds a match at the given position
func restore(t *testing.T, board string) *model.Match {
	t.Helper()
	b, err := model.ParseBoard(board)
	require.NoError(t, err)
	m, err := model.RestoreMatch(b)
	require.NoError(t, err)
	return m
}

// reachableBoards returns every board that can occur mid-game: legal
// marker counts, no completed line and at least one empty cell
func reachableBoards() []model.Board {
	var boards []model.Board
	total := 1
	for range model.BoardSize * model.BoardSize {
		total *= 3
	}
	for code := range total {
		var b model.Board
		for i, c := 0, code; i < model.BoardSize*model.BoardSize; i, c = i+1, c/3 {
			pos := model.PositionFromIndex(i)
			b.Cells[pos.Row][pos.Col] = model.Cell(c % 3)
		}
		if b.IsFull() {
			continue
		}
		if _, err := model.RestoreMatch(b); err != nil {
			continue
		}
		boards = append(boards, b)
	}
	return boards
}

// winningCells returns the cells that would complete a line for player
func winningCells(b model.Board, player model.Cell) []model.Position {
	var cells []model.Position
	for _, pos := range b.OpenCells() {
		next := b
		_ = next.Set(pos, player)
		if next.HasLine(player) {
			cells = append(cells, pos)
		}
	}
	return cells
}
