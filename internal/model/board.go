package model

import (
	"fmt"
	"iter"
	"strings"
)

// BoardSize is the grid dimension
const BoardSize = 3

// Cell is the content of a single board square
type Cell uint8

const (
	Empty Cell = iota
	PlayerA
	PlayerB
)

// String returns the marker drawn for the cell
func (c Cell) String() string {
	switch c {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player's marker, or Empty for Empty
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

// IsPlayer reports whether the cell holds a marker
func (c Cell) IsPlayer() bool {
	return c == PlayerA || c == PlayerB
}

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Named cells used by the strategies
var (
	Center  = Position{Row: 1, Col: 1}
	Corners = [4]Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}
	Sides   = [4]Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}
)

// Flip reflects a row or column index through the center: 0↔2, 1 stays
func Flip(v int) int {
	return BoardSize - 1 - v
}

// Valid returns true if the position is within bounds
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Opposite returns the position reflected through the center
func (p Position) Opposite() Position {
	return Position{Row: Flip(p.Row), Col: Flip(p.Col)}
}

// Index returns the row-major index of the position (0-8)
func (p Position) Index() int {
	return p.Row*BoardSize + p.Col
}

// PositionFromIndex is the inverse of Index
func PositionFromIndex(i int) Position {
	return Position{Row: i / BoardSize, Col: i % BoardSize}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board is the 3x3 grid, indexed Cells[row][col]
type Board struct {
	Cells [BoardSize][BoardSize]Cell
}

// Get returns the cell at the given position
func (b Board) Get(pos Position) (Cell, error) {
	if !pos.Valid() {
		return Empty, fmt.Errorf("%w: %s", ErrOutOfRange, pos)
	}
	return b.Cells[pos.Row][pos.Col], nil
}

// Set overwrites the cell at the given position. Legality is the caller's job.
func (b *Board) Set(pos Position, cell Cell) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: %s", ErrOutOfRange, pos)
	}
	b.Cells[pos.Row][pos.Col] = cell
	return nil
}

// at reads a position known to be valid
func (b Board) at(pos Position) Cell {
	return b.Cells[pos.Row][pos.Col]
}

// IsEmpty returns true if the cell at the given (valid) position is empty
func (b Board) IsEmpty(pos Position) bool {
	return pos.Valid() && b.at(pos) == Empty
}

// OpenCells returns every empty position in row-major order
func (b Board) OpenCells() []Position {
	var open []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Cells[row][col] == Empty {
				open = append(open, Position{Row: row, Col: col})
			}
		}
	}
	return open
}

// IsFull returns true if no cell is empty
func (b Board) IsFull() bool {
	return b.Count(Empty) == 0
}

// Count returns how many cells hold the given value
func (b Board) Count(cell Cell) int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Cells[row][col] == cell {
				count++
			}
		}
	}
	return count
}

// Line is one of the eight winning lines, read from the board at call time
type Line struct {
	Cells     [BoardSize]Cell
	Positions [BoardSize]Position
}

// Count returns how many cells of the line hold the given value
func (l Line) Count(cell Cell) int {
	count := 0
	for _, c := range l.Cells {
		if c == cell {
			count++
		}
	}
	return count
}

// OpenPositions returns the empty positions of the line in line order
func (l Line) OpenPositions() []Position {
	var open []Position
	for i, c := range l.Cells {
		if c == Empty {
			open = append(open, l.Positions[i])
		}
	}
	return open
}

// Contains reports whether the position is part of the line
func (l Line) Contains(pos Position) bool {
	for _, p := range l.Positions {
		if p == pos {
			return true
		}
	}
	return false
}

// CompletedBy returns true if all three cells hold the given marker
func (l Line) CompletedBy(cell Cell) bool {
	return cell.IsPlayer() && l.Count(cell) == BoardSize
}

// linePositions lists rows top-to-bottom, columns left-to-right, then ↘ and ↙
var linePositions = func() [][BoardSize]Position {
	var lines [][BoardSize]Position
	for row := 0; row < BoardSize; row++ {
		lines = append(lines, [BoardSize]Position{{Row: row, Col: 0}, {Row: row, Col: 1}, {Row: row, Col: 2}})
	}
	for col := 0; col < BoardSize; col++ {
		lines = append(lines, [BoardSize]Position{{Row: 0, Col: col}, {Row: 1, Col: col}, {Row: 2, Col: col}})
	}
	lines = append(lines,
		[BoardSize]Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		[BoardSize]Position{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
	)
	return lines
}()

// Lines yields the eight winning lines with their contents at the time
// Lines is called. The sequence can be ranged over any number of times.
func (b Board) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for _, positions := range linePositions {
			line := Line{Positions: positions}
			for i, pos := range positions {
				line.Cells[i] = b.at(pos)
			}
			if !yield(line) {
				return
			}
		}
	}
}

// HasLine returns true if the marker occupies a complete line
func (b Board) HasLine(cell Cell) bool {
	for line := range b.Lines() {
		if line.CompletedBy(cell) {
			return true
		}
	}
	return false
}

// String renders the board as nine row-major characters separated by '/'
// between rows, e.g. "X.O/.X./..O"
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < BoardSize; col++ {
			sb.WriteString(b.Cells[row][col].String())
		}
	}
	return sb.String()
}

// ParseBoard reads the notation produced by String. X and O are case
// insensitive, '.', '-', '_' and digits mark empty cells, and whitespace,
// '/' and '|' are ignored.
func ParseBoard(s string) (Board, error) {
	var board Board
	i := 0
	for _, r := range s {
		var cell Cell
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '/' || r == '|':
			continue
		case r == 'X' || r == 'x':
			cell = PlayerA
		case r == 'O' || r == 'o':
			cell = PlayerB
		case r == '.' || r == '-' || r == '_' || (r >= '1' && r <= '9'):
			cell = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidBoard, r)
		}
		if i >= BoardSize*BoardSize {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrInvalidBoard, BoardSize*BoardSize)
		}
		pos := PositionFromIndex(i)
		board.Cells[pos.Row][pos.Col] = cell
		i++
	}
	if i != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, i, BoardSize*BoardSize)
	}
	return board, nil
}
