package model

import "fmt"

// MoveResult reports whether an accepted move ended the match
type MoveResult int

const (
	Continuing MoveResult = iota
	GameOver
)

func (r MoveResult) String() string {
	if r == GameOver {
		return "game_over"
	}
	return "continuing"
}

// Status is the coarse state of a match
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// Outcome is what the presentation layer shows after each move
type Outcome struct {
	Status Status
	Winner Cell // Empty unless Status is StatusWin
}

func (o Outcome) String() string {
	switch o.Status {
	case StatusWin:
		return fmt.Sprintf("%s wins", o.Winner)
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}

// Match is the state of a single game. It is only mutated through ApplyMove.
type Match struct {
	board   Board
	current Cell
	won     bool
	history []Position
}

// NewMatch returns an empty match with PlayerA to move
func NewMatch() *Match {
	return &Match{current: PlayerA}
}

// RestoreMatch builds a match at an arbitrary position. The player to move
// is derived from the marker counts; positions that could not arise from
// legal play, or that already contain a completed line, are rejected.
func RestoreMatch(board Board) (*Match, error) {
	a, b := board.Count(PlayerA), board.Count(PlayerB)
	var current Cell
	switch a - b {
	case 0:
		current = PlayerA
	case 1:
		current = PlayerB
	default:
		return nil, fmt.Errorf("%w: %d X markers and %d O markers", ErrInvalidBoard, a, b)
	}
	if board.HasLine(PlayerA) || board.HasLine(PlayerB) {
		return nil, fmt.Errorf("%w: position is already won", ErrInvalidBoard)
	}
	return &Match{board: board, current: current}, nil
}

// Board returns a copy of the board
func (m *Match) Board() Board {
	return m.board
}

// CurrentPlayer returns the player whose turn it is. After the match ends it
// identifies the player who made the final move.
func (m *Match) CurrentPlayer() Cell {
	return m.current
}

// NextPlayer returns the player who moves after the current one
func (m *Match) NextPlayer() Cell {
	return m.current.Opponent()
}

// Won returns true once the most recent mover completed a line
func (m *Match) Won() bool {
	return m.won
}

// Over returns true if the match has been won or the board is full
func (m *Match) Over() bool {
	return m.won || m.board.IsFull()
}

// Moves returns the number of moves applied since NewMatch or RestoreMatch
func (m *Match) Moves() int {
	return len(m.history)
}

// History returns the positions played in order
func (m *Match) History() []Position {
	out := make([]Position, len(m.history))
	copy(out, m.history)
	return out
}

// Outcome returns the current status of the match
func (m *Match) Outcome() Outcome {
	switch {
	case m.won:
		return Outcome{Status: StatusWin, Winner: m.current}
	case m.board.IsFull():
		return Outcome{Status: StatusDraw}
	default:
		return Outcome{Status: StatusInProgress}
	}
}

// ApplyMove places the current player's marker at pos.
// The turn only advances when the match continues.
func (m *Match) ApplyMove(pos Position) (MoveResult, error) {
	if !pos.Valid() {
		return Continuing, fmt.Errorf("%w: %s", ErrOutOfRange, pos)
	}
	if m.Over() {
		return GameOver, ErrMatchOver
	}
	if !m.board.IsEmpty(pos) {
		return Continuing, fmt.Errorf("%w: %s", ErrSpaceOccupied, pos)
	}

	mover := m.current
	if err := m.board.Set(pos, mover); err != nil {
		return Continuing, err
	}
	m.history = append(m.history, pos)

	// Only the mover can have just completed a line
	if m.board.HasLine(mover) {
		m.won = true
		return GameOver, nil
	}

	if m.board.IsFull() {
		return GameOver, nil
	}

	m.current = m.NextPlayer()
	return Continuing, nil
}
