package model

import "time"

// MatchID uniquely identifies a played match
type MatchID string

// SeatKind distinguishes human seats from automated ones
type SeatKind string

const (
	SeatHuman SeatKind = "human"
	SeatBot   SeatKind = "bot"
)

// Seat describes who played one side of a match
type Seat struct {
	Label      string
	Kind       SeatKind
	Difficulty Difficulty // Empty for humans
}

// MatchRecord is a lightweight record of a completed match
type MatchRecord struct {
	ID          MatchID
	PlayerA     Seat
	PlayerB     Seat
	Outcome     Outcome
	Moves       []Position
	StartedAt   time.Time
	CompletedAt time.Time
}

// WinnerSeat returns the seat that won, or nil for a draw
func (r *MatchRecord) WinnerSeat() *Seat {
	switch {
	case r.Outcome.Status != StatusWin:
		return nil
	case r.Outcome.Winner == PlayerA:
		return &r.PlayerA
	default:
		return &r.PlayerB
	}
}

// Tally aggregates match results by seat label
type Tally struct {
	Matches int
	Draws   int
	Wins    map[string]int
}

// NewTally returns an empty tally
func NewTally() Tally {
	return Tally{Wins: make(map[string]int)}
}

// Add counts one completed match
func (t *Tally) Add(r *MatchRecord) {
	if t.Wins == nil {
		t.Wins = make(map[string]int)
	}
	t.Matches++
	if seat := r.WinnerSeat(); seat != nil {
		t.Wins[seat.Label]++
		return
	}
	if r.Outcome.Status == StatusDraw {
		t.Draws++
	}
}
