package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventMatchStarted  EventType = "match_started"
	EventMoveApplied   EventType = "move_applied"
	EventMatchComplete EventType = "match_complete"
)

// Event is sent to the presentation layer as a match progresses. Board is a
// copy; observers have no write access to the match.
type Event struct {
	Type      EventType
	Timestamp time.Time
	MatchID   MatchID
	Player    Cell     // The mover for EventMoveApplied
	Position  Position // Only set for EventMoveApplied
	Board     Board
	Outcome   Outcome
}
