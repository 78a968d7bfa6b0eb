package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/tictactoe-go/internal/dependencies/clock"
	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/bot"
	"github.com/mcoot/tictactoe-go/internal/storage"
)

// MoveSource supplies moves for a human seat. NextMove blocks until the
// player has chosen; the controller re-validates the returned position.
type MoveSource interface {
	NextMove(ctx context.Context, board model.Board, player model.Cell) (model.Position, error)
}

// Observer receives events as a match progresses
type Observer interface {
	OnEvent(event model.Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(event model.Event)

// OnEvent calls f(event)
func (f ObserverFunc) OnEvent(event model.Event) {
	f(event)
}

// Player occupies one side of a match. Exactly one of Strategy and Source is set.
type Player struct {
	Seat     model.Seat
	Strategy bot.Strategy
	Source   MoveSource
}

// HumanPlayer returns a seat whose moves come from source
func HumanPlayer(label string, source MoveSource) Player {
	return Player{
		Seat:   model.Seat{Label: label, Kind: model.SeatHuman},
		Source: source,
	}
}

// Controller runs matches to completion and keeps their records
type Controller struct {
	storage    storage.Storage
	botService *bot.Service
	clock      clock.Clock
	logger     *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	botService *bot.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:    storage,
		botService: botService,
		clock:      clock,
		logger:     logger.With(slog.String("component", "game")),
	}
}

// NewBotPlayer returns a seat played by a fresh strategy. An empty label
// defaults to the difficulty's display name.
func (c *Controller) NewBotPlayer(difficulty model.Difficulty, label string) (Player, error) {
	strategy, err := c.botService.NewStrategy(difficulty)
	if err != nil {
		return Player{}, err
	}
	if label == "" {
		label = difficulty.DisplayName()
	}
	return Player{
		Seat:     model.Seat{Label: label, Kind: model.SeatBot, Difficulty: difficulty},
		Strategy: strategy,
	}, nil
}

// PlayMatch plays one match between playerA (X, moves first) and playerB (O).
// Moves are requested one at a time. Errors from a seat are returned as soon
// as they happen, except ErrNoLegalMove which ends the match as a draw.
func (c *Controller) PlayMatch(ctx context.Context, playerA, playerB Player, observer Observer) (*model.MatchRecord, error) {
	for _, p := range []Player{playerA, playerB} {
		if (p.Strategy == nil) == (p.Source == nil) {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidSeat, p.Seat.Label)
		}
	}
	if observer == nil {
		observer = ObserverFunc(func(model.Event) {})
	}

	record := &model.MatchRecord{
		ID:        model.MatchID(uuid.NewString()),
		PlayerA:   playerA.Seat,
		PlayerB:   playerB.Seat,
		StartedAt: c.clock.Now(),
	}
	logger := c.logger.With(slog.String("match_id", string(record.ID)))
	match := model.NewMatch()

	logger.Info("match started",
		slog.String("player_a", playerA.Seat.Label),
		slog.String("player_b", playerB.Seat.Label),
	)
	observer.OnEvent(c.event(model.EventMatchStarted, record.ID, match))

	record.Outcome = model.Outcome{Status: model.StatusInProgress}
	for record.Outcome.Status == model.StatusInProgress {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mover := match.CurrentPlayer()
		player := playerA
		if mover == model.PlayerB {
			player = playerB
		}

		pos, result, err := c.takeTurn(ctx, match, player)
		if errors.Is(err, model.ErrNoLegalMove) {
			logger.Warn("no legal move, declaring draw", slog.String("player", player.Seat.Label))
			record.Outcome = model.Outcome{Status: model.StatusDraw}
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s (%s): %w", player.Seat.Label, mover, err)
		}

		ev := c.event(model.EventMoveApplied, record.ID, match)
		ev.Player = mover
		ev.Position = pos
		observer.OnEvent(ev)

		if result == model.GameOver {
			record.Outcome = match.Outcome()
		}
	}

	record.Moves = match.History()
	record.CompletedAt = c.clock.Now()

	if err := c.storage.SaveMatch(ctx, record); err != nil {
		logger.Error("failed to save match", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("match completed",
		slog.String("outcome", record.Outcome.String()),
		slog.Int("moves", len(record.Moves)),
	)
	observer.OnEvent(c.event(model.EventMatchComplete, record.ID, match))

	return record, nil
}

// takeTurn gets one move from the seat and applies it
func (c *Controller) takeTurn(ctx context.Context, match *model.Match, player Player) (model.Position, model.MoveResult, error) {
	if player.Strategy != nil {
		move, err := player.Strategy.Play(match)
		return move.Position, move.Result, err
	}

	pos, err := player.Source.NextMove(ctx, match.Board(), match.CurrentPlayer())
	if err != nil {
		return pos, model.Continuing, err
	}
	result, err := match.ApplyMove(pos)
	return pos, result, err
}

func (c *Controller) event(eventType model.EventType, id model.MatchID, match *model.Match) model.Event {
	return model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		MatchID:   id,
		Board:     match.Board(),
		Outcome:   match.Outcome(),
	}
}

// GetMatch retrieves a completed match by ID
func (c *Controller) GetMatch(ctx context.Context, id model.MatchID) (*model.MatchRecord, error) {
	return c.storage.GetMatch(ctx, id)
}

// Tally aggregates every match completed by this process
func (c *Controller) Tally(ctx context.Context) (model.Tally, error) {
	records, err := c.storage.ListMatches(ctx)
	if err != nil {
		return model.Tally{}, err
	}
	tally := model.NewTally()
	for _, r := range records {
		tally.Add(r)
	}
	return tally, nil
}
