package storage

import (
	"context"

	"github.com/mcoot/tictactoe-go/internal/model"
)

// Storage holds the records of matches completed by this process
type Storage interface {
	SaveMatch(ctx context.Context, record *model.MatchRecord) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.MatchRecord, error)
	// ListMatches returns records in the order they were saved
	ListMatches(ctx context.Context) ([]*model.MatchRecord, error)
}
