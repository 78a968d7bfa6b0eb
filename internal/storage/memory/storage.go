package memory

import (
	"context"
	"sync"

	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Records live only as long as the process.
type Storage struct {
	mu sync.RWMutex

	matches map[model.MatchID]*model.MatchRecord
	order   []model.MatchID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		matches: make(map[model.MatchID]*model.MatchRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveMatch(ctx context.Context, record *model.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.matches[record.ID]; !exists {
		s.order = append(s.order, record.ID)
	}
	s.matches[record.ID] = cloneRecord(record)
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return cloneRecord(record), nil
}

func (s *Storage) ListMatches(ctx context.Context) ([]*model.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]*model.MatchRecord, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, cloneRecord(s.matches[id]))
	}
	return records, nil
}

// cloneRecord copies a record so callers cannot mutate stored state
func cloneRecord(r *model.MatchRecord) *model.MatchRecord {
	cp := *r
	cp.Moves = append([]model.Position(nil), r.Moves...)
	return &cp
}
