package words

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ivanosipov/wordvault/internal/common"
)

// InMemoryRepository keeps word lists in per-user slices guarded by a
// mutex. IDs come from a monotonic counter, preserving insertion order
// the same way the bigserial column does in PostgreSQL.
type InMemoryRepository struct {
	mu     sync.RWMutex
	byUser map[string][]*Word
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byUser: make(map[string][]*Word)}
}

func (r *InMemoryRepository) Create(ctx context.Context, word *Word) (*Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++

	stored := *word
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()

	r.byUser[stored.UserID] = append(r.byUser[stored.UserID], &stored)

	copied := stored
	return &copied, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Word, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.byUser[userID]

	result := make([]*Word, 0, len(list))
	for _, w := range list {
		copied := *w
		result = append(result, &copied)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Position != result[j].Position {
			return result[i].Position < result[j].Position
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (r *InMemoryRepository) UpdatePositions(ctx context.Context, userID string, updates []PositionUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.byUser[userID]

	byID := make(map[int64]*Word, len(list))
	for _, w := range list {
		byID[w.ID] = w
	}

	// entries not owned by the user are silently skipped, same as the
	// scoped SQL UPDATE matching zero rows
	for _, u := range updates {
		if w, ok := byID[u.ID]; ok {
			w.Position = u.Position
		}
	}

	return nil
}

func (r *InMemoryRepository) DeleteByPosition(ctx context.Context, userID string, position int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.byUser[userID]

	victim := -1
	for i, w := range list {
		if w.Position != position {
			continue
		}
		if victim == -1 || w.ID < list[victim].ID {
			victim = i
		}
	}

	if victim == -1 {
		return common.ErrorNotFound
	}

	r.byUser[userID] = append(list[:victim], list[victim+1:]...)
	return nil
}
