package words

import (
	"context"
)

// Repository persists per-user word lists. Every method is scoped to a
// single user's partition: no query compares keys before restricting the
// search to that user, so entries of other users are unreachable by
// construction.
type Repository interface {
	Create(ctx context.Context, word *Word) (*Word, error)

	// ListByUser returns the user's entries sorted ascending by position,
	// ties broken by insertion order.
	ListByUser(ctx context.Context, userID string) ([]*Word, error)

	// UpdatePositions applies all updates atomically. Updates whose ID does
	// not belong to the user are ignored.
	UpdatePositions(ctx context.Context, userID string, updates []PositionUpdate) error

	// DeleteByPosition removes the earliest-inserted entry at the given
	// position, or fails with common.ErrorNotFound if the user has none.
	DeleteByPosition(ctx context.Context, userID string, position int64) error
}
