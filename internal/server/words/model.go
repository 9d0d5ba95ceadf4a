package words

import "time"

// Word is the persistence model for one entry of a user's word list.
// The ID is assigned by the store in insertion order, which makes it the
// natural tie-break between entries sharing a position.
type Word struct {
	ID        int64
	UserID    string
	Text      string
	Position  int64
	CreatedAt time.Time
}

// PositionUpdate carries one (entry, new position) pair for Reorder.
type PositionUpdate struct {
	ID       int64
	Position int64
}
