// Package words implements the ordered word ledger: each user owns a
// strictly ordered list of words, sorted by position with insertion order
// as the tie-break. Every operation takes the acting user's ID and never
// reaches outside that user's partition.
package words

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivanosipov/wordvault/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Append adds a word at the given position. Duplicate positions are
// permitted; List resolves ties by insertion order.
func (s *Service) Append(ctx context.Context, userID string, text string, position int64) (*Word, error) {

	word := &Word{
		UserID:   userID,
		Text:     text,
		Position: position,
	}

	word, err := s.repo.Create(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("error creating word: %w", err)
	}

	return word, nil
}

// List returns the user's entries sorted ascending by position. An empty
// list is an empty slice, not an error.
func (s *Service) List(ctx context.Context, userID string) ([]*Word, error) {

	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing words: %w", err)
	}

	return list, nil
}

// Reorder applies the supplied position updates to the user's entries,
// matching by entry ID. Supplied IDs the user does not own are ignored and
// entries not mentioned keep their position, so a partial payload never
// destroys data. All updates land atomically.
func (s *Service) Reorder(ctx context.Context, userID string, updates []PositionUpdate) error {

	if err := s.repo.UpdatePositions(ctx, userID, updates); err != nil {
		return fmt.Errorf("error reordering words: %w", err)
	}

	return nil
}

// Delete removes exactly one entry at the given position, the
// earliest-inserted when positions are duplicated. A position that exists
// only in another user's list behaves identically to one that does not
// exist at all: common.ErrorNotFound.
func (s *Service) Delete(ctx context.Context, userID string, position int64) error {

	err := s.repo.DeleteByPosition(ctx, userID, position)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting word: %w", err)
	}

	return nil
}
