package words

import (
	"context"
	"errors"
	"testing"

	"github.com/ivanosipov/wordvault/internal/common"
)

func collect(t *testing.T, s *Service, userID string) []struct {
	Text     string
	Position int64
} {
	t.Helper()
	list, err := s.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	out := make([]struct {
		Text     string
		Position int64
	}, 0, len(list))
	for _, w := range list {
		out = append(out, struct {
			Text     string
			Position int64
		}{w.Text, w.Position})
	}
	return out
}

func TestAppendAndList_SortedByPosition(t *testing.T) {
	s := NewService(NewInMemoryRepository())
	ctx := context.Background()

	for _, w := range []struct {
		text string
		pos  int64
	}{
		{"cherry", 30},
		{"apple", 10},
		{"banana", 20},
	} {
		if _, err := s.Append(ctx, "u1", w.text, w.pos); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}

	got := collect(t, s, "u1")
	want := []string{"apple", "banana", "cherry"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, text := range want {
		if got[i].Text != text {
			t.Fatalf("entry %d: got %q want %q", i, got[i].Text, text)
		}
	}
}

func TestAppend_DuplicatePositions_InsertionOrderTieBreak(t *testing.T) {
	s := NewService(NewInMemoryRepository())
	ctx := context.Background()

	for _, text := range []string{"first", "second", "third"} {
		if _, err := s.Append(ctx, "u1", text, 5); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}

	got := collect(t, s, "u1")
	want := []string{"first", "second", "third"}
	for i, text := range want {
		if got[i].Text != text {
			t.Fatalf("tie-break broken at %d: got %q want %q", i, got[i].Text, text)
		}
	}
}

func TestList_EmptyForNewUser(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	list, err := s.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(list))
	}
}

func TestReorder_MatchAndUpdate(t *testing.T) {
	s := NewService(NewInMemoryRepository())
	ctx := context.Background()

	apple, err := s.Append(ctx, "u1", "apple", 1)
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	banana, err := s.Append(ctx, "u1", "banana", 2)
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}

	// swap positions; also mention an ID that does not exist
	err = s.Reorder(ctx, "u1", []PositionUpdate{
		{ID: apple.ID, Position: 2},
		{ID: banana.ID, Position: 1},
		{ID: 99999, Position: 7},
	})
	if err != nil {
		t.Fatalf("Reorder error: %v", err)
	}

	got := collect(t, s, "u1")
	if got[0].Text != "banana" || got[1].Text != "apple" {
		t.Fatalf("unexpected order after reorder: %+v", got)
	}
}

func TestReorder_DoesNotDropUnmentionedEntries(t *testing.T) {
	s := NewService(NewInMemoryRepository())
	ctx := context.Background()

	if _, err := s.Append(ctx, "u1", "keepme", 1); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	banana, err := s.Append(ctx, "u1", "banana", 2)
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}

	if err := s.Reorder(ctx, "u1", []PositionUpdate{{ID: banana.ID, Position: 0}}); err != nil {
		t.Fatalf("Reorder error: %v", err)
	}

	got := collect(t, s, "u1")
	if len(got) != 2 {
		t.Fatalf("reorder dropped entries: %+v", got)
	}
	if got[0].Text != "banana" || got[1].Text != "keepme" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestReorder_CannotTouchAnotherUsersEntries(t *testing.T) {
	s := NewService(NewInMemoryRepository())
	ctx := context.Background()

	theirs, err := s.Append(ctx, "u2", "secret", 1)
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}

	if err := s.Reorder(ctx, "u1", []PositionUpdate{{ID: theirs.ID, Position: 42}}); err != nil {
		t.Fatalf("Reorder error: %v", err)
	}

	got := collect(t, s, "u2")
	if got[0].Position != 1 {
		t.Fatalf("another user's entry was mutated: %+v", got)
	}
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	s := NewService(NewInMemoryRepository())
	ctx := context.Background()

	if _, err := s.Append(ctx, "u1", "first", 5); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if _, err := s.Append(ctx, "u1", "second", 5); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	if err := s.Delete(ctx, "u1", 5); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	got := collect(t, s, "u1")
	if len(got) != 1 || got[0].Text != "second" {
		t.Fatalf("expected earliest-inserted entry removed, got %+v", got)
	}
}

func TestDelete_NotFound(t *testing.T) {
	s := NewService(NewInMemoryRepository())
	ctx := context.Background()

	if _, err := s.Append(ctx, "u1", "apple", 1); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	if err := s.Delete(ctx, "u1", 9); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}

	// caller's list unchanged
	got := collect(t, s, "u1")
	if len(got) != 1 {
		t.Fatalf("failed delete mutated the list: %+v", got)
	}
}

func TestDelete_OtherUsersEntryLooksNotFound(t *testing.T) {
	s := NewService(NewInMemoryRepository())
	ctx := context.Background()

	if _, err := s.Append(ctx, "u2", "secret", 7); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	errOther := s.Delete(ctx, "u1", 7)
	errMissing := s.Delete(ctx, "u1", 8)

	if !errors.Is(errOther, common.ErrorNotFound) || !errors.Is(errMissing, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound for both, got %v / %v", errOther, errMissing)
	}
	if errOther.Error() != errMissing.Error() {
		t.Fatalf("cross-user delete distinguishable from missing key: %q vs %q", errOther, errMissing)
	}

	// other user's entry untouched
	got := collect(t, s, "u2")
	if len(got) != 1 {
		t.Fatalf("another user's entry was deleted: %+v", got)
	}
}
