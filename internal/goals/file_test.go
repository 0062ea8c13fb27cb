package goals

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlexanderJohnD/WealthWise/internal/models"
	"github.com/AlexanderJohnD/WealthWise/internal/uuid"
)

func newGoal(title, target, current string) *models.Goal {
	return &models.Goal{
		Title:   title,
		Target:  decimal.RequireFromString(target),
		Current: decimal.RequireFromString(current),
	}
}

func TestFileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("empty_slot_lists_nothing", func(t *testing.T) {
		repo := NewFileRepository(t.TempDir())

		goals, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if goals == nil || len(goals) != 0 {
			t.Errorf("expected empty slice, got %v", goals)
		}
	})

	t.Run("insert_assigns_identity_and_persists", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewFileRepository(dir)
		fixed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		repo.now = func() time.Time { return fixed }

		goal := newGoal("Emergency Fund", "10000", "2500")
		if err := repo.Insert(ctx, goal); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !goal.Created.Equal(fixed) {
			t.Errorf("expected created %v, got %v", fixed, goal.Created)
		}
		if embedded, ok := uuid.Time(goal.ID); !ok || !embedded.Equal(fixed) {
			t.Errorf("expected time-based ID for %v, got %q", fixed, goal.ID)
		}

		if _, err := os.Stat(filepath.Join(dir, "wealthwise-goals.json")); err != nil {
			t.Fatalf("expected goal file to exist: %v", err)
		}

		reopened := NewFileRepository(dir)
		goals, err := reopened.ListAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(goals) != 1 {
			t.Fatalf("expected 1 goal, got %d", len(goals))
		}
		if goals[0].Title != "Emergency Fund" || !goals[0].Target.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("unexpected goal %+v", goals[0])
		}
	})

	t.Run("keeps_insertion_order", func(t *testing.T) {
		repo := NewFileRepository(t.TempDir())
		for _, title := range []string{"Car", "House", "Trip"} {
			if err := repo.Insert(ctx, newGoal(title, "100", "0")); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		goals, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(goals) != 3 || goals[0].Title != "Car" || goals[2].Title != "Trip" {
			t.Errorf("expected [Car House Trip], got %+v", goals)
		}
	})

	t.Run("preserves_supplied_id", func(t *testing.T) {
		repo := NewFileRepository(t.TempDir())
		goal := newGoal("Kept", "100", "10")
		goal.ID = "client-123"

		if err := repo.Insert(ctx, goal); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if goal.ID != "client-123" {
			t.Errorf("expected supplied ID to be kept, got %q", goal.ID)
		}
	})

	t.Run("corrupt_file_is_storage_error", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "wealthwise-goals.json"), []byte("{not json"), 0o600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		repo := NewFileRepository(dir)

		_, err := repo.ListAll(ctx)
		assertStorageError(t, err)

		err = repo.Insert(ctx, newGoal("Lost", "100", "0"))
		assertStorageError(t, err)
	})

	t.Run("missing_directory_is_storage_error", func(t *testing.T) {
		repo := NewFileRepository(filepath.Join(t.TempDir(), "does", "not", "exist"))

		err := repo.Insert(ctx, newGoal("Nowhere", "100", "0"))
		assertStorageError(t, err)
	})
}
