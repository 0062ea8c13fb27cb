package goals

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/AlexanderJohnD/WealthWise/internal/config"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("file", func(t *testing.T) {
		repo, closeRepo, err := Open(ctx, &config.Config{GoalStore: config.GoalStoreFile, GoalsDir: t.TempDir()})
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		defer closeRepo()
		if _, ok := repo.(*FileRepository); !ok {
			t.Errorf("expected *FileRepository, got %T", repo)
		}
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		repo, closeRepo, err := Open(ctx, &config.Config{GoalStore: config.GoalStoreRedis, RedisAddr: mr.Addr()})
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		defer closeRepo()

		if err := repo.Insert(ctx, newGoal("Vacation", "500", "0")); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if !mr.Exists(Slot) {
			t.Errorf("expected goals under %q", Slot)
		}
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		if _, _, err := Open(ctx, &config.Config{GoalStore: config.GoalStoreRedis, RedisAddr: addr}); err == nil {
			t.Fatal("expected an error for an unreachable server")
		}
	})

	t.Run("unknown store", func(t *testing.T) {
		if _, _, err := Open(ctx, &config.Config{GoalStore: "s3"}); err == nil {
			t.Fatal("expected an error for an unknown store")
		}
	})
}
