// Package goals persists savings goals outside the relational store. Goals
// are kept as one JSON array under a fixed slot name, either in a local file
// or in Redis.
package goals

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AlexanderJohnD/WealthWise/internal/models"
	"github.com/AlexanderJohnD/WealthWise/internal/uuid"
)

// Slot is the fixed name the goal array is stored under.
const Slot = "wealthwise-goals"

// Repository stores goals with the same insert/list contract as the record
// store.
type Repository interface {
	// Insert appends goal, assigning ID and Created when they are empty.
	Insert(ctx context.Context, goal *models.Goal) error
	// ListAll returns all goals in insertion order; none yields an empty slice.
	ListAll(ctx context.Context) ([]models.Goal, error)
}

// stamp fills in the client-side identity of a new goal.
func stamp(goal *models.Goal, now time.Time) {
	if goal.Created.IsZero() {
		goal.Created = now.UTC()
	}
	if goal.ID == "" {
		goal.ID = uuid.NewAt(goal.Created)
	}
}

func decodeSlot(data []byte) ([]models.Goal, error) {
	goals := []models.Goal{}
	if len(data) == 0 {
		return goals, nil
	}
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}
