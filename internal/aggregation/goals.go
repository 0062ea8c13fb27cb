package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/AlexanderJohnD/WealthWise/internal/models"
)

// GoalProgress pairs a goal with its completion percentage.
type GoalProgress struct {
	Goal       models.Goal     `json:"goal"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Progress returns how far a goal is funded, capped at 100%.
func Progress(goal models.Goal) GoalProgress {
	pct := percentOf(goal.Current, goal.Target)
	return GoalProgress{Goal: goal, Percentage: decimal.Min(pct, hundred)}
}

// GoalsProgress computes Progress for each goal in input order.
func GoalsProgress(goals []models.Goal) []GoalProgress {
	progress := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, Progress(g))
	}
	return progress
}
