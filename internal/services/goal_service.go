package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/goals"
	"github.com/AlexanderJohnD/WealthWise/internal/models"
)

type goalService struct {
	repo goals.Repository
}

// NewGoalService creates a new GoalServicer over repo.
func NewGoalService(repo goals.Repository) GoalServicer {
	return &goalService{repo: repo}
}

func (s *goalService) ListGoals(ctx context.Context) ([]models.Goal, error) {
	return s.repo.ListAll(ctx)
}

// CreateGoal stores a new goal. A nil current starts the goal at zero.
func (s *goalService) CreateGoal(ctx context.Context, title string, target decimal.Decimal, current *decimal.Decimal) (*models.Goal, error) {
	title = strings.TrimSpace(title)
	saved := decimal.Zero
	if current != nil {
		saved = *current
	}

	switch {
	case title == "":
		return nil, apperrors.Validation("goal title is required")
	case !target.IsPositive():
		return nil, apperrors.Validation("target amount must be positive")
	case saved.IsNegative():
		return nil, apperrors.Validation("current amount cannot be negative")
	case saved.GreaterThan(target):
		return nil, apperrors.Validation("current amount cannot exceed the target")
	}

	goal := &models.Goal{
		Title:   title,
		Target:  target,
		Current: saved,
	}
	if err := s.repo.Insert(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}
