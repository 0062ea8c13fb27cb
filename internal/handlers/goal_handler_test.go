package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/models"
)

func setupGoalRouter(handler *GoalHandler) *gin.Engine {
	r := newTestRouter()
	r.GET("/goals", handler.ListGoals)
	r.POST("/goals", handler.CreateGoal)
	return r
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockGoalService{
			createGoalFn: func(_ context.Context, title string, target decimal.Decimal, current *decimal.Decimal) (*models.Goal, error) {
				return &models.Goal{ID: "0190a2b4-0000-7000-8000-000000000000", Title: title, Target: target, Current: *current}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "POST", "/goals", `{"title":"Emergency Fund","target":10000,"current":2500}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["title"] != "Emergency Fund" || result["current"].(float64) != 2500 {
			t.Errorf("unexpected goal %v", result)
		}
	})

	t.Run("returns 400 on missing target", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}))

		rec := doRequest(r, "POST", "/goals", `{"title":"Car"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})

	t.Run("returns 400 when service rejects current above target", func(t *testing.T) {
		svc := &mockGoalService{
			createGoalFn: func(context.Context, string, decimal.Decimal, *decimal.Decimal) (*models.Goal, error) {
				return nil, apperrors.Validation("current amount cannot exceed the target")
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "POST", "/goals", `{"title":"Car","target":100,"current":150}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})
}

func TestGoalHandler_ListGoals(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		svc := &mockGoalService{
			listGoalsFn: func(context.Context) ([]models.Goal, error) {
				return []models.Goal{{Title: "Trip"}}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "GET", "/goals", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if n := len(parseJSONArray(t, rec)); n != 1 {
			t.Errorf("expected 1 goal, got %d", n)
		}
	})

	t.Run("returns 500 on storage error", func(t *testing.T) {
		svc := &mockGoalService{
			listGoalsFn: func(context.Context) ([]models.Goal, error) {
				return nil, apperrors.ErrStorage
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "GET", "/goals", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
