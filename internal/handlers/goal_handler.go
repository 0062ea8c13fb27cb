package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexanderJohnD/WealthWise/internal/input"
	"github.com/AlexanderJohnD/WealthWise/internal/services"
)

// GoalHandler handles savings goal requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// ListGoals handles listing every savings goal.
// @Summary     List goals
// @Description Get all savings goals in the order they were created
// @Tags        goals
// @Produce     json
// @Success     200 {array}  models.Goal "Goals"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	goals, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// CreateGoal handles creating a savings goal.
// @Summary     Create goal
// @Description Create a savings goal; current defaults to 0 and may not exceed target
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body input.GoalInput true "Goal details"
// @Success     201 {object} models.Goal   "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req input.GoalInput
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(input.ToValidationError(err))
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), req.Title, req.Target, req.Current)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}
