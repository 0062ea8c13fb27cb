package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/middleware"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes what went wrong.
type ErrorDetail struct {
	Code    string `json:"code" example:"VALIDATION_ERROR"`
	Message string `json:"message" example:"symbol is required"`
}

// getOwnerID extracts the owner resolved by the owner middleware.
func getOwnerID(c *gin.Context) (uint, error) {
	ownerID, exists := c.Get(middleware.OwnerIDKey)
	if !exists {
		return 0, apperrors.ErrUnknownOwner
	}
	id, ok := ownerID.(uint)
	if !ok || id == 0 {
		return 0, apperrors.ErrUnknownOwner
	}
	return id, nil
}
