package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
)

// OwnerIDKey is the Gin context key holding the resolved owner ID.
const OwnerIDKey = "ownerID"

// OwnerHeader names the request header that selects the record owner.
const OwnerHeader = "X-Owner-ID"

// OwnerResolver returns a Gin middleware that resolves the record owner for the
// request. The owner comes from the X-Owner-ID header and falls back to
// defaultOwner when the header is absent. A malformed header aborts the request.
func OwnerResolver(defaultOwner uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := defaultOwner

		if raw := c.GetHeader(OwnerHeader); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil || id == 0 {
				appErr := apperrors.WithMessage(apperrors.ErrUnknownOwner, "Invalid "+OwnerHeader+" header")
				c.AbortWithStatusJSON(appErr.StatusCode,
					gin.H{"error": gin.H{"code": appErr.Code, "message": appErr.Message}})
				return
			}
			owner = uint(id)
		}

		c.Set(OwnerIDKey, owner)
		c.Next()
	}
}
