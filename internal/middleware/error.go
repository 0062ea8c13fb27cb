package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/logger"
)

// ErrorHandler renders the error a handler attached with c.Error as
// {"error":{"code","message"}}. Anything that is not an AppError is reported
// as an internal error. Causes are logged with the request and owner ids and
// never sent to the client. Responses already written are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := asAppError(c.Errors.Last().Err)
		if appErr.Internal != nil {
			fields := []interface{}{
				"code", appErr.Code,
				"cause", appErr.Internal.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(requestIDKey),
			}
			if owner, ok := c.Get(OwnerIDKey); ok {
				fields = append(fields, "owner_id", owner)
			}
			logger.Get().Errorw("request failed", fields...)
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{"code": appErr.Code, "message": appErr.Message},
		})
	}
}

// asAppError maps err onto the error taxonomy. Unknown errors become
// INTERNAL_ERROR carrying err as the cause.
func asAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
