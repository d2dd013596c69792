package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmelog/cosme-review-api/pkg/apperrors"
)

// Response bodies are intentionally small and fixed per endpoint:
// successes carry {message, ...payload}, failures {message, cause?} or
// {message, error:{field: issue}} for validation failures.

// JSON writes a success body. Extra fields are merged beside "message".
func JSON(c *gin.Context, message string, fields gin.H) {
	body := gin.H{"message": message}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Raw writes an arbitrary 200 payload (used by list endpoints whose
// contract is a bare array).
func Raw(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Fail writes an error body with an explicit status.
func Fail(c *gin.Context, status int, message string, cause any) {
	body := gin.H{"message": message}
	if cause != nil {
		body["cause"] = cause
	}
	c.JSON(status, body)
}

// ValidationFail writes a 400 with structured per-field issues.
func ValidationFail(c *gin.Context, message string, details map[string]string) {
	body := gin.H{"message": message}
	if len(details) > 0 {
		body["error"] = details
	}
	c.JSON(http.StatusBadRequest, body)
}

// FromError is the single place the closed error taxonomy becomes an HTTP
// response. Every handler funnels service errors through here.
func FromError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		ValidationFail(c, verr.Msg, verr.Details)
		return
	}

	var app apperrors.AppError
	if errors.As(err, &app) {
		Fail(c, app.HTTPStatus(), app.Error(), nil)
		return
	}

	Fail(c, http.StatusInternalServerError, "Internal server error", nil)
}

// AbortUnauthorized is used by middleware, which must stop the chain.
func AbortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
}
