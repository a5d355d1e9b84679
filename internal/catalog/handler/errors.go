package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/validation"
)

var statusByType = map[errors.ErrorType]int{
	errors.ErrorTypeNotFound:     http.StatusNotFound,
	errors.ErrorTypeBadRequest:   http.StatusBadRequest,
	errors.ErrorTypeConflict:     http.StatusConflict,
	errors.ErrorTypeUnauthorized: http.StatusUnauthorized,
	errors.ErrorTypeForbidden:    http.StatusForbidden,
	errors.ErrorTypeInternal:     http.StatusInternalServerError,
}

// respondError writes err as {"error": TYPE, "message": ...}. Internal
// failures are recorded on the context for the request logger and answered
// with a generic message.
func respondError(c *gin.Context, err error) {
	errType := errors.TypeOf(err)
	status, ok := statusByType[errType]
	if !ok {
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, gin.H{
			"error":   errors.ErrorTypeInternal,
			"message": "internal server error",
		})
		return
	}

	body := gin.H{
		"error":   errType,
		"message": errorMessage(err),
	}
	if fields := validation.Fields(err); len(fields) > 0 {
		body["fields"] = fields
	}
	c.AbortWithStatusJSON(status, body)
}

func errorMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func badRequest(c *gin.Context, message string) {
	respondError(c, errors.BadRequest(message))
}
