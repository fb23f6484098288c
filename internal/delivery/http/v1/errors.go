package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/services"
)

var errInvalidRequestBody = errors.New("invalid request body")

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

// newServiceError maps a task service error to its response. Unknown
// errors become a bare 500 so internals never leak to clients.
func newServiceError(err error) apiError {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		return newBadRequestError(validationErr.Message)
	case errors.As(err, &notFoundErr):
		return newNotFoundError(notFoundErr.Message)
	default:
		return newStatusTextError(http.StatusInternalServerError)
	}
}
