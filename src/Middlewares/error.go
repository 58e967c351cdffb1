package Middlewares

import (
	"errors"
	"net/http"

	Domain "github.com/DF-Mephisto/Rest-Forum/src/Errors"

	"github.com/gin-gonic/gin"
)

// AppError is a transport-level error with an explicit status code, used by
// controllers for request-shape problems (bad path params, malformed bodies).
type AppError struct {
	Code    int    `json:"-"` // Hide from JSON response
	Message string `json:"error"`
}

func (e *AppError) Error() string {
	return e.Message
}

// ErrorMiddleware catches errors added to the context and sends a JSON
// response. Domain error kinds get stable statuses: validation 400, not
// found 404, conflict 409, forbidden 403. Anything unrecognized is an
// opaque 500; storage failures are never reinterpreted as domain outcomes.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next() // Process request first

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, appErr)
			return
		}

		var validation *Domain.ValidationFailed
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Violations})
			return
		}

		var notFound *Domain.ItemNotFound
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
			return
		}

		var exists *Domain.ItemAlreadyExists
		if errors.As(err, &exists) {
			c.JSON(http.StatusConflict, gin.H{"error": exists.Message})
			return
		}

		var notAllowed *Domain.ActionNotAllowed
		if errors.As(err, &notAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": notAllowed.Message})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "An unexpected server error occurred",
		})
	}
}
