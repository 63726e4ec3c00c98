package middleware

import (
	"errors"
	"log"
	"net/http"

	"touhoucatalog/backend/internal/repository"
	"touhoucatalog/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// AppError is an error carrying the HTTP status it should be reported with.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

func (e *AppError) Error() string {
	return e.Message
}

// BadRequest builds a 400 AppError.
func BadRequest(msg string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: msg}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// ValidationProblem is the body of a 400 response for a DTO that failed validation.
type ValidationProblem struct {
	Title  string              `json:"title" example:"One or more validation errors occurred."`
	Status int                 `json:"status" example:"400"`
	Errors map[string][]string `json:"errors"`
}

// ErrorHandler renders the last error attached to the context as a JSON response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var verrs validation.Errors
		var appErr *AppError
		switch {
		case errors.As(err, &verrs):
			c.JSON(http.StatusBadRequest, ValidationProblem{
				Title:  "One or more validation errors occurred.",
				Status: http.StatusBadRequest,
				Errors: verrs,
			})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.As(err, &appErr):
			c.JSON(appErr.Code, appErr)
		default:
			log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected server error occurred"})
		}
	}
}
