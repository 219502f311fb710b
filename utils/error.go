package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Service error codes. Each maps to a stable HTTP status in HTTPStatus.
const (
	CodeValidation      = "validationError"
	CodeNotFound        = "notFound"
	CodeInvalidState    = "invalidState"
	CodePolicyViolation = "policyViolation"
	CodeConflict        = "conflict"
	CodeStorage         = "storageUnavailable"
)

// ServiceError is the typed error returned by the service layer. Message is
// the user-facing reason; it is surfaced verbatim for every code except
// storage failures.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &ServiceError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...any) error {
	return &ServiceError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidStateError(format string, args ...any) error {
	return &ServiceError{Code: CodeInvalidState, Message: fmt.Sprintf(format, args...)}
}

func NewPolicyViolationError(format string, args ...any) error {
	return &ServiceError{Code: CodePolicyViolation, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...any) error {
	return &ServiceError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func NewStorageError(err error) error {
	return &ServiceError{Code: CodeStorage, Message: err.Error()}
}

// HasCode reports whether err is a ServiceError carrying the given code.
func HasCode(err error, code string) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Code == code
}

// HTTPStatus maps a service error code to its response status.
func HTTPStatus(code string) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidState, CodePolicyViolation:
		return http.StatusUnprocessableEntity
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONServiceError maps a service-layer error to its HTTP response. Storage
// failures get a generic message so infrastructure detail never leaks.
func JSONServiceError(c *gin.Context, err error) {
	var se *ServiceError
	if !errors.As(err, &se) {
		JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	if se.Code == CodeStorage {
		GetLogger().Error("storage failure", zap.Error(err))
		JSONError(c, http.StatusInternalServerError, "Service temporarily unavailable", "")
		return
	}
	JSONError(c, HTTPStatus(se.Code), se.Message, "")
}
