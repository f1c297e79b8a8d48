package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses with the uniform
// envelope. Unknown errors collapse into a generic 500 so internals never
// leak to clients.
func HandleAPIError(c *gin.Context, err error) {
	status := statusFor(err)
	c.JSON(status, dto.NewErrorResponse(messageFor(err, status)))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrSessionInvalid),
		errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrNotRegistered):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrCourseCodeAlreadyExists),
		errors.Is(err, apperrors.ErrDepartmentAlreadyExists),
		errors.Is(err, apperrors.ErrDepartmentHasRelations),
		errors.Is(err, apperrors.ErrAlreadyRegistered),
		errors.Is(err, apperrors.ErrCourseFull):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// messageFor picks the display message. Sentinels and CustomError messages
// are written to be display-safe; anything else is replaced.
func messageFor(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "Internal server error"
	}

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}

	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		return "Invalid credentials"
	}
	if errors.Is(err, apperrors.ErrSessionInvalid) {
		return "Invalid or expired session"
	}
	if errors.Is(err, apperrors.ErrUnauthenticated) {
		return "Authentication required"
	}
	if errors.Is(err, apperrors.ErrPermissionDenied) {
		return "Permission denied"
	}

	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
