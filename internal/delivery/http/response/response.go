package response

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	domainerrors "photodeck/internal/domain/errors"
	"photodeck/internal/usecase"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "USER_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// statusForCode maps business codes to HTTP statuses. Unknown codes render as
// a plain bad request.
var statusForCode = map[string]int{
	domainerrors.ErrUserNotFound.ErrorCode():      http.StatusNotFound,
	domainerrors.ErrUserAlreadyExists.ErrorCode(): http.StatusConflict,
	domainerrors.ErrRoleNotFound.ErrorCode():      http.StatusBadRequest,
	domainerrors.ErrInvalidPassword.ErrorCode():   http.StatusUnauthorized,
	domainerrors.ErrInvalidToken.ErrorCode():      http.StatusUnauthorized,
	domainerrors.ErrPictureNotFound.ErrorCode():   http.StatusNotFound,
	domainerrors.ErrFileAlreadyExists.ErrorCode(): http.StatusConflict,
	domainerrors.ErrPersistenceFailed.ErrorCode(): http.StatusInternalServerError,
	domainerrors.ErrValidationFailed.ErrorCode():  http.StatusBadRequest,
	domainerrors.ErrForbidden.ErrorCode():         http.StatusForbidden,
}

// Failure renders an unsuccessful usecase Result. The first message becomes
// the response message; any remaining messages land in the details.
func Failure(c echo.Context, result usecase.Result) error {
	statusCode, ok := statusForCode[result.Code]
	if !ok {
		statusCode = http.StatusBadRequest
	}

	message := ""
	details := ""
	if len(result.Errors) > 0 {
		message = result.Errors[0]
		details = strings.Join(result.Errors[1:], "; ")
	}

	return Error(c, statusCode, result.Code, message, details)
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
