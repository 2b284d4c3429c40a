package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorKind is the tagged variant attached to application errors so the HTTP
// boundary never needs to inspect error message text.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindDuplicate
	KindUnauthorized
	KindForbidden
	KindInternal
)

// AppError carries a kind plus a caller-facing message.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationError(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func DuplicateError(msg string) *AppError {
	return &AppError{Kind: KindDuplicate, Message: msg}
}

func UnauthorizedError(msg string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: msg}
}

func ForbiddenError(msg string) *AppError {
	return &AppError{Kind: KindForbidden, Message: msg}
}

func InternalError(msg string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: msg, Err: err}
}

// WrapDBError classifies a storage error into a tagged variant. GORM's
// translated sentinel errors are matched structurally.
func WrapDBError(err error, notFoundMsg string) *AppError {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return DuplicateError("duplicate record")
	default:
		return InternalError("database error", err)
	}
}

// RespondError is the single translation point from tagged errors to the HTTP
// error taxonomy. Anything that is not an *AppError responds 500.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case KindValidation, KindDuplicate:
		status = http.StatusBadRequest
	case KindNotFound:
		status = http.StatusNotFound
	case KindUnauthorized:
		status = http.StatusUnauthorized
	case KindForbidden:
		status = http.StatusForbidden
	}

	c.JSON(status, gin.H{"error": appErr.Message})
}
