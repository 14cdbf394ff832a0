package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/timevault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to an HTTP status and writes the standard
// error body. Unknown errors become a generic 500 so internals never leak.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status, message := errorStatus(err)

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// errorStatus picks the HTTP status and client-facing message for a domain
// error. Insufficient funds is checked before the generic transfer failure
// because the custody layer wraps one in the other.
func errorStatus(err error) (int, string) {
	switch {
	case domainerr.IsLockNotFoundError(err), errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound, "Lock not found"
	case errors.Is(err, domainerr.ErrAccountNotFound):
		return http.StatusNotFound, "Account not found"
	case domainerr.IsNotOwnerError(err):
		return http.StatusForbidden, "Caller is not the lock owner"
	case domainerr.IsNotMaturedError(err):
		return http.StatusLocked, "Lock has not yet matured"
	case domainerr.IsDuplicateLockError(err):
		return http.StatusConflict, "Lock identifier already in use"
	case domainerr.IsInsufficientFundsError(err):
		return http.StatusUnprocessableEntity, "Insufficient funds"
	case domainerr.IsTransferFailedError(err):
		return http.StatusBadGateway, "Asset transfer failed"
	case isValidationError(err):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func isValidationError(err error) bool {
	validationErrors := []error{
		domainerr.ErrInvalidAmount,
		domainerr.ErrNegativeAmount,
		domainerr.ErrNonPositiveAmount,
		domainerr.ErrAmountOverflow,
		domainerr.ErrInvalidAccountID,
		domainerr.ErrInvalidAsset,
		domainerr.ErrInvalidDuration,
		domainerr.ErrInvalidLockID,
		domainerr.ErrMaturityOverflow,
	}

	for _, validation := range validationErrors {
		if errors.Is(err, validation) {
			return true
		}
	}
	return false
}
