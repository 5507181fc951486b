package handlers

import (
	"errors"
	"net/http"

	"parking_service/internal/infrastructure/logging"
	"parking_service/internal/usecase"
	"parking_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// mapError turns a use case error into the client-facing error. Kind errors
// carry safe messages. Anything else is reported as an internal error.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidArgument):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlreadyParked):
		return pkg.NewDomainError("ALREADY_PARKED", "Vehicle already has an active session", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNoSpaceAvailable):
		return pkg.NewDomainError("NO_SPACE_AVAILABLE", "No space available for this category", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainError("UNAUTHORIZED", err.Error(), err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", err.Error(), err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainError("PAYMENT_DECLINED", "Subscription payment was not approved", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, op string, err error) {
	appErr := mapError(err)
	entry := logging.WithContext(c.Request.Context()).WithError(err).WithField("code", appErr.Code)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		entry.Errorf("%s failed", op)
	} else {
		entry.Warnf("%s rejected", op)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
