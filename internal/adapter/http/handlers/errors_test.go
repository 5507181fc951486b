package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"parking_service/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid argument", usecase.ErrInvalidPlate, http.StatusBadRequest, "INVALID_REQUEST"},
		{"already parked", usecase.ErrAlreadyParked, http.StatusConflict, "ALREADY_PARKED"},
		{"no space", usecase.ErrNoSpaceAvailable, http.StatusConflict, "NO_SPACE_AVAILABLE"},
		{"not found", fmt.Errorf("lookup: %w", usecase.ErrSessionNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"invalid state", usecase.ErrNegativeElapsed, http.StatusInternalServerError, "INVALID_STATE"},
		{"conflict", usecase.ErrSessionAlreadyClosed, http.StatusConflict, "CONFLICT"},
		{"unauthorized", usecase.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", usecase.ErrUserInactive, http.StatusForbidden, "FORBIDDEN"},
		{"payment declined", usecase.ErrPaymentDeclined, http.StatusPaymentRequired, "PAYMENT_DECLINED"},
		{"unknown", errors.New("dynamodb timeout"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}
}

func TestMapError_InternalMessageIsGeneric(t *testing.T) {
	got := mapError(errors.New("secret table name leaked"))
	if got.ToHTTPError().Message != "An internal error occurred" {
		t.Fatalf("expected generic message, got %q", got.ToHTTPError().Message)
	}
}
