package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a use case is, or wraps, one of these, or
// is an infrastructure error.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrAlreadyParked    = errors.New("vehicle already parked")
	ErrNoSpaceAvailable = errors.New("no space available")
	ErrNotFound         = errors.New("not found")
	ErrInvalidState     = errors.New("invalid state")
	ErrConflict         = errors.New("conflict")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
)

var (
	ErrInvalidPlate        = fmt.Errorf("%w: plate is required", ErrInvalidArgument)
	ErrInvalidCategory     = fmt.Errorf("%w: unknown vehicle category", ErrInvalidArgument)
	ErrInvalidSpaceCode    = fmt.Errorf("%w: space code is required", ErrInvalidArgument)
	ErrInvalidSpaceStatus  = fmt.Errorf("%w: space status must be available or maintenance", ErrInvalidArgument)
	ErrInvalidID           = fmt.Errorf("%w: id is required", ErrInvalidArgument)
	ErrInvalidDuration     = fmt.Errorf("%w: elapsed duration must not be negative", ErrInvalidArgument)
	ErrInvalidDocument     = fmt.Errorf("%w: document is required", ErrInvalidArgument)
	ErrInvalidName         = fmt.Errorf("%w: name is required", ErrInvalidArgument)
	ErrInvalidEmail        = fmt.Errorf("%w: email is invalid", ErrInvalidArgument)
	ErrInvalidSubscription = fmt.Errorf("%w: subscription kind must be none, daily or monthly", ErrInvalidArgument)
	ErrInvalidPassword     = fmt.Errorf("%w: password must have at least 6 characters", ErrInvalidArgument)
	ErrInvalidRole         = fmt.Errorf("%w: role must be admin or operator", ErrInvalidArgument)
	ErrInvalidDateRange    = fmt.Errorf("%w: start date must not be after end date", ErrInvalidArgument)
	ErrInvalidDate         = fmt.Errorf("%w: dates must be formatted as YYYY-MM-DD", ErrInvalidArgument)

	ErrSpaceNotFound    = fmt.Errorf("space %w", ErrNotFound)
	ErrSessionNotFound  = fmt.Errorf("active session %w", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)

	ErrSpaceAlreadyExists    = fmt.Errorf("%w: space code already exists", ErrConflict)
	ErrSpaceOccupied         = fmt.Errorf("%w: space is occupied", ErrConflict)
	ErrCustomerAlreadyExists = fmt.Errorf("%w: customer document already registered", ErrConflict)
	ErrUserAlreadyExists     = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrAllocationRace        = fmt.Errorf("%w: every candidate space was taken concurrently", ErrConflict)
	ErrSessionAlreadyClosed  = fmt.Errorf("%w: session was closed concurrently", ErrConflict)

	ErrNegativeElapsed = fmt.Errorf("%w: exit time is before entry time", ErrInvalidState)
	ErrPaymentDeclined = fmt.Errorf("%w: subscription payment was not approved", ErrInvalidState)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	ErrUserInactive       = fmt.Errorf("%w: user is inactive", ErrForbidden)
)
