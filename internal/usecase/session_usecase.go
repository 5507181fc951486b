package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/domain/tariff"
	"parking_service/internal/infrastructure/logging"
	"parking_service/internal/infrastructure/metrics"
	"parking_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type OpenSessionInput struct {
	Plate      string
	Category   string
	CustomerID string
	OperatorID string
}

type OpenSessionResult struct {
	Session   entities.Session
	SpaceCode string
}

type CloseSessionResult struct {
	Session entities.Session
	Cost    int64
	Elapsed time.Duration
}

// ISessionUseCase is the vehicle session lifecycle: none -> active -> closed.
//
// Entry allocates a space and creates the session as one logical step; exit
// bills, closes, frees the space and appends to the customer's ledger.

type ISessionUseCase interface {
	OpenSession(ctx context.Context, in OpenSessionInput) (OpenSessionResult, error)
	CloseSession(ctx context.Context, plate string, operatorID string) (CloseSessionResult, error)
	LookupSession(ctx context.Context, plate string) (entities.Session, error)
	ListActiveSessions(ctx context.Context) ([]entities.Session, error)
	ListCustomerSessions(ctx context.Context, customerID string, status entities.SessionStatus) ([]entities.Session, error)
	PurgeSession(ctx context.Context, id string) error
}

type SessionUseCase struct {
	spaces    ISpaceUseCase
	sessions  interfaces.ISessionRepository
	customers interfaces.ICustomerRepository
	ledger    ILedger
	tariff    *tariff.Calculator
	clock     interfaces.IClock
	metrics   *metrics.Recorder
	newID     func() string
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(
	spaces ISpaceUseCase,
	sessions interfaces.ISessionRepository,
	customers interfaces.ICustomerRepository,
	ledger ILedger,
	calc *tariff.Calculator,
	clock interfaces.IClock,
	rec *metrics.Recorder,
) *SessionUseCase {
	return &SessionUseCase{
		spaces:    spaces,
		sessions:  sessions,
		customers: customers,
		ledger:    ledger,
		tariff:    calc,
		clock:     clock,
		metrics:   rec,
		newID:     uuid.NewString,
	}
}

func (u *SessionUseCase) OpenSession(ctx context.Context, in OpenSessionInput) (OpenSessionResult, error) {
	plate := entities.NormalizePlate(in.Plate)
	if plate == "" {
		return OpenSessionResult{}, ErrInvalidPlate
	}
	category, err := entities.ParseCategory(in.Category)
	if err != nil {
		return OpenSessionResult{}, ErrInvalidCategory
	}
	customerID := strings.TrimSpace(in.CustomerID)
	log := logging.WithFields(ctx, map[string]interface{}{"plate": plate, "category": category})

	if customerID != "" {
		c, err := u.customers.GetByID(ctx, customerID)
		if err != nil {
			return OpenSessionResult{}, err
		}
		if c.ID == "" {
			return OpenSessionResult{}, ErrCustomerNotFound
		}
	}

	// Fast path only; the repository guard is what actually enforces one active
	// session per plate.
	existing, err := u.sessions.GetActiveByPlate(ctx, plate)
	if err != nil {
		return OpenSessionResult{}, err
	}
	if existing.ID != "" {
		u.metrics.SessionOpened(string(category), "already_parked")
		return OpenSessionResult{}, ErrAlreadyParked
	}

	sessionID := u.newID()
	space, err := u.spaces.Allocate(ctx, category, sessionID)
	if err != nil {
		if errors.Is(err, ErrNoSpaceAvailable) {
			u.metrics.SessionOpened(string(category), "no_space")
		} else {
			u.metrics.SessionOpened(string(category), "error")
		}
		log.WithError(err).Warn("[session][open] allocation failed")
		return OpenSessionResult{}, err
	}

	s := entities.Session{
		ID:              sessionID,
		Plate:           plate,
		Category:        category,
		SpaceCode:       space.Code,
		Status:          entities.SessionStatusActive,
		EntryTime:       u.clock.Now().UTC(),
		CustomerID:      customerID,
		EntryOperatorID: strings.TrimSpace(in.OperatorID),
	}

	created, err := u.sessions.CreateActive(ctx, s)
	if err != nil {
		// Compensate: the space must not stay occupied by a session that does not exist.
		if _, relErr := u.spaces.ReleaseSession(ctx, space.Code, sessionID); relErr != nil {
			u.metrics.SpaceReleaseFailed()
			log.WithError(relErr).WithField("space", space.Code).Error("[session][open] compensation release failed")
		}
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			u.metrics.SessionOpened(string(category), "already_parked")
			return OpenSessionResult{}, ErrAlreadyParked
		}
		u.metrics.SessionOpened(string(category), "error")
		log.WithError(err).Error("[session][open] persisting session failed")
		return OpenSessionResult{}, err
	}

	if customerID != "" {
		if _, err := u.customers.AddVehicle(ctx, customerID, entities.CustomerVehicle{Plate: plate, Category: category}); err != nil {
			log.WithError(err).WithField("customer_id", customerID).Warn("[session][open] could not link vehicle to customer")
		}
	}

	u.metrics.SessionOpened(string(category), "success")
	log.WithFields(map[string]interface{}{"session_id": created.ID, "space": created.SpaceCode}).Info("[session][open] success")
	return OpenSessionResult{Session: created, SpaceCode: created.SpaceCode}, nil
}

func (u *SessionUseCase) CloseSession(ctx context.Context, plate string, operatorID string) (CloseSessionResult, error) {
	plate = entities.NormalizePlate(plate)
	if plate == "" {
		return CloseSessionResult{}, ErrInvalidPlate
	}
	log := logging.WithFields(ctx, map[string]interface{}{"plate": plate})

	active, err := u.sessions.GetActiveByPlate(ctx, plate)
	if err != nil {
		return CloseSessionResult{}, err
	}
	if active.ID == "" {
		return CloseSessionResult{}, ErrSessionNotFound
	}

	exit := u.clock.Now().UTC()
	elapsed := exit.Sub(active.EntryTime)
	if elapsed < 0 {
		log.WithFields(map[string]interface{}{"entry_time": active.EntryTime, "exit_time": exit}).Error("[session][close] negative elapsed time")
		return CloseSessionResult{}, ErrNegativeElapsed
	}
	cost, err := u.tariff.Cost(elapsed, active.Category)
	if err != nil {
		return CloseSessionResult{}, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	closing := active
	closing.ExitTime = &exit
	closing.Elapsed = elapsed
	closing.Cost = cost
	closing.Status = entities.SessionStatusClosed
	closing.ExitOperatorID = strings.TrimSpace(operatorID)

	closed, err := u.sessions.Close(ctx, closing)
	if err != nil {
		return CloseSessionResult{}, err
	}
	if closed.ID == "" {
		return CloseSessionResult{}, ErrSessionAlreadyClosed
	}
	u.metrics.SessionClosed(string(closed.Category), elapsed, cost)

	// The session is committed as closed from here on. Freeing the space comes
	// before any bookkeeping.
	if _, err := u.spaces.ReleaseSession(ctx, closed.SpaceCode, closed.ID); err != nil {
		u.metrics.SpaceReleaseFailed()
		log.WithError(err).WithField("space", closed.SpaceCode).Error("[session][close] space release failed")
		return CloseSessionResult{Session: closed, Cost: cost, Elapsed: elapsed}, fmt.Errorf("release space %s: %w", closed.SpaceCode, err)
	}

	if closed.CustomerID != "" {
		if _, err := u.ledger.RecordUsage(ctx, UsageInput{
			CustomerID: closed.CustomerID,
			SessionID:  closed.ID,
			EntryTime:  closed.EntryTime,
			ExitTime:   exit,
			Elapsed:    elapsed,
			Cost:       cost,
		}); err != nil {
			u.metrics.LedgerAppendFailed()
			log.WithError(err).WithField("customer_id", closed.CustomerID).Error("[session][close] ledger append failed; session stays closed")
		}
	}

	log.WithFields(map[string]interface{}{
		"session_id": closed.ID,
		"space":      closed.SpaceCode,
		"elapsed":    elapsed.String(),
		"cost":       cost,
	}).Info("[session][close] success")
	return CloseSessionResult{Session: closed, Cost: cost, Elapsed: elapsed}, nil
}

// LookupSession returns the active session of the plate, or its most recent
// closed one when the vehicle is no longer parked.
func (u *SessionUseCase) LookupSession(ctx context.Context, plate string) (entities.Session, error) {
	plate = entities.NormalizePlate(plate)
	if plate == "" {
		return entities.Session{}, ErrInvalidPlate
	}
	active, err := u.sessions.GetActiveByPlate(ctx, plate)
	if err != nil {
		return entities.Session{}, err
	}
	if active.ID != "" {
		return active, nil
	}
	latest, err := u.sessions.GetLatestByPlate(ctx, plate)
	if err != nil {
		return entities.Session{}, err
	}
	if latest.ID == "" {
		return entities.Session{}, fmt.Errorf("session for plate %s: %w", plate, ErrNotFound)
	}
	return latest, nil
}

func (u *SessionUseCase) ListActiveSessions(ctx context.Context) ([]entities.Session, error) {
	out, err := u.sessions.ListByStatus(ctx, entities.SessionStatusActive)
	if err != nil {
		return nil, err
	}
	sortSessionsByEntry(out)
	return out, nil
}

func (u *SessionUseCase) ListCustomerSessions(ctx context.Context, customerID string, status entities.SessionStatus) ([]entities.Session, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidID
	}
	all, err := u.sessions.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		sortSessionsByEntry(all)
		return all, nil
	}
	out := make([]entities.Session, 0, len(all))
	for _, s := range all {
		if s.Status == status {
			out = append(out, s)
		}
	}
	sortSessionsByEntry(out)
	return out, nil
}

// PurgeSession is the administrative delete. An active session gives its space
// back before the record goes away.
func (u *SessionUseCase) PurgeSession(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	s, err := u.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s.ID == "" {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if s.IsActive() {
		if _, err := u.spaces.ReleaseSession(ctx, s.SpaceCode, s.ID); err != nil && !errors.Is(err, ErrSpaceNotFound) {
			return fmt.Errorf("release space %s: %w", s.SpaceCode, err)
		}
	}
	if err := u.sessions.Delete(ctx, s.ID); err != nil {
		return err
	}
	logging.WithFields(ctx, map[string]interface{}{"session_id": s.ID, "plate": s.Plate, "was_active": s.IsActive()}).Warn("[session][purge] session deleted")
	return nil
}
