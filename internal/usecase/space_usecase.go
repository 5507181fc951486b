package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/infrastructure/logging"
	"parking_service/internal/infrastructure/metrics"
	"parking_service/internal/usecase/interfaces"
)

// ISpaceUseCase is the Space Registry.
//
// Allocate and ReleaseSession are the only operations the session lifecycle
// uses. The rest are administrative.

type ISpaceUseCase interface {
	Create(ctx context.Context, code string, category string, location entities.Location) (entities.Space, error)
	Get(ctx context.Context, code string) (entities.Space, error)
	List(ctx context.Context) ([]entities.Space, error)
	ListAvailable(ctx context.Context, category string) ([]entities.Space, error)
	Allocate(ctx context.Context, category entities.Category, sessionID string) (entities.Space, error)
	Release(ctx context.Context, code string) (entities.Space, error)
	ReleaseSession(ctx context.Context, code string, sessionID string) (bool, error)
	SetStatus(ctx context.Context, code string, status string) (entities.Space, error)
	Delete(ctx context.Context, code string) error
}

type SpaceUseCase struct {
	repo    interfaces.ISpaceRepository
	clock   interfaces.IClock
	metrics *metrics.Recorder
}

var _ ISpaceUseCase = (*SpaceUseCase)(nil)

func NewSpaceUseCase(repo interfaces.ISpaceRepository, clock interfaces.IClock, rec *metrics.Recorder) *SpaceUseCase {
	return &SpaceUseCase{repo: repo, clock: clock, metrics: rec}
}

func (u *SpaceUseCase) Create(ctx context.Context, code string, category string, location entities.Location) (entities.Space, error) {
	code = normalizeSpaceCode(code)
	if code == "" {
		return entities.Space{}, ErrInvalidSpaceCode
	}
	cat, err := entities.ParseCategory(category)
	if err != nil {
		return entities.Space{}, ErrInvalidCategory
	}

	now := u.now()
	s := entities.Space{
		Code:      code,
		Category:  cat,
		Status:    entities.SpaceStatusAvailable,
		Location:  location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Space{}, ErrSpaceAlreadyExists
		}
		return entities.Space{}, err
	}
	logging.WithFields(ctx, map[string]interface{}{"space": code, "category": cat}).Info("[space][create] created")
	return created, nil
}

func (u *SpaceUseCase) Get(ctx context.Context, code string) (entities.Space, error) {
	code = normalizeSpaceCode(code)
	if code == "" {
		return entities.Space{}, ErrInvalidSpaceCode
	}
	s, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Space{}, err
	}
	if s.Code == "" {
		return entities.Space{}, ErrSpaceNotFound
	}
	return s, nil
}

func (u *SpaceUseCase) List(ctx context.Context) ([]entities.Space, error) {
	return u.repo.List(ctx)
}

func (u *SpaceUseCase) ListAvailable(ctx context.Context, category string) ([]entities.Space, error) {
	cat, err := entities.ParseCategory(category)
	if err != nil {
		return nil, ErrInvalidCategory
	}
	return u.availableOf(ctx, cat)
}

// Allocate binds the lowest-coded available space of the category to sessionID.
// Candidates are tried in order; each attempt is a conditional update, so a space
// can never be handed to two sessions.
func (u *SpaceUseCase) Allocate(ctx context.Context, category entities.Category, sessionID string) (entities.Space, error) {
	if !category.Valid() {
		return entities.Space{}, ErrInvalidCategory
	}
	if strings.TrimSpace(sessionID) == "" {
		return entities.Space{}, ErrInvalidID
	}

	candidates, err := u.availableOf(ctx, category)
	if err != nil {
		return entities.Space{}, err
	}
	if len(candidates) == 0 {
		return entities.Space{}, ErrNoSpaceAvailable
	}

	for _, c := range candidates {
		occupied, err := u.repo.Occupy(ctx, c.Code, sessionID)
		if err != nil {
			return entities.Space{}, err
		}
		if occupied.Code != "" {
			logging.WithFields(ctx, map[string]interface{}{
				"space":      occupied.Code,
				"category":   category,
				"session_id": sessionID,
			}).Info("[space][allocate] occupied")
			return occupied, nil
		}
		u.metrics.AllocationConflict(string(category))
		logging.WithFields(ctx, map[string]interface{}{"space": c.Code}).Warn("[space][allocate] lost race, trying next candidate")
	}
	return entities.Space{}, ErrAllocationRace
}

// Release frees a space. Releasing an available space is a no-op.
func (u *SpaceUseCase) Release(ctx context.Context, code string) (entities.Space, error) {
	current, err := u.Get(ctx, code)
	if err != nil {
		return entities.Space{}, err
	}
	if current.Status == entities.SpaceStatusAvailable {
		return current, nil
	}
	released, err := u.repo.SetStatus(ctx, current.Code, entities.SpaceStatusAvailable)
	if err != nil {
		return entities.Space{}, err
	}
	if released.Code == "" {
		return entities.Space{}, ErrSpaceNotFound
	}
	logging.WithFields(ctx, map[string]interface{}{"space": released.Code, "previous_status": current.Status}).Info("[space][release] released")
	return released, nil
}

// ReleaseSession frees the space only while it is still bound to sessionID.
// It reports false when the binding already moved on, e.g. an override followed
// by a new allocation. A missing space is ErrSpaceNotFound.
func (u *SpaceUseCase) ReleaseSession(ctx context.Context, code string, sessionID string) (bool, error) {
	code = normalizeSpaceCode(code)
	if code == "" {
		return false, ErrInvalidSpaceCode
	}
	log := logging.WithFields(ctx, map[string]interface{}{"space": code, "session_id": sessionID})
	released, err := u.repo.ReleaseIfOccupiedBy(ctx, code, sessionID)
	if err != nil {
		return false, err
	}
	if released.Code != "" {
		log.Info("[space][release] released")
		return true, nil
	}

	current, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return false, err
	}
	if current.Code == "" {
		return false, ErrSpaceNotFound
	}
	log.WithFields(map[string]interface{}{
		"status":        current.Status,
		"bound_session":   current.SessionID,
	}).Warn("[space][release] space no longer bound to session, left untouched")
	return false, nil
}

// SetStatus is the administrative override. Occupancy is only ever set by
// Allocate, so occupied is rejected here.
func (u *SpaceUseCase) SetStatus(ctx context.Context, code string, status string) (entities.Space, error) {
	st, err := entities.ParseSpaceStatus(status)
	if err != nil || st == entities.SpaceStatusOccupied {
		return entities.Space{}, ErrInvalidSpaceStatus
	}
	current, err := u.Get(ctx, code)
	if err != nil {
		return entities.Space{}, err
	}
	updated, err := u.repo.SetStatus(ctx, current.Code, st)
	if err != nil {
		return entities.Space{}, err
	}
	if updated.Code == "" {
		return entities.Space{}, ErrSpaceNotFound
	}
	if current.IsOccupied() {
		logging.WithFields(ctx, map[string]interface{}{
			"space":      current.Code,
			"session_id": current.SessionID,
			"status":     st,
		}).Warn("[space][set-status] occupant binding cleared by override")
	}
	return updated, nil
}

func (u *SpaceUseCase) Delete(ctx context.Context, code string) error {
	current, err := u.Get(ctx, code)
	if err != nil {
		return err
	}
	if current.IsOccupied() {
		return ErrSpaceOccupied
	}
	deleted, err := u.repo.DeleteUnoccupied(ctx, current.Code)
	if err != nil {
		return err
	}
	if !deleted {
		// It became occupied between the read and the conditional delete.
		return ErrSpaceOccupied
	}
	return nil
}

func (u *SpaceUseCase) availableOf(ctx context.Context, category entities.Category) ([]entities.Space, error) {
	all, err := u.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Space, 0, len(all))
	for _, s := range all {
		if s.Status == entities.SpaceStatusAvailable {
			out = append(out, s)
		}
	}
	sortSpacesByCode(out)
	return out, nil
}

func (u *SpaceUseCase) now() time.Time {
	return u.clock.Now().UTC()
}

func normalizeSpaceCode(code string) string {
	return strings.TrimSpace(code)
}
