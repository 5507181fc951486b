package boltstore

import (
	"context"
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

// SpaceStore keeps spaces keyed by code.
type SpaceStore struct {
	db *DB
}

var _ interfaces.ISpaceRepository = (*SpaceStore)(nil)

func NewSpaceStore(db *DB) *SpaceStore {
	return &SpaceStore{db: db}
}

func (s *SpaceStore) Create(ctx context.Context, sp entities.Space) (entities.Space, error) {
	err := s.db.update(ctx, func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSpaces)
		if b.Get([]byte(sp.Code)) != nil {
			return interfaces.ErrDuplicateKey
		}
		return putJSON(b, sp.Code, sp)
	})
	if err != nil {
		return entities.Space{}, err
	}
	return sp, nil
}

func (s *SpaceStore) GetByCode(ctx context.Context, code string) (entities.Space, error) {
	var sp entities.Space
	err := s.db.view(ctx, func(tx *bolt.Tx) error {
		_, err := getJSON(tx.Bucket(bucketSpaces), code, &sp)
		return err
	})
	if err != nil {
		return entities.Space{}, err
	}
	return sp, nil
}

func (s *SpaceStore) List(ctx context.Context) ([]entities.Space, error) {
	return s.collect(ctx, func(entities.Space) bool { return true })
}

func (s *SpaceStore) ListByCategory(ctx context.Context, category entities.Category) ([]entities.Space, error) {
	return s.collect(ctx, func(sp entities.Space) bool { return sp.Category == category })
}

// Occupy returns a zero Space when the space is missing or no longer available.
func (s *SpaceStore) Occupy(ctx context.Context, code string, sessionID string) (entities.Space, error) {
	var out entities.Space
	err := s.db.update(ctx, func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSpaces)
		var sp entities.Space
		found, err := getJSON(b, code, &sp)
		if err != nil || !found || sp.Status != entities.SpaceStatusAvailable {
			return err
		}
		sp.Status = entities.SpaceStatusOccupied
		sp.SessionID = sessionID
		sp.UpdatedAt = time.Now().UTC()
		if err := putJSON(b, code, sp); err != nil {
			return err
		}
		out = sp
		return nil
	})
	if err != nil {
		return entities.Space{}, err
	}
	return out, nil
}

func (s *SpaceStore) SetStatus(ctx context.Context, code string, status entities.SpaceStatus) (entities.Space, error) {
	var out entities.Space
	err := s.db.update(ctx, func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSpaces)
		var sp entities.Space
		found, err := getJSON(b, code, &sp)
		if err != nil || !found {
			return err
		}
		sp.Status = status
		sp.SessionID = ""
		sp.UpdatedAt = time.Now().UTC()
		if err := putJSON(b, code, sp); err != nil {
			return err
		}
		out = sp
		return nil
	})
	if err != nil {
		return entities.Space{}, err
	}
	return out, nil
}

// ReleaseIfOccupiedBy frees the space only while it is still bound to sessionID.
func (s *SpaceStore) ReleaseIfOccupiedBy(ctx context.Context, code string, sessionID string) (entities.Space, error) {
	var out entities.Space
	err := s.db.update(ctx, func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSpaces)
		var sp entities.Space
		found, err := getJSON(b, code, &sp)
		if err != nil || !found || !sp.IsOccupied() || sp.SessionID != sessionID {
			return err
		}
		sp.Status = entities.SpaceStatusAvailable
		sp.SessionID = ""
		sp.UpdatedAt = time.Now().UTC()
		if err := putJSON(b, code, sp); err != nil {
			return err
		}
		out = sp
		return nil
	})
	if err != nil {
		return entities.Space{}, err
	}
	return out, nil
}

func (s *SpaceStore) DeleteUnoccupied(ctx context.Context, code string) (bool, error) {
	deleted := false
	err := s.db.update(ctx, func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSpaces)
		var sp entities.Space
		found, err := getJSON(b, code, &sp)
		if err != nil || !found || sp.IsOccupied() {
			return err
		}
		deleted = true
		return b.Delete([]byte(code))
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (s *SpaceStore) collect(ctx context.Context, keep func(entities.Space) bool) ([]entities.Space, error) {
	out := []entities.Space{}
	err := s.db.view(ctx, func(tx *bolt.Tx) error {
		return forEachJSON(tx.Bucket(bucketSpaces), func(sp entities.Space) error {
			if keep(sp) {
				out = append(out, sp)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
