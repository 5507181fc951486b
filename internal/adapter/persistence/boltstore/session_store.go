package boltstore

import (
	"context"
	"sort"

	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

// SessionStore keeps sessions keyed by id and an active_plates bucket mapping a
// plate to its active session id. Both are written in the same transaction.
type SessionStore struct {
	db *DB
}

var _ interfaces.ISessionRepository = (*SessionStore)(nil)

func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) CreateActive(ctx context.Context, sess entities.Session) (entities.Session, error) {
	err := s.db.update(ctx, func(tx *bolt.Tx) error {
		sessions := tx.Bucket(bucketSessions)
		plates := tx.Bucket(bucketActivePlates)
		if sessions.Get([]byte(sess.ID)) != nil || plates.Get([]byte(sess.Plate)) != nil {
			return interfaces.ErrDuplicateKey
		}
		if err := putJSON(sessions, sess.ID, sess); err != nil {
			return err
		}
		return plates.Put([]byte(sess.Plate), []byte(sess.ID))
	})
	if err != nil {
		return entities.Session{}, err
	}
	return sess, nil
}

func (s *SessionStore) GetByID(ctx context.Context, id string) (entities.Session, error) {
	var sess entities.Session
	err := s.db.view(ctx, func(tx *bolt.Tx) error {
		_, err := getJSON(tx.Bucket(bucketSessions), id, &sess)
		return err
	})
	if err != nil {
		return entities.Session{}, err
	}
	return sess, nil
}

func (s *SessionStore) GetActiveByPlate(ctx context.Context, plate string) (entities.Session, error) {
	var sess entities.Session
	err := s.db.view(ctx, func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketActivePlates).Get([]byte(plate))
		if id == nil {
			return nil
		}
		_, err := getJSON(tx.Bucket(bucketSessions), string(id), &sess)
		return err
	})
	if err != nil {
		return entities.Session{}, err
	}
	if !sess.IsActive() {
		return entities.Session{}, nil
	}
	return sess, nil
}

func (s *SessionStore) GetLatestByPlate(ctx context.Context, plate string) (entities.Session, error) {
	all, err := s.collect(ctx, func(sess entities.Session) bool { return sess.Plate == plate })
	if err != nil || len(all) == 0 {
		return entities.Session{}, err
	}
	return all[len(all)-1], nil
}

func (s *SessionStore) ListByStatus(ctx context.Context, status entities.SessionStatus) ([]entities.Session, error) {
	return s.collect(ctx, func(sess entities.Session) bool { return sess.Status == status })
}

func (s *SessionStore) ListByCustomer(ctx context.Context, customerID string) ([]entities.Session, error) {
	return s.collect(ctx, func(sess entities.Session) bool { return sess.CustomerID == customerID })
}

func (s *SessionStore) ListAll(ctx context.Context) ([]entities.Session, error) {
	return s.collect(ctx, func(entities.Session) bool { return true })
}

// Close returns a zero Session when the stored session is missing or already closed.
func (s *SessionStore) Close(ctx context.Context, sess entities.Session) (entities.Session, error) {
	var out entities.Session
	err := s.db.update(ctx, func(tx *bolt.Tx) error {
		sessions := tx.Bucket(bucketSessions)
		var stored entities.Session
		found, err := getJSON(sessions, sess.ID, &stored)
		if err != nil || !found || !stored.IsActive() {
			return err
		}
		stored.Status = entities.SessionStatusClosed
		stored.ExitTime = sess.ExitTime
		stored.Elapsed = sess.Elapsed
		stored.Cost = sess.Cost
		stored.ExitOperatorID = sess.ExitOperatorID
		if err := putJSON(sessions, stored.ID, stored); err != nil {
			return err
		}
		plates := tx.Bucket(bucketActivePlates)
		if string(plates.Get([]byte(stored.Plate))) == stored.ID {
			if err := plates.Delete([]byte(stored.Plate)); err != nil {
				return err
			}
		}
		out = stored
		return nil
	})
	if err != nil {
		return entities.Session{}, err
	}
	return out, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.db.update(ctx, func(tx *bolt.Tx) error {
		sessions := tx.Bucket(bucketSessions)
		var stored entities.Session
		found, err := getJSON(sessions, id, &stored)
		if err != nil || !found {
			return err
		}
		plates := tx.Bucket(bucketActivePlates)
		if string(plates.Get([]byte(stored.Plate))) == id {
			if err := plates.Delete([]byte(stored.Plate)); err != nil {
				return err
			}
		}
		return sessions.Delete([]byte(id))
	})
}

// collect returns matching sessions ordered by entry time.
func (s *SessionStore) collect(ctx context.Context, keep func(entities.Session) bool) ([]entities.Session, error) {
	out := []entities.Session{}
	err := s.db.view(ctx, func(tx *bolt.Tx) error {
		return forEachJSON(tx.Bucket(bucketSessions), func(sess entities.Session) error {
			if keep(sess) {
				out = append(out, sess)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EntryTime.Before(out[j].EntryTime) })
	return out, nil
}
