package boltstore

import (
	"context"
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

type userRecord struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"password_hash"`
	Role         entities.Role `json:"role"`
	Active       bool          `json:"active"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// UserStore keeps operator accounts keyed by id plus an email -> id index.
type UserStore struct {
	db *DB
}

var _ interfaces.IUserRepository = (*UserStore)(nil)

func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, u entities.User) (entities.User, error) {
	err := s.db.update(ctx, func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUsers)
		emails := tx.Bucket(bucketUserEmails)
		if b.Get([]byte(u.ID)) != nil || emails.Get([]byte(u.Email)) != nil {
			return interfaces.ErrDuplicateKey
		}
		if err := putJSON(b, u.ID, userRecord(u)); err != nil {
			return err
		}
		return emails.Put([]byte(u.Email), []byte(u.ID))
	})
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (entities.User, error) {
	var rec userRecord
	err := s.db.view(ctx, func(tx *bolt.Tx) error {
		_, err := getJSON(tx.Bucket(bucketUsers), id, &rec)
		return err
	})
	if err != nil {
		return entities.User{}, err
	}
	return entities.User(rec), nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var rec userRecord
	err := s.db.view(ctx, func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketUserEmails).Get([]byte(email))
		if id == nil {
			return nil
		}
		_, err := getJSON(tx.Bucket(bucketUsers), string(id), &rec)
		return err
	})
	if err != nil {
		return entities.User{}, err
	}
	return entities.User(rec), nil
}

func (s *UserStore) List(ctx context.Context) ([]entities.User, error) {
	out := []entities.User{}
	err := s.db.view(ctx, func(tx *bolt.Tx) error {
		return forEachJSON(tx.Bucket(bucketUsers), func(rec userRecord) error {
			out = append(out, entities.User(rec))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UserStore) UpdatePassword(ctx context.Context, id string, passwordHash string) (entities.User, error) {
	var out userRecord
	err := s.db.update(ctx, func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUsers)
		var rec userRecord
		found, err := getJSON(b, id, &rec)
		if err != nil || !found {
			return err
		}
		rec.PasswordHash = passwordHash
		rec.UpdatedAt = time.Now().UTC()
		out = rec
		return putJSON(b, id, rec)
	})
	if err != nil {
		return entities.User{}, err
	}
	return entities.User(out), nil
}
