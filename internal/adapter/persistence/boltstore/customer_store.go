package boltstore

import (
	"context"
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

type usageRecord struct {
	Key       string        `json:"key"`
	SessionID string        `json:"session_id,omitempty"`
	EntryTime time.Time     `json:"entry_time"`
	ExitTime  time.Time     `json:"exit_time"`
	Elapsed   time.Duration `json:"elapsed"`
	Cost      int64         `json:"cost"`
}

// customerRecord is the stored form. Unlike the API shape it keeps usage keys.
type customerRecord struct {
	ID            string                     `json:"id"`
	Document      string                     `json:"document"`
	Name          string                     `json:"name"`
	Phone         string                     `json:"phone"`
	Email         string                     `json:"email"`
	Subscription  entities.Subscription      `json:"subscription"`
	Vehicles      []entities.CustomerVehicle `json:"vehicles"`
	History       []usageRecord              `json:"history"`
	LastPaymentID string                     `json:"last_payment_id"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

// CustomerStore keeps customers keyed by id plus a document -> id index.
type CustomerStore struct {
	db *DB
}

var _ interfaces.ICustomerRepository = (*CustomerStore)(nil)

func NewCustomerStore(db *DB) *CustomerStore {
	return &CustomerStore{db: db}
}

func (s *CustomerStore) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	err := s.db.update(ctx, func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCustomers)
		docs := tx.Bucket(bucketCustomerDocs)
		if b.Get([]byte(c.ID)) != nil || docs.Get([]byte(c.Document)) != nil {
			return interfaces.ErrDuplicateKey
		}
		if err := putJSON(b, c.ID, toCustomerRecord(c)); err != nil {
			return err
		}
		return docs.Put([]byte(c.Document), []byte(c.ID))
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (s *CustomerStore) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	var rec customerRecord
	err := s.db.view(ctx, func(tx *bolt.Tx) error {
		_, err := getJSON(tx.Bucket(bucketCustomers), id, &rec)
		return err
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerRecord(rec), nil
}

func (s *CustomerStore) GetByDocument(ctx context.Context, document string) (entities.Customer, error) {
	var rec customerRecord
	err := s.db.view(ctx, func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketCustomerDocs).Get([]byte(document))
		if id == nil {
			return nil
		}
		_, err := getJSON(tx.Bucket(bucketCustomers), string(id), &rec)
		return err
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerRecord(rec), nil
}

func (s *CustomerStore) List(ctx context.Context) ([]entities.Customer, error) {
	out := []entities.Customer{}
	err := s.db.view(ctx, func(tx *bolt.Tx) error {
		return forEachJSON(tx.Bucket(bucketCustomers), func(rec customerRecord) error {
			out = append(out, fromCustomerRecord(rec))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update writes profile and subscription fields only.
func (s *CustomerStore) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	return s.mutate(ctx, c.ID, func(rec *customerRecord) bool {
		rec.Name = c.Name
		rec.Phone = c.Phone
		rec.Email = c.Email
		rec.Subscription = c.Subscription
		rec.LastPaymentID = c.LastPaymentID
		rec.UpdatedAt = c.UpdatedAt
		return true
	})
}

func (s *CustomerStore) AddVehicle(ctx context.Context, id string, v entities.CustomerVehicle) (entities.Customer, error) {
	return s.mutate(ctx, id, func(rec *customerRecord) bool {
		for _, existing := range rec.Vehicles {
			if existing.Plate == v.Plate {
				return false
			}
		}
		rec.Vehicles = append(rec.Vehicles, v)
		rec.UpdatedAt = time.Now().UTC()
		return true
	})
}

func (s *CustomerStore) AppendUsage(ctx context.Context, id string, u entities.UsageRecord) (bool, error) {
	appended := false
	_, err := s.mutate(ctx, id, func(rec *customerRecord) bool {
		for _, existing := range rec.History {
			if existing.Key == u.Key {
				return false
			}
		}
		rec.History = append(rec.History, usageRecord{
			Key:       u.Key,
			SessionID: u.SessionID,
			EntryTime: u.EntryTime,
			ExitTime:  u.ExitTime,
			Elapsed:   u.Elapsed,
			Cost:      u.Cost,
		})
		appended = true
		return true
	})
	if err != nil {
		return false, err
	}
	return appended, nil
}

// mutate applies fn to the stored record inside one write transaction. fn
// returns false to skip the write. A missing customer yields a zero Customer.
func (s *CustomerStore) mutate(ctx context.Context, id string, fn func(rec *customerRecord) bool) (entities.Customer, error) {
	var out customerRecord
	err := s.db.update(ctx, func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCustomers)
		var rec customerRecord
		found, err := getJSON(b, id, &rec)
		if err != nil || !found {
			return err
		}
		out = rec
		if !fn(&rec) {
			return nil
		}
		out = rec
		return putJSON(b, id, rec)
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerRecord(out), nil
}

func toCustomerRecord(c entities.Customer) customerRecord {
	rec := customerRecord{
		ID:            c.ID,
		Document:      c.Document,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		Subscription:  c.Subscription,
		Vehicles:      append([]entities.CustomerVehicle{}, c.Vehicles...),
		History:       make([]usageRecord, 0, len(c.History)),
		LastPaymentID: c.LastPaymentID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	for _, u := range c.History {
		rec.History = append(rec.History, usageRecord(u))
	}
	return rec
}

func fromCustomerRecord(rec customerRecord) entities.Customer {
	if rec.ID == "" {
		return entities.Customer{}
	}
	c := entities.Customer{
		ID:            rec.ID,
		Document:      rec.Document,
		Name:          rec.Name,
		Phone:         rec.Phone,
		Email:         rec.Email,
		Subscription:  rec.Subscription,
		Vehicles:      append([]entities.CustomerVehicle{}, rec.Vehicles...),
		History:       make([]entities.UsageRecord, 0, len(rec.History)),
		LastPaymentID: rec.LastPaymentID,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
	for _, u := range rec.History {
		c.History = append(c.History, entities.UsageRecord(u))
	}
	return c
}
