// Package boltstore implements the repository interfaces on an embedded BoltDB
// file. It backs local runs (STORE_DRIVER=bolt) and integration tests.
//
// Every compare-and-set runs inside a single bolt write transaction. Bolt
// allows one writer at a time, so the check and the write can not interleave
// with another request.
package boltstore

import (
	"context"
	"encoding/json"
	"time"

	bolt "github.com/boltdb/bolt"
)

var (
	bucketSpaces       = []byte("spaces")
	bucketSessions     = []byte("sessions")
	bucketActivePlates = []byte("active_plates")
	bucketCustomers    = []byte("customers")
	bucketCustomerDocs = []byte("customer_documents")
	bucketUsers        = []byte("users")
	bucketUserEmails   = []byte("user_emails")
	allBuckets         = [][]byte{bucketSpaces, bucketSessions, bucketActivePlates, bucketCustomers, bucketCustomerDocs, bucketUsers, bucketUserEmails}
)

// DB wraps the bolt file shared by all stores of this package.
type DB struct {
	db *bolt.DB
}

// Open opens (or creates) the database at path and ensures every bucket exists.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db: db}, nil
}

// Close releases the database file lock.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) view(ctx context.Context, fn func(tx *bolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.db.View(fn)
}

func (d *DB) update(ctx context.Context, fn func(tx *bolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.db.Update(fn)
}

func getJSON(b *bolt.Bucket, key string, v interface{}) (bool, error) {
	raw := b.Get([]byte(key))
	if raw == nil {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func putJSON(b *bolt.Bucket, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Put([]byte(key), data)
}

func forEachJSON[T any](b *bolt.Bucket, fn func(T) error) error {
	return b.ForEach(func(_, v []byte) error {
		var rec T
		if err := json.Unmarshal(v, &rec); err != nil {
			return err
		}
		return fn(rec)
	})
}
