package boltstore_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"parking_service/internal/adapter/persistence/boltstore"
	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *boltstore.DB {
	t.Helper()
	db, err := boltstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSpaceStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create rejects duplicate code", func(t *testing.T) {
		s := boltstore.NewSpaceStore(newTestDB(t))
		sp := entities.Space{Code: "C1", Category: entities.CategoryCar, Status: entities.SpaceStatusAvailable}
		_, err := s.Create(ctx, sp)
		require.NoError(t, err)
		_, err = s.Create(ctx, sp)
		require.ErrorIs(t, err, interfaces.ErrDuplicateKey)
	})

	t.Run("missing code yields zero space", func(t *testing.T) {
		s := boltstore.NewSpaceStore(newTestDB(t))
		got, err := s.GetByCode(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.Code)
	})

	t.Run("occupy only succeeds from available", func(t *testing.T) {
		s := boltstore.NewSpaceStore(newTestDB(t))
		_, err := s.Create(ctx, entities.Space{Code: "C1", Category: entities.CategoryCar, Status: entities.SpaceStatusAvailable})
		require.NoError(t, err)

		first, err := s.Occupy(ctx, "C1", "s1")
		require.NoError(t, err)
		assert.Equal(t, entities.SpaceStatusOccupied, first.Status)
		assert.Equal(t, "s1", first.SessionID)

		second, err := s.Occupy(ctx, "C1", "s2")
		require.NoError(t, err)
		assert.Empty(t, second.Code)

		stored, err := s.GetByCode(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, "s1", stored.SessionID)
	})

	t.Run("concurrent occupy has one winner", func(t *testing.T) {
		s := boltstore.NewSpaceStore(newTestDB(t))
		_, err := s.Create(ctx, entities.Space{Code: "C1", Category: entities.CategoryCar, Status: entities.SpaceStatusAvailable})
		require.NoError(t, err)

		var wins int32
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				got, err := s.Occupy(ctx, "C1", fmt.Sprintf("s%d", n))
				if err == nil && got.Code != "" {
					atomic.AddInt32(&wins, 1)
				}
			}(i)
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins)
	})

	t.Run("set status clears session and delete refuses occupied", func(t *testing.T) {
		s := boltstore.NewSpaceStore(newTestDB(t))
		_, err := s.Create(ctx, entities.Space{Code: "C1", Category: entities.CategoryCar, Status: entities.SpaceStatusAvailable})
		require.NoError(t, err)
		_, err = s.Occupy(ctx, "C1", "s1")
		require.NoError(t, err)

		deleted, err := s.DeleteUnoccupied(ctx, "C1")
		require.NoError(t, err)
		assert.False(t, deleted)

		released, err := s.SetStatus(ctx, "C1", entities.SpaceStatusAvailable)
		require.NoError(t, err)
		assert.Empty(t, released.SessionID)

		deleted, err = s.DeleteUnoccupied(ctx, "C1")
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("release is scoped to the bound session", func(t *testing.T) {
		s := boltstore.NewSpaceStore(newTestDB(t))
		_, err := s.Create(ctx, entities.Space{Code: "C1", Category: entities.CategoryCar, Status: entities.SpaceStatusAvailable})
		require.NoError(t, err)
		_, err = s.Occupy(ctx, "C1", "s2")
		require.NoError(t, err)

		stale, err := s.ReleaseIfOccupiedBy(ctx, "C1", "s1")
		require.NoError(t, err)
		assert.Empty(t, stale.Code)
		stored, err := s.GetByCode(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, entities.SpaceStatusOccupied, stored.Status)
		assert.Equal(t, "s2", stored.SessionID)

		released, err := s.ReleaseIfOccupiedBy(ctx, "C1", "s2")
		require.NoError(t, err)
		assert.Equal(t, entities.SpaceStatusAvailable, released.Status)
		assert.Empty(t, released.SessionID)

		again, err := s.ReleaseIfOccupiedBy(ctx, "C1", "s2")
		require.NoError(t, err)
		assert.Empty(t, again.Code)
	})

	t.Run("list by category", func(t *testing.T) {
		s := boltstore.NewSpaceStore(newTestDB(t))
		for _, sp := range []entities.Space{
			{Code: "C1", Category: entities.CategoryCar, Status: entities.SpaceStatusAvailable},
			{Code: "M1", Category: entities.CategoryMotorcycle, Status: entities.SpaceStatusAvailable},
			{Code: "C2", Category: entities.CategoryCar, Status: entities.SpaceStatusMaintenance},
		} {
			_, err := s.Create(ctx, sp)
			require.NoError(t, err)
		}
		cars, err := s.ListByCategory(ctx, entities.CategoryCar)
		require.NoError(t, err)
		assert.Len(t, cars, 2)
		all, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	entry := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	active := func(id, plate string, at time.Time) entities.Session {
		return entities.Session{
			ID:        id,
			Plate:     plate,
			Category:  entities.CategoryCar,
			SpaceCode: "C1",
			Status:    entities.SessionStatusActive,
			EntryTime: at,
		}
	}

	t.Run("one active session per plate", func(t *testing.T) {
		s := boltstore.NewSessionStore(newTestDB(t))
		_, err := s.CreateActive(ctx, active("s1", "ABC123", entry))
		require.NoError(t, err)
		_, err = s.CreateActive(ctx, active("s2", "ABC123", entry))
		require.ErrorIs(t, err, interfaces.ErrDuplicateKey)

		got, err := s.GetActiveByPlate(ctx, "ABC123")
		require.NoError(t, err)
		assert.Equal(t, "s1", got.ID)
	})

	t.Run("close is conditional and frees the plate", func(t *testing.T) {
		s := boltstore.NewSessionStore(newTestDB(t))
		sess, err := s.CreateActive(ctx, active("s1", "ABC123", entry))
		require.NoError(t, err)

		exit := entry.Add(90 * time.Minute)
		sess.ExitTime = &exit
		sess.Elapsed = 90 * time.Minute
		sess.Cost = 8000
		closed, err := s.Close(ctx, sess)
		require.NoError(t, err)
		assert.Equal(t, entities.SessionStatusClosed, closed.Status)
		assert.Equal(t, int64(8000), closed.Cost)

		again, err := s.Close(ctx, sess)
		require.NoError(t, err)
		assert.Empty(t, again.ID)

		none, err := s.GetActiveByPlate(ctx, "ABC123")
		require.NoError(t, err)
		assert.Empty(t, none.ID)

		_, err = s.CreateActive(ctx, active("s2", "ABC123", exit.Add(time.Minute)))
		require.NoError(t, err)
	})

	t.Run("latest by plate and listing order", func(t *testing.T) {
		s := boltstore.NewSessionStore(newTestDB(t))
		first, err := s.CreateActive(ctx, active("s1", "ABC123", entry))
		require.NoError(t, err)
		exit := entry.Add(time.Hour)
		first.ExitTime = &exit
		_, err = s.Close(ctx, first)
		require.NoError(t, err)
		_, err = s.CreateActive(ctx, active("s2", "ABC123", entry.Add(2*time.Hour)))
		require.NoError(t, err)

		latest, err := s.GetLatestByPlate(ctx, "ABC123")
		require.NoError(t, err)
		assert.Equal(t, "s2", latest.ID)

		closed, err := s.ListByStatus(ctx, entities.SessionStatusClosed)
		require.NoError(t, err)
		require.Len(t, closed, 1)
		assert.Equal(t, "s1", closed[0].ID)

		all, err := s.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "s1", all[0].ID)
	})

	t.Run("delete drops the plate guard", func(t *testing.T) {
		s := boltstore.NewSessionStore(newTestDB(t))
		_, err := s.CreateActive(ctx, active("s1", "ABC123", entry))
		require.NoError(t, err)
		require.NoError(t, s.Delete(ctx, "s1"))

		got, err := s.GetActiveByPlate(ctx, "ABC123")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
		require.NoError(t, s.Delete(ctx, "s1"))
	})
}

func TestCustomerStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	customer := entities.Customer{
		ID:           "c1",
		Document:     "123",
		Name:         "Ana",
		Subscription: entities.Subscription{Kind: entities.SubscriptionNone},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	t.Run("document is unique", func(t *testing.T) {
		s := boltstore.NewCustomerStore(newTestDB(t))
		_, err := s.Create(ctx, customer)
		require.NoError(t, err)
		other := customer
		other.ID = "c2"
		_, err = s.Create(ctx, other)
		require.ErrorIs(t, err, interfaces.ErrDuplicateKey)

		got, err := s.GetByDocument(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, "c1", got.ID)
	})

	t.Run("append usage is idempotent on key", func(t *testing.T) {
		s := boltstore.NewCustomerStore(newTestDB(t))
		_, err := s.Create(ctx, customer)
		require.NoError(t, err)

		rec := entities.UsageRecord{
			Key:       entities.UsageKey("c1", now, now.Add(time.Hour)),
			EntryTime: now,
			ExitTime:  now.Add(time.Hour),
			Elapsed:   time.Hour,
			Cost:      4000,
		}
		ok, err := s.AppendUsage(ctx, "c1", rec)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = s.AppendUsage(ctx, "c1", rec)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := s.GetByID(ctx, "c1")
		require.NoError(t, err)
		require.Len(t, got.History, 1)
		assert.True(t, got.HasUsage(rec.Key))
	})

	t.Run("append to missing customer reports false", func(t *testing.T) {
		s := boltstore.NewCustomerStore(newTestDB(t))
		ok, err := s.AppendUsage(ctx, "ghost", entities.UsageRecord{Key: "k"})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("update keeps history and vehicles", func(t *testing.T) {
		s := boltstore.NewCustomerStore(newTestDB(t))
		_, err := s.Create(ctx, customer)
		require.NoError(t, err)
		_, err = s.AddVehicle(ctx, "c1", entities.CustomerVehicle{Plate: "ABC123", Category: entities.CategoryCar})
		require.NoError(t, err)
		again, err := s.AddVehicle(ctx, "c1", entities.CustomerVehicle{Plate: "ABC123", Category: entities.CategoryCar})
		require.NoError(t, err)
		assert.Len(t, again.Vehicles, 1)

		changed := customer
		changed.Name = "Ana Maria"
		changed.Subscription = entities.NewSubscription(entities.SubscriptionMonthly, now)
		updated, err := s.Update(ctx, changed)
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", updated.Name)
		assert.Equal(t, entities.SubscriptionMonthly, updated.Subscription.Kind)
		assert.Len(t, updated.Vehicles, 1)

		missing, err := s.Update(ctx, entities.Customer{ID: "ghost"})
		require.NoError(t, err)
		assert.Empty(t, missing.ID)
	})
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	s := boltstore.NewUserStore(newTestDB(t))

	u := entities.User{ID: "u1", Name: "Op", Email: "op@lot.test", PasswordHash: "hash", Role: entities.RoleOperator, Active: true}
	_, err := s.Create(ctx, u)
	require.NoError(t, err)

	dup := u
	dup.ID = "u2"
	_, err = s.Create(ctx, dup)
	require.ErrorIs(t, err, interfaces.ErrDuplicateKey)

	got, err := s.GetByEmail(ctx, "op@lot.test")
	require.NoError(t, err)
	assert.Equal(t, "hash", got.PasswordHash)

	updated, err := s.UpdatePassword(ctx, "u1", "new-hash")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)

	missing, err := s.UpdatePassword(ctx, "ghost", "x")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
