package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/domain/tariff"
	"parking_service/internal/infrastructure/metrics"
	"parking_service/internal/usecase/interfaces"
	mock_interfaces "parking_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	uc        *SessionUseCase
	clock     *stubClock
	spaces    *mock_interfaces.MockISpaceRepository
	sessions  *mock_interfaces.MockISessionRepository
	customers *mock_interfaces.MockICustomerRepository
}

func newSessionFixture(t *testing.T) sessionFixture {
	ctrl := gomock.NewController(t)
	f := sessionFixture{
		clock:     &stubClock{t0},
		spaces:    mock_interfaces.NewMockISpaceRepository(ctrl),
		sessions:  mock_interfaces.NewMockISessionRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
	}
	rec := metrics.NewRecorder()
	spaceUC := NewSpaceUseCase(f.spaces, f.clock, rec)
	ledger := NewCustomerUseCase(f.customers, f.sessions, nil, SubscriptionPrices{}, f.clock)
	f.uc = NewSessionUseCase(spaceUC, f.sessions, f.customers, ledger, tariff.NewCalculator(tariff.Policy{}), f.clock, rec)
	f.uc.newID = func() string { return "s-1" }
	return f
}

func TestSessionUseCase_OpenSession(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		f := newSessionFixture(t)
		if _, err := f.uc.OpenSession(context.Background(), OpenSessionInput{Plate: " ", Category: "car"}); !errors.Is(err, ErrInvalidPlate) {
			t.Fatalf("expected ErrInvalidPlate, got %v", err)
		}
		if _, err := f.uc.OpenSession(context.Background(), OpenSessionInput{Plate: "ABC", Category: "bus"}); !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newSessionFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)

		_, err := f.uc.OpenSession(context.Background(), OpenSessionInput{Plate: "ABC123", Category: "car", CustomerID: "c-1"})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("already parked fast path", func(t *testing.T) {
		f := newSessionFixture(t)
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "ABC123").Return(entities.Session{ID: "old", Status: entities.SessionStatusActive}, nil)

		_, err := f.uc.OpenSession(context.Background(), OpenSessionInput{Plate: "abc123", Category: "car"})
		if !errors.Is(err, ErrAlreadyParked) {
			t.Fatalf("expected ErrAlreadyParked, got %v", err)
		}
	})

	t.Run("success links vehicle to customer", func(t *testing.T) {
		f := newSessionFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "ABC123").Return(entities.Session{}, nil)
		f.spaces.EXPECT().ListByCategory(gomock.Any(), entities.CategoryCar).Return([]entities.Space{{Code: "C1", Status: entities.SpaceStatusAvailable}}, nil)
		f.spaces.EXPECT().Occupy(gomock.Any(), "C1", "s-1").Return(entities.Space{Code: "C1", Status: entities.SpaceStatusOccupied, SessionID: "s-1"}, nil)
		f.sessions.EXPECT().CreateActive(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Session) (entities.Session, error) {
			if s.ID != "s-1" || s.SpaceCode != "C1" || s.Plate != "ABC123" || !s.EntryTime.Equal(t0) || s.EntryOperatorID != "op-1" {
				t.Fatalf("unexpected session: %+v", s)
			}
			return s, nil
		})
		f.customers.EXPECT().AddVehicle(gomock.Any(), "c-1", entities.CustomerVehicle{Plate: "ABC123", Category: entities.CategoryCar}).Return(entities.Customer{ID: "c-1"}, nil)

		res, err := f.uc.OpenSession(context.Background(), OpenSessionInput{Plate: "abc123 ", Category: "car", CustomerID: "c-1", OperatorID: "op-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.SpaceCode != "C1" || !res.Session.IsActive() {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("no space leaves nothing behind", func(t *testing.T) {
		f := newSessionFixture(t)
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "ABC123").Return(entities.Session{}, nil)
		f.spaces.EXPECT().ListByCategory(gomock.Any(), entities.CategoryMotorcycle).Return([]entities.Space{}, nil)

		_, err := f.uc.OpenSession(context.Background(), OpenSessionInput{Plate: "ABC123", Category: "motorcycle"})
		if !errors.Is(err, ErrNoSpaceAvailable) {
			t.Fatalf("expected ErrNoSpaceAvailable, got %v", err)
		}
	})

	t.Run("guard rejects duplicate and space is released", func(t *testing.T) {
		f := newSessionFixture(t)
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "ABC123").Return(entities.Session{}, nil)
		f.spaces.EXPECT().ListByCategory(gomock.Any(), entities.CategoryCar).Return([]entities.Space{{Code: "C1", Status: entities.SpaceStatusAvailable}}, nil)
		f.spaces.EXPECT().Occupy(gomock.Any(), "C1", "s-1").Return(entities.Space{Code: "C1", Status: entities.SpaceStatusOccupied, SessionID: "s-1"}, nil)
		f.sessions.EXPECT().CreateActive(gomock.Any(), gomock.Any()).Return(entities.Session{}, interfaces.ErrDuplicateKey)
		f.spaces.EXPECT().ReleaseIfOccupiedBy(gomock.Any(), "C1", "s-1").Return(entities.Space{Code: "C1", Status: entities.SpaceStatusAvailable}, nil)

		_, err := f.uc.OpenSession(context.Background(), OpenSessionInput{Plate: "ABC123", Category: "car"})
		if !errors.Is(err, ErrAlreadyParked) {
			t.Fatalf("expected ErrAlreadyParked, got %v", err)
		}
	})

	t.Run("store failure is compensated", func(t *testing.T) {
		f := newSessionFixture(t)
		boom := errors.New("boom")
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "ABC123").Return(entities.Session{}, nil)
		f.spaces.EXPECT().ListByCategory(gomock.Any(), entities.CategoryCar).Return([]entities.Space{{Code: "C1", Status: entities.SpaceStatusAvailable}}, nil)
		f.spaces.EXPECT().Occupy(gomock.Any(), "C1", "s-1").Return(entities.Space{Code: "C1", Status: entities.SpaceStatusOccupied, SessionID: "s-1"}, nil)
		f.sessions.EXPECT().CreateActive(gomock.Any(), gomock.Any()).Return(entities.Session{}, boom)
		f.spaces.EXPECT().ReleaseIfOccupiedBy(gomock.Any(), "C1", "s-1").Return(entities.Space{Code: "C1", Status: entities.SpaceStatusAvailable}, nil)

		if _, err := f.uc.OpenSession(context.Background(), OpenSessionInput{Plate: "ABC123", Category: "car"}); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestSessionUseCase_CloseSession(t *testing.T) {
	active := entities.Session{
		ID:         "s-1",
		Plate:      "ABC123",
		Category:   entities.CategoryCar,
		SpaceCode:  "C1",
		Status:     entities.SessionStatusActive,
		EntryTime:  t0,
		CustomerID: "c-1",
	}

	t.Run("no active session", func(t *testing.T) {
		f := newSessionFixture(t)
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "XYZ999").Return(entities.Session{}, nil)

		if _, err := f.uc.CloseSession(context.Background(), "xyz999", ""); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("clock before entry", func(t *testing.T) {
		f := newSessionFixture(t)
		f.clock.t = t0.Add(-time.Minute)
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "ABC123").Return(active, nil)

		if _, err := f.uc.CloseSession(context.Background(), "ABC123", ""); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("closed concurrently", func(t *testing.T) {
		f := newSessionFixture(t)
		f.clock.t = t0.Add(time.Hour)
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "ABC123").Return(active, nil)
		f.sessions.EXPECT().Close(gomock.Any(), gomock.Any()).Return(entities.Session{}, nil)

		if _, err := f.uc.CloseSession(context.Background(), "ABC123", ""); !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("bills ninety minutes as two hours and records usage", func(t *testing.T) {
		f := newSessionFixture(t)
		exit := t0.Add(90 * time.Minute)
		f.clock.t = exit
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "ABC123").Return(active, nil)
		f.sessions.EXPECT().Close(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Session) (entities.Session, error) {
			if s.Status != entities.SessionStatusClosed || s.Cost != 8000 || s.ExitTime == nil || !s.ExitTime.Equal(exit) || s.ExitOperatorID != "op-2" {
				t.Fatalf("unexpected closing session: %+v", s)
			}
			return s, nil
		})
		f.spaces.EXPECT().ReleaseIfOccupiedBy(gomock.Any(), "C1", "s-1").Return(entities.Space{Code: "C1", Status: entities.SpaceStatusAvailable}, nil)
		f.customers.EXPECT().AppendUsage(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, u entities.UsageRecord) (bool, error) {
			if u.Key != entities.UsageKey("c-1", t0, exit) || u.Cost != 8000 || u.SessionID != "s-1" {
				t.Fatalf("unexpected usage: %+v", u)
			}
			return true, nil
		})

		res, err := f.uc.CloseSession(context.Background(), "ABC123", "op-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Cost != 8000 || res.Elapsed != 90*time.Minute {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("ledger failure does not revert the close", func(t *testing.T) {
		f := newSessionFixture(t)
		f.clock.t = t0.Add(30 * time.Minute)
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "ABC123").Return(active, nil)
		f.sessions.EXPECT().Close(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Session) (entities.Session, error) {
			return s, nil
		})
		f.spaces.EXPECT().ReleaseIfOccupiedBy(gomock.Any(), "C1", "s-1").Return(entities.Space{Code: "C1", Status: entities.SpaceStatusAvailable}, nil)
		f.customers.EXPECT().AppendUsage(gomock.Any(), "c-1", gomock.Any()).Return(false, errors.New("throttled"))

		res, err := f.uc.CloseSession(context.Background(), "ABC123", "")
		if err != nil {
			t.Fatalf("expected success despite ledger failure, got %v", err)
		}
		if res.Cost != 4000 {
			t.Fatalf("expected 4000, got %d", res.Cost)
		}
	})

	t.Run("space rebound to another session is left alone", func(t *testing.T) {
		f := newSessionFixture(t)
		noCustomer := active
		noCustomer.CustomerID = ""
		f.clock.t = t0.Add(time.Hour)
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "ABC123").Return(noCustomer, nil)
		f.sessions.EXPECT().Close(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Session) (entities.Session, error) {
			return s, nil
		})
		f.spaces.EXPECT().ReleaseIfOccupiedBy(gomock.Any(), "C1", "s-1").Return(entities.Space{}, nil)
		f.spaces.EXPECT().GetByCode(gomock.Any(), "C1").Return(entities.Space{Code: "C1", Status: entities.SpaceStatusOccupied, SessionID: "s-2"}, nil)

		res, err := f.uc.CloseSession(context.Background(), "ABC123", "")
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if res.Cost != 4000 {
			t.Fatalf("expected 4000, got %d", res.Cost)
		}
	})

	t.Run("release failure is returned with the bill", func(t *testing.T) {
		f := newSessionFixture(t)
		noCustomer := active
		noCustomer.CustomerID = ""
		f.clock.t = t0.Add(time.Hour)
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "ABC123").Return(noCustomer, nil)
		f.sessions.EXPECT().Close(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Session) (entities.Session, error) {
			return s, nil
		})
		f.spaces.EXPECT().ReleaseIfOccupiedBy(gomock.Any(), "C1", "s-1").Return(entities.Space{}, errors.New("timeout"))

		res, err := f.uc.CloseSession(context.Background(), "ABC123", "")
		if err == nil {
			t.Fatalf("expected release error")
		}
		if res.Session.Status != entities.SessionStatusClosed || res.Cost != 4000 {
			t.Fatalf("expected closed session in result, got %+v", res)
		}
	})
}

func TestSessionUseCase_Lookup(t *testing.T) {
	t.Run("falls back to latest closed", func(t *testing.T) {
		f := newSessionFixture(t)
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "ABC123").Return(entities.Session{}, nil)
		f.sessions.EXPECT().GetLatestByPlate(gomock.Any(), "ABC123").Return(entities.Session{ID: "s-0", Status: entities.SessionStatusClosed}, nil)

		s, err := f.uc.LookupSession(context.Background(), "abc123")
		if err != nil || s.ID != "s-0" {
			t.Fatalf("expected s-0, got %+v %v", s, err)
		}
	})

	t.Run("never seen", func(t *testing.T) {
		f := newSessionFixture(t)
		f.sessions.EXPECT().GetActiveByPlate(gomock.Any(), "ABC123").Return(entities.Session{}, nil)
		f.sessions.EXPECT().GetLatestByPlate(gomock.Any(), "ABC123").Return(entities.Session{}, nil)

		if _, err := f.uc.LookupSession(context.Background(), "ABC123"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestSessionUseCase_PurgeSession(t *testing.T) {
	t.Run("active session releases its space first", func(t *testing.T) {
		f := newSessionFixture(t)
		f.sessions.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Session{ID: "s-1", SpaceCode: "C1", Status: entities.SessionStatusActive}, nil)
		gomock.InOrder(
			f.spaces.EXPECT().ReleaseIfOccupiedBy(gomock.Any(), "C1", "s-1").Return(entities.Space{Code: "C1", Status: entities.SpaceStatusAvailable}, nil),
			f.sessions.EXPECT().Delete(gomock.Any(), "s-1").Return(nil),
		)

		if err := f.uc.PurgeSession(context.Background(), "s-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newSessionFixture(t)
		f.sessions.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Session{}, nil)

		if err := f.uc.PurgeSession(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
