package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"parking_service/internal/domain/entities"
	mock_interfaces "parking_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testPrices = SubscriptionPrices{Daily: 5000, Monthly: 100000}

func TestCustomerUseCase_Register(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil, nil, testPrices, &stubClock{t0})
		if _, err := uc.Register(context.Background(), CustomerInput{Name: "Ana"}); !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("expected ErrInvalidDocument, got %v", err)
		}
		if _, err := uc.Register(context.Background(), CustomerInput{Document: "1"}); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
		if _, err := uc.Register(context.Background(), CustomerInput{Document: "1", Name: "Ana", Subscription: "weekly"}); !errors.Is(err, ErrInvalidSubscription) {
			t.Fatalf("expected ErrInvalidSubscription, got %v", err)
		}
	})

	t.Run("duplicate document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, nil, testPrices, &stubClock{t0})
		repo.EXPECT().GetByDocument(gomock.Any(), "123").Return(entities.Customer{ID: "c-0"}, nil)

		if _, err := uc.Register(context.Background(), CustomerInput{Document: "123", Name: "Ana"}); !errors.Is(err, ErrCustomerAlreadyExists) {
			t.Fatalf("expected ErrCustomerAlreadyExists, got %v", err)
		}
	})

	t.Run("subscription is charged through the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCustomerUseCase(repo, nil, gateway, testPrices, &stubClock{t0})
		uc.newID = func() string { return "c-1" }

		repo.EXPECT().GetByDocument(gomock.Any(), "123").Return(entities.Customer{}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var body map[string]interface{}
			if err := json.Unmarshal(payload, &body); err != nil {
				t.Fatalf("invalid payload: %v", err)
			}
			if body["transaction_amount"].(float64) != 1000 || body["external_reference"] != "c-1" {
				t.Fatalf("unexpected payload: %v", body)
			}
			return "pay-1", "approved", json.RawMessage(`{}`), nil
		})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Customer) (entities.Customer, error) {
			return c, nil
		})

		c, err := uc.Register(context.Background(), CustomerInput{Document: "123", Name: "Ana", Email: "ANA@Mail.com", Subscription: "monthly"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.LastPaymentID != "pay-1" || c.Email != "ana@mail.com" {
			t.Fatalf("unexpected customer: %+v", c)
		}
		if !c.Subscription.ActiveAt(t0.Add(29*24*time.Hour)) || c.Subscription.ActiveAt(t0.AddDate(0, 1, 0)) {
			t.Fatalf("unexpected monthly window: %+v", c.Subscription)
		}
	})

	t.Run("declined payment creates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCustomerUseCase(repo, nil, gateway, testPrices, &stubClock{t0})

		repo.EXPECT().GetByDocument(gomock.Any(), "123").Return(entities.Customer{}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-2", "rejected", nil, nil)

		if _, err := uc.Register(context.Background(), CustomerInput{Document: "123", Name: "Ana", Subscription: "daily"}); !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
	})
}

func TestCustomerUseCase_Subscriptions(t *testing.T) {
	expiredStart := t0.AddDate(0, 0, -3)
	expired := entities.Customer{ID: "c-1", Name: "Ana", Subscription: entities.NewSubscription(entities.SubscriptionDaily, expiredStart)}

	t.Run("renew rejects none", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil, nil, testPrices, &stubClock{t0})
		if _, err := uc.RenewSubscription(context.Background(), "c-1", "none"); !errors.Is(err, ErrInvalidSubscription) {
			t.Fatalf("expected ErrInvalidSubscription, got %v", err)
		}
	})

	t.Run("renew without gateway replaces window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, nil, testPrices, &stubClock{t0})

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(expired, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Customer) (entities.Customer, error) {
			return c, nil
		})

		c, err := uc.RenewSubscription(context.Background(), "c-1", "daily")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.Subscription.Start.Equal(t0) || !c.Subscription.ActiveAt(t0.Add(23*time.Hour)) {
			t.Fatalf("expected fresh window from now, got %+v", c.Subscription)
		}
	})

	t.Run("update with same kind renews an expired window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, nil, testPrices, &stubClock{t0})

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(expired, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Customer) (entities.Customer, error) {
			return c, nil
		})

		kind := "daily"
		c, err := uc.Update(context.Background(), "c-1", CustomerUpdate{Subscription: &kind})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.Subscription.ActiveAt(t0) {
			t.Fatalf("expected active subscription after update")
		}
	})

	t.Run("update rejects blank name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, nil, testPrices, &stubClock{t0})
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(expired, nil)

		blank := "  "
		if _, err := uc.Update(context.Background(), "c-1", CustomerUpdate{Name: &blank}); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})
}

func TestCustomerUseCase_RecordUsage(t *testing.T) {
	in := UsageInput{CustomerID: "c-1", SessionID: "s-1", EntryTime: t0, ExitTime: t0.Add(time.Hour), Elapsed: time.Hour, Cost: 4000}

	t.Run("negative duration", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil, nil, testPrices, &stubClock{t0})
		bad := in
		bad.ExitTime = t0.Add(-time.Hour)
		if _, err := uc.RecordUsage(context.Background(), bad); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("expected ErrInvalidDuration, got %v", err)
		}
	})

	t.Run("duplicate reports false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, nil, testPrices, &stubClock{t0})
		repo.EXPECT().AppendUsage(gomock.Any(), "c-1", gomock.Any()).Return(false, nil)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)

		appended, err := uc.RecordUsage(context.Background(), in)
		if err != nil || appended {
			t.Fatalf("expected (false, nil), got (%v, %v)", appended, err)
		}
	})

	t.Run("missing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, nil, testPrices, &stubClock{t0})
		repo.EXPECT().AppendUsage(gomock.Any(), "c-1", gomock.Any()).Return(false, nil)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)

		if _, err := uc.RecordUsage(context.Background(), in); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestCustomerUseCase_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	sessions := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewCustomerUseCase(repo, sessions, nil, testPrices, &stubClock{t0})

	repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{
		ID:      "c-1",
		History: []entities.UsageRecord{{Cost: 4000}, {Cost: 8000}},
	}, nil)
	sessions.EXPECT().ListByCustomer(gomock.Any(), "c-1").Return([]entities.Session{
		{ID: "s-3", Status: entities.SessionStatusActive},
		{ID: "s-1", Status: entities.SessionStatusClosed},
	}, nil)

	h, err := uc.History(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.TotalSpent != 12000 || len(h.Usage) != 2 || len(h.ActiveSessions) != 1 || h.ActiveSessions[0].ID != "s-3" {
		t.Fatalf("unexpected history: %+v", h)
	}
}
