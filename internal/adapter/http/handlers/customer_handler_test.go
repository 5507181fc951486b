package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"parking_service/internal/adapter/http/handlers/mocks"
	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestCustomerHandler_Register(t *testing.T) {
	t.Run("missing document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, fixedClock{testNow})

		r := newTestRouter()
		r.POST("/v1/customers", h.RegisterCustomer)

		w := doJSON(r, http.MethodPost, "/v1/customers", `{"name":"Ana"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, fixedClock{testNow})
		uc.EXPECT().
			Register(gomock.Any(), usecase.CustomerInput{Document: "123", Name: "Ana", Subscription: "monthly"}).
			Return(entities.Customer{
				ID:           "c-1",
				Document:     "123",
				Name:         "Ana",
				Subscription: entities.NewSubscription(entities.SubscriptionMonthly, testNow),
			}, nil)

		r := newTestRouter()
		r.POST("/v1/customers", h.RegisterCustomer)

		w := doJSON(r, http.MethodPost, "/v1/customers", `{"document":"123","name":"Ana","subscription":"monthly"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Subscription struct {
				Active bool `json:"active"`
			} `json:"subscription"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if !body.Subscription.Active {
			t.Fatalf("expected active subscription")
		}
	})

	t.Run("duplicate document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, fixedClock{testNow})
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.Customer{}, usecase.ErrCustomerAlreadyExists)

		r := newTestRouter()
		r.POST("/v1/customers", h.RegisterCustomer)

		w := doJSON(r, http.MethodPost, "/v1/customers", `{"document":"123","name":"Ana"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_Update(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, fixedClock{testNow})

		r := newTestRouter()
		r.PUT("/v1/customers/:id", h.UpdateCustomer)

		w := doJSON(r, http.MethodPut, "/v1/customers/c-1", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, fixedClock{testNow})
		uc.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.CustomerUpdate) (entities.Customer, error) {
				if in.Name == nil || *in.Name != "Bia" || in.Phone != nil {
					t.Fatalf("unexpected update: %+v", in)
				}
				return entities.Customer{ID: "c-1", Name: "Bia"}, nil
			})

		r := newTestRouter()
		r.PUT("/v1/customers/:id", h.UpdateCustomer)

		w := doJSON(r, http.MethodPut, "/v1/customers/c-1", `{"name":"Bia"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_Subscription(t *testing.T) {
	t.Run("declined payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, fixedClock{testNow})
		uc.EXPECT().RenewSubscription(gomock.Any(), "c-1", "daily").Return(entities.Customer{}, usecase.ErrPaymentDeclined)

		r := newTestRouter()
		r.POST("/v1/customers/:id/subscription", h.RenewSubscription)

		w := doJSON(r, http.MethodPost, "/v1/customers/c-1/subscription", `{"kind":"daily"}`)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, fixedClock{testNow})
		uc.EXPECT().History(gomock.Any(), "c-1").Return(usecase.CustomerHistory{
			Customer:   entities.Customer{ID: "c-1"},
			Usage:      []entities.UsageRecord{{SessionID: "s-1", Cost: 4000}, {SessionID: "s-2", Cost: 8000}},
			TotalSpent: 12000,
		}, nil)

		r := newTestRouter()
		r.GET("/v1/customers/:id/history", h.History)

		w := doJSON(r, http.MethodGet, "/v1/customers/c-1/history", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Usage      []interface{} `json:"usage"`
			TotalSpent int64         `json:"total_spent"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body.Usage) != 2 || body.TotalSpent != 12000 {
			t.Fatalf("unexpected history: %+v", body)
		}
	})

	t.Run("get by document not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, fixedClock{testNow})
		uc.EXPECT().GetByDocument(gomock.Any(), "999").Return(entities.Customer{}, usecase.ErrCustomerNotFound)

		r := newTestRouter()
		r.GET("/v1/customers/document/:document", h.GetCustomerByDocument)

		w := doJSON(r, http.MethodGet, "/v1/customers/document/999", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
