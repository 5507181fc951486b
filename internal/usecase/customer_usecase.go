package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/infrastructure/logging"
	"parking_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// SubscriptionPrices are charged on renewal, in minor currency units.
type SubscriptionPrices struct {
	Daily   int64
	Monthly int64
}

func (p SubscriptionPrices) For(kind entities.SubscriptionKind) int64 {
	switch kind {
	case entities.SubscriptionDaily:
		return p.Daily
	case entities.SubscriptionMonthly:
		return p.Monthly
	}
	return 0
}

type UsageInput struct {
	CustomerID string
	SessionID  string
	EntryTime  time.Time
	ExitTime   time.Time
	Elapsed    time.Duration
	Cost       int64
}

// ILedger is the append side of the customer ledger used when a session closes.
type ILedger interface {
	RecordUsage(ctx context.Context, in UsageInput) (bool, error)
}

type CustomerInput struct {
	Document     string
	Name         string
	Phone        string
	Email        string
	Subscription string
}

type CustomerUpdate struct {
	Name         *string
	Phone        *string
	Email        *string
	Subscription *string
}

type CustomerHistory struct {
	Customer       entities.Customer
	Usage          []entities.UsageRecord
	ActiveSessions []entities.Session
	TotalSpent     int64
}

// ICustomerUseCase manages customers, their subscriptions and usage ledger.

type ICustomerUseCase interface {
	ILedger
	Register(ctx context.Context, in CustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByDocument(ctx context.Context, document string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, id string, in CustomerUpdate) (entities.Customer, error)
	RenewSubscription(ctx context.Context, id string, kind string) (entities.Customer, error)
	History(ctx context.Context, id string) (CustomerHistory, error)
}

type CustomerUseCase struct {
	repo     interfaces.ICustomerRepository
	sessions interfaces.ISessionRepository
	gateway  interfaces.IPaymentGateway
	prices   SubscriptionPrices
	clock    interfaces.IClock
	newID    func() string
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

// NewCustomerUseCase builds the use case. gateway may be nil, in which case
// renewals are not charged.
func NewCustomerUseCase(
	repo interfaces.ICustomerRepository,
	sessions interfaces.ISessionRepository,
	gateway interfaces.IPaymentGateway,
	prices SubscriptionPrices,
	clock interfaces.IClock,
) *CustomerUseCase {
	return &CustomerUseCase{
		repo:     repo,
		sessions: sessions,
		gateway:  gateway,
		prices:   prices,
		clock:    clock,
		newID:    uuid.NewString,
	}
}

func (u *CustomerUseCase) Register(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	document := strings.TrimSpace(in.Document)
	if document == "" {
		return entities.Customer{}, ErrInvalidDocument
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Customer{}, ErrInvalidName
	}
	email, err := normalizeEmail(in.Email, false)
	if err != nil {
		return entities.Customer{}, err
	}
	kind, err := entities.ParseSubscriptionKind(in.Subscription)
	if err != nil {
		return entities.Customer{}, ErrInvalidSubscription
	}

	existing, err := u.repo.GetByDocument(ctx, document)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID != "" {
		return entities.Customer{}, ErrCustomerAlreadyExists
	}

	now := u.clock.Now().UTC()
	c := entities.Customer{
		ID:           u.newID(),
		Document:     document,
		Name:         name,
		Phone:        strings.TrimSpace(in.Phone),
		Email:        email,
		Subscription: entities.NewSubscription(kind, now),
		Vehicles:     []entities.CustomerVehicle{},
		History:      []entities.UsageRecord{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if kind != entities.SubscriptionNone {
		paymentID, err := u.charge(ctx, c, kind)
		if err != nil {
			return entities.Customer{}, err
		}
		c.LastPaymentID = paymentID
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Customer{}, ErrCustomerAlreadyExists
		}
		return entities.Customer{}, err
	}
	logging.WithFields(ctx, map[string]interface{}{"customer_id": created.ID, "subscription": kind}).Info("[customer][register] created")
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) GetByDocument(ctx context.Context, document string) (entities.Customer, error) {
	document = strings.TrimSpace(document)
	if document == "" {
		return entities.Customer{}, ErrInvalidDocument
	}
	c, err := u.repo.GetByDocument(ctx, document)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

// Update changes profile fields. Asking for a subscription kind renews the
// window when there is none yet, when the kind changes or when it has expired.
func (u *CustomerUseCase) Update(ctx context.Context, id string, in CustomerUpdate) (entities.Customer, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entities.Customer{}, ErrInvalidName
		}
		c.Name = name
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		email, err := normalizeEmail(*in.Email, false)
		if err != nil {
			return entities.Customer{}, err
		}
		c.Email = email
	}

	now := u.clock.Now().UTC()
	if in.Subscription != nil {
		kind, err := entities.ParseSubscriptionKind(*in.Subscription)
		if err != nil {
			return entities.Customer{}, ErrInvalidSubscription
		}
		switch {
		case kind == entities.SubscriptionNone:
			c.Subscription = entities.NewSubscription(kind, now)
		case kind != c.Subscription.Kind || !c.Subscription.ActiveAt(now):
			paymentID, err := u.charge(ctx, c, kind)
			if err != nil {
				return entities.Customer{}, err
			}
			c.Subscription = entities.NewSubscription(kind, now)
			if paymentID != "" {
				c.LastPaymentID = paymentID
			}
		}
	}
	c.UpdatedAt = now

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

// RenewSubscription replaces the subscription window with a fresh one starting now.
func (u *CustomerUseCase) RenewSubscription(ctx context.Context, id string, kind string) (entities.Customer, error) {
	k, err := entities.ParseSubscriptionKind(kind)
	if err != nil || k == entities.SubscriptionNone {
		return entities.Customer{}, ErrInvalidSubscription
	}
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}

	paymentID, err := u.charge(ctx, c, k)
	if err != nil {
		return entities.Customer{}, err
	}
	now := u.clock.Now().UTC()
	c.Subscription = entities.NewSubscription(k, now)
	if paymentID != "" {
		c.LastPaymentID = paymentID
	}
	c.UpdatedAt = now

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	logging.WithFields(ctx, map[string]interface{}{
		"customer_id": c.ID,
		"kind":        k,
		"end":         updated.Subscription.End,
		"payment_id":  paymentID,
	}).Info("[customer][renew] subscription renewed")
	return updated, nil
}

func (u *CustomerUseCase) History(ctx context.Context, id string) (CustomerHistory, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return CustomerHistory{}, err
	}
	sessions, err := u.sessions.ListByCustomer(ctx, c.ID)
	if err != nil {
		return CustomerHistory{}, err
	}
	active := make([]entities.Session, 0)
	for _, s := range sessions {
		if s.IsActive() {
			active = append(active, s)
		}
	}
	sortSessionsByEntry(active)

	var total int64
	for _, r := range c.History {
		total += r.Cost
	}
	usage := c.History
	if usage == nil {
		usage = []entities.UsageRecord{}
	}
	return CustomerHistory{Customer: c, Usage: usage, ActiveSessions: active, TotalSpent: total}, nil
}

// RecordUsage appends a closed session to the customer's ledger. It is
// idempotent on (customer, entry, exit): a repeated call reports false.
func (u *CustomerUseCase) RecordUsage(ctx context.Context, in UsageInput) (bool, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return false, ErrInvalidID
	}
	if in.Elapsed < 0 || in.ExitTime.Before(in.EntryTime) {
		return false, ErrInvalidDuration
	}
	if in.Cost < 0 {
		return false, fmt.Errorf("%w: cost must not be negative", ErrInvalidArgument)
	}

	record := entities.UsageRecord{
		Key:       entities.UsageKey(customerID, in.EntryTime, in.ExitTime),
		SessionID: in.SessionID,
		EntryTime: in.EntryTime.UTC(),
		ExitTime:  in.ExitTime.UTC(),
		Elapsed:   in.Elapsed,
		Cost:      in.Cost,
	}
	appended, err := u.repo.AppendUsage(ctx, customerID, record)
	if err != nil {
		return false, err
	}
	if appended {
		logging.WithFields(ctx, map[string]interface{}{"customer_id": customerID, "session_id": in.SessionID, "cost": in.Cost}).Info("[customer][ledger] usage recorded")
		return true, nil
	}

	// Not appended: either a duplicate or the customer is gone.
	c, err := u.repo.GetByID(ctx, customerID)
	if err != nil {
		return false, err
	}
	if c.ID == "" {
		return false, ErrCustomerNotFound
	}
	logging.WithFields(ctx, map[string]interface{}{"customer_id": customerID, "session_id": in.SessionID}).Info("[customer][ledger] duplicate usage ignored")
	return false, nil
}

// charge bills a subscription through the payment gateway. Without a gateway it
// returns an empty payment id.
func (u *CustomerUseCase) charge(ctx context.Context, c entities.Customer, kind entities.SubscriptionKind) (string, error) {
	if u.gateway == nil {
		return "", nil
	}
	amount := u.prices.For(kind)
	if amount <= 0 {
		return "", nil
	}
	reqMap := map[string]any{
		"transaction_amount": float64(amount) / 100,
		"description":        fmt.Sprintf("Parking %s subscription", kind),
		"external_reference": c.ID,
		"payment_method_id":  "pix",
	}
	payer := map[string]any{"first_name": c.Name}
	if c.Email != "" {
		payer["email"] = c.Email
	}
	if c.Document != "" {
		payer["identification"] = map[string]any{"type": "CPF", "number": c.Document}
	}
	reqMap["payer"] = payer

	payload, err := json.Marshal(reqMap)
	if err != nil {
		return "", err
	}
	log := logging.WithFields(ctx, map[string]interface{}{"customer_id": c.ID, "kind": kind, "amount": amount})
	paymentID, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.WithError(err).Error("[customer][charge] gateway call failed")
		return "", err
	}
	switch strings.ToLower(status) {
	case "rejected", "cancelled", "refunded", "charged_back":
		log.WithFields(map[string]interface{}{"payment_id": paymentID, "status": status}).Warn("[customer][charge] payment declined")
		return "", ErrPaymentDeclined
	}
	log.WithFields(map[string]interface{}{"payment_id": paymentID, "status": status}).Info("[customer][charge] payment created")
	return paymentID, nil
}

// normalizeEmail lowercases and trims. An empty email is accepted unless required.
func normalizeEmail(raw string, required bool) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		if required {
			return "", ErrInvalidEmail
		}
		return "", nil
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return "", ErrInvalidEmail
	}
	return email, nil
}
