package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownSubscriptionKind = errors.New("unknown subscription kind")

type SubscriptionKind string

const (
	SubscriptionNone    SubscriptionKind = "none"
	SubscriptionDaily   SubscriptionKind = "daily"
	SubscriptionMonthly SubscriptionKind = "monthly"
)

var SubscriptionKinds = []SubscriptionKind{SubscriptionNone, SubscriptionDaily, SubscriptionMonthly}

// ParseSubscriptionKind maps an empty string to none.
func ParseSubscriptionKind(raw string) (SubscriptionKind, error) {
	k := SubscriptionKind(strings.ToLower(strings.TrimSpace(raw)))
	switch k {
	case "":
		return SubscriptionNone, nil
	case SubscriptionNone, SubscriptionDaily, SubscriptionMonthly:
		return k, nil
	}
	return "", ErrUnknownSubscriptionKind
}

// Subscription is only meaningful when Kind is not none. The window is [Start, End).
type Subscription struct {
	Kind  SubscriptionKind `json:"kind"`
	Start *time.Time       `json:"start,omitempty"`
	End   *time.Time       `json:"end,omitempty"`
}

// NewSubscription builds a fresh window starting at now. Renewal always replaces
// the previous window wholesale.
func NewSubscription(kind SubscriptionKind, now time.Time) Subscription {
	if kind == SubscriptionNone || kind == "" {
		return Subscription{Kind: SubscriptionNone}
	}
	start := now
	end := now.AddDate(0, 0, 1)
	if kind == SubscriptionMonthly {
		end = now.AddDate(0, 1, 0)
	}
	return Subscription{Kind: kind, Start: &start, End: &end}
}

func (s Subscription) ActiveAt(t time.Time) bool {
	if s.Kind == SubscriptionNone || s.Start == nil || s.End == nil {
		return false
	}
	return !t.Before(*s.Start) && t.Before(*s.End)
}

type CustomerVehicle struct {
	Plate    string   `json:"plate"`
	Category Category `json:"category"`
}

// UsageRecord is one ledger line: a completed session of the customer.
type UsageRecord struct {
	Key       string        `json:"-"`
	SessionID string        `json:"session_id,omitempty"`
	EntryTime time.Time     `json:"entry_time"`
	ExitTime  time.Time     `json:"exit_time"`
	Elapsed   time.Duration `json:"elapsed"`
	Cost      int64         `json:"cost"`
}

// UsageKey is the ledger idempotency key for a session closure.
func UsageKey(customerID string, entry, exit time.Time) string {
	return fmt.Sprintf("%s|%s|%s", customerID, entry.UTC().Format(time.RFC3339Nano), exit.UTC().Format(time.RFC3339Nano))
}

// Customer is a registered lot customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (document-index): document
type Customer struct {
	ID            string            `json:"id"`
	Document      string            `json:"document"`
	Name          string            `json:"name"`
	Phone         string            `json:"phone,omitempty"`
	Email         string            `json:"email,omitempty"`
	Subscription  Subscription      `json:"subscription"`
	Vehicles      []CustomerVehicle `json:"vehicles"`
	History       []UsageRecord     `json:"history"`
	LastPaymentID string            `json:"last_payment_id,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (c Customer) HasUsage(key string) bool {
	for _, u := range c.History {
		if u.Key == key {
			return true
		}
	}
	return false
}

func (c Customer) HasVehicle(plate string) bool {
	for _, v := range c.Vehicles {
		if v.Plate == plate {
			return true
		}
	}
	return false
}
