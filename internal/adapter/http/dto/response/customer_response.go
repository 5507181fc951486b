package response

import (
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase"
)

type SubscriptionResponse struct {
	Kind   string     `json:"kind"`
	Start  *time.Time `json:"start,omitempty"`
	End    *time.Time `json:"end,omitempty"`
	Active bool       `json:"active"`
}

type VehicleResponse struct {
	Plate    string `json:"plate"`
	Category string `json:"category"`
}

type UsageResponse struct {
	SessionID    string    `json:"session_id,omitempty"`
	EntryTime    time.Time `json:"entry_time"`
	ExitTime     time.Time `json:"exit_time"`
	ElapsedHours float64   `json:"elapsed_hours"`
	Cost         int64     `json:"cost"`
	CostAmount   float64   `json:"cost_amount"`
}

type CustomerResponse struct {
	ID            string               `json:"id"`
	Document      string               `json:"document"`
	Name          string               `json:"name"`
	Phone         string               `json:"phone,omitempty"`
	Email         string               `json:"email,omitempty"`
	Subscription  SubscriptionResponse `json:"subscription"`
	Vehicles      []VehicleResponse    `json:"vehicles"`
	UsageCount    int                  `json:"usage_count"`
	LastPaymentID string               `json:"last_payment_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// FromCustomer maps a customer. now decides whether the subscription is active.
func FromCustomer(c entities.Customer, now time.Time) CustomerResponse {
	res := CustomerResponse{
		ID:       c.ID,
		Document: c.Document,
		Name:     c.Name,
		Phone:    c.Phone,
		Email:    c.Email,
		Subscription: SubscriptionResponse{
			Kind:   string(c.Subscription.Kind),
			Start:  c.Subscription.Start,
			End:    c.Subscription.End,
			Active: c.Subscription.ActiveAt(now),
		},
		Vehicles:      make([]VehicleResponse, 0, len(c.Vehicles)),
		UsageCount:    len(c.History),
		LastPaymentID: c.LastPaymentID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	for _, v := range c.Vehicles {
		res.Vehicles = append(res.Vehicles, VehicleResponse{Plate: v.Plate, Category: string(v.Category)})
	}
	return res
}

func FromCustomers(customers []entities.Customer, now time.Time) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c, now))
	}
	return out
}

func FromUsage(u entities.UsageRecord) UsageResponse {
	return UsageResponse{
		SessionID:    u.SessionID,
		EntryTime:    u.EntryTime,
		ExitTime:     u.ExitTime,
		ElapsedHours: Hours(u.Elapsed),
		Cost:         u.Cost,
		CostAmount:   Amount(u.Cost),
	}
}

type CustomerHistoryResponse struct {
	Customer         CustomerResponse  `json:"customer"`
	Usage            []UsageResponse   `json:"usage"`
	ActiveSessions   []SessionResponse `json:"active_sessions"`
	TotalSpent       int64             `json:"total_spent"`
	TotalSpentAmount float64           `json:"total_spent_amount"`
}

func FromCustomerHistory(h usecase.CustomerHistory, now time.Time) CustomerHistoryResponse {
	res := CustomerHistoryResponse{
		Customer:         FromCustomer(h.Customer, now),
		Usage:            make([]UsageResponse, 0, len(h.Usage)),
		ActiveSessions:   FromSessions(h.ActiveSessions),
		TotalSpent:       h.TotalSpent,
		TotalSpentAmount: Amount(h.TotalSpent),
	}
	for _, u := range h.Usage {
		res.Usage = append(res.Usage, FromUsage(u))
	}
	return res
}
