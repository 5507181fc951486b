package request

import "strings"

// OpenSessionRequest registers a vehicle entry.
type OpenSessionRequest struct {
	Plate      string `json:"plate" binding:"required"`
	Category   string `json:"category" binding:"required"`
	CustomerID string `json:"customer_id"`
}

func (r OpenSessionRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}
