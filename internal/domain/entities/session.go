package entities

import (
	"strings"
	"time"
)

type SessionStatus string

const (
	SessionStatusActive SessionStatus = "active"
	SessionStatusClosed SessionStatus = "closed"
)

// Session is one park-in to park-out stay of a vehicle.
//
// Lifecycle: created active on entry, mutated exactly once on exit (ExitTime,
// Elapsed, Cost, Status). Closed is terminal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-entry_time-index): status / entry_time
//   - GSI (plate-entry_time-index): plate / entry_time
//   - active plate guard table, PK: plate
type Session struct {
	ID              string        `json:"id"`
	Plate           string        `json:"plate"`
	Category        Category      `json:"category"`
	SpaceCode       string        `json:"space_code"`
	Status          SessionStatus `json:"status"`
	EntryTime       time.Time     `json:"entry_time"`
	ExitTime        *time.Time    `json:"exit_time,omitempty"`
	Elapsed         time.Duration `json:"elapsed"`
	Cost            int64         `json:"cost"`
	CustomerID      string        `json:"customer_id,omitempty"`
	EntryOperatorID string        `json:"entry_operator_id,omitempty"`
	ExitOperatorID  string        `json:"exit_operator_id,omitempty"`
}

func (s Session) IsActive() bool {
	return s.Status == SessionStatusActive
}

// NormalizePlate trims and uppercases a plate. Plates are compared only in this form.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
