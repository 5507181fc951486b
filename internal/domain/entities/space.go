package entities

import (
	"errors"
	"strings"
	"time"
)

var ErrUnknownSpaceStatus = errors.New("unknown space status")

type SpaceStatus string

const (
	SpaceStatusAvailable   SpaceStatus = "available"
	SpaceStatusOccupied    SpaceStatus = "occupied"
	SpaceStatusMaintenance SpaceStatus = "maintenance"
)

// SpaceStatuses lists every valid space status in report order.
var SpaceStatuses = []SpaceStatus{SpaceStatusAvailable, SpaceStatusOccupied, SpaceStatusMaintenance}

func ParseSpaceStatus(raw string) (SpaceStatus, error) {
	s := SpaceStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case SpaceStatusAvailable, SpaceStatusOccupied, SpaceStatusMaintenance:
		return s, nil
	}
	return "", ErrUnknownSpaceStatus
}

type Location struct {
	Section  string `json:"section,omitempty"`
	Level    int    `json:"level,omitempty"`
	Position string `json:"position,omitempty"`
}

// Space is a physical parking slot.
//
// Invariant: SessionID is non-empty if and only if Status is occupied. The space
// holds only the identity of its occupant, never the session itself.
//
// Storage model (DynamoDB):
//   - PK: code
//   - GSI (category-code-index): category / code
type Space struct {
	Code      string      `json:"code"`
	Category  Category    `json:"category"`
	Status    SpaceStatus `json:"status"`
	SessionID string      `json:"session_id,omitempty"`
	Location  Location    `json:"location"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (s Space) IsOccupied() bool {
	return s.Status == SpaceStatusOccupied
}
