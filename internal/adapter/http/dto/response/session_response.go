package response

import (
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase"
)

type SessionResponse struct {
	ID             string     `json:"id"`
	Plate          string     `json:"plate"`
	Category       string     `json:"category"`
	SpaceCode      string     `json:"space_code"`
	Status         string     `json:"status"`
	EntryTime      time.Time  `json:"entry_time"`
	ExitTime       *time.Time `json:"exit_time,omitempty"`
	ElapsedHours   float64    `json:"elapsed_hours"`
	Cost           int64      `json:"cost"`
	CostAmount     float64    `json:"cost_amount"`
	CustomerID     string     `json:"customer_id,omitempty"`
	EntryOperator  string     `json:"entry_operator_id,omitempty"`
	ExitOperatorID string     `json:"exit_operator_id,omitempty"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		ID:             s.ID,
		Plate:          s.Plate,
		Category:       string(s.Category),
		SpaceCode:      s.SpaceCode,
		Status:         string(s.Status),
		EntryTime:      s.EntryTime,
		ExitTime:       s.ExitTime,
		ElapsedHours:   Hours(s.Elapsed),
		Cost:           s.Cost,
		CostAmount:     Amount(s.Cost),
		CustomerID:     s.CustomerID,
		EntryOperator:  s.EntryOperatorID,
		ExitOperatorID: s.ExitOperatorID,
	}
}

func FromSessions(sessions []entities.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, FromSession(s))
	}
	return out
}

type EntryResponse struct {
	Message   string          `json:"message"`
	SpaceCode string          `json:"space_code"`
	Session   SessionResponse `json:"session"`
}

func FromOpenSession(r usecase.OpenSessionResult) EntryResponse {
	return EntryResponse{
		Message:   "entry registered",
		SpaceCode: r.SpaceCode,
		Session:   FromSession(r.Session),
	}
}

// ExitResponse carries the bill. Cost is in minor units, CostAmount in currency.
type ExitResponse struct {
	Message        string    `json:"message"`
	Plate          string    `json:"plate"`
	SpaceCode      string    `json:"space_code"`
	EntryTime      time.Time `json:"entry_time"`
	ExitTime       time.Time `json:"exit_time"`
	ElapsedHours   float64   `json:"elapsed_hours"`
	ElapsedMinutes int64     `json:"elapsed_minutes"`
	Cost           int64     `json:"cost"`
	CostAmount     float64   `json:"cost_amount"`
}

func FromCloseSession(r usecase.CloseSessionResult) ExitResponse {
	res := ExitResponse{
		Message:        "exit registered",
		Plate:          r.Session.Plate,
		SpaceCode:      r.Session.SpaceCode,
		EntryTime:      r.Session.EntryTime,
		ElapsedHours:   Hours(r.Elapsed),
		ElapsedMinutes: int64(r.Elapsed / time.Minute),
		Cost:           r.Cost,
		CostAmount:     Amount(r.Cost),
	}
	if r.Session.ExitTime != nil {
		res.ExitTime = *r.Session.ExitTime
	}
	return res
}

// ExitErrorResponse is sent when the exit was billed and committed but a later
// step failed. Exit carries the committed bill.
type ExitErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Exit    ExitResponse `json:"exit"`
}

func FromCloseSessionFailure(code, message string, r usecase.CloseSessionResult) ExitErrorResponse {
	exit := FromCloseSession(r)
	exit.Message = "exit billed, space release pending"
	return ExitErrorResponse{Code: code, Message: message, Exit: exit}
}
