package response

import (
	"time"

	"parking_service/internal/domain/entities"
)

type LocationResponse struct {
	Section  string `json:"section,omitempty"`
	Level    int    `json:"level,omitempty"`
	Position string `json:"position,omitempty"`
}

type SpaceResponse struct {
	Code      string           `json:"code"`
	Category  string           `json:"category"`
	Status    string           `json:"status"`
	SessionID string           `json:"session_id,omitempty"`
	Location  LocationResponse `json:"location"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func FromSpace(s entities.Space) SpaceResponse {
	return SpaceResponse{
		Code:      s.Code,
		Category:  string(s.Category),
		Status:    string(s.Status),
		SessionID: s.SessionID,
		Location: LocationResponse{
			Section:  s.Location.Section,
			Level:    s.Location.Level,
			Position: s.Location.Position,
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromSpaces(spaces []entities.Space) []SpaceResponse {
	out := make([]SpaceResponse, 0, len(spaces))
	for _, s := range spaces {
		out = append(out, FromSpace(s))
	}
	return out
}
