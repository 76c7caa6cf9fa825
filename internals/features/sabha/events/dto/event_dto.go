package dto

import (
	"time"

	"github.com/google/uuid"

	"sabhaku_backend/internals/features/sabha/events/model"
)

type CreateEventRequest struct {
	SabhaID uuid.UUID `json:"sabha_id" validate:"required"`
	Name    string    `json:"name"     validate:"required"`
	Date    string    `json:"date"     validate:"required"`
}

// SabhaSummary carries the owning sabha's identity fields on event listings.
type SabhaSummary struct {
	SabhaID   uuid.UUID `json:"sabha_id"`
	SabhaNo   string    `json:"sabha_no"`
	SabhaType string    `json:"sabha_type"`
	SabhaDate time.Time `json:"sabha_date"`
}

type EventResponse struct {
	EventID   uuid.UUID     `json:"event_id"`
	SabhaID   uuid.UUID     `json:"sabha_id"`
	Name      string        `json:"name"`
	Date      time.Time     `json:"date"`
	Sabha     *SabhaSummary `json:"sabha,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

func NewEventResponse(m model.EventModel, sabha *SabhaSummary) EventResponse {
	return EventResponse{
		EventID:   m.EventID,
		SabhaID:   m.EventSabhaID,
		Name:      m.EventName,
		Date:      m.EventDate,
		Sabha:     sabha,
		CreatedAt: m.CreatedAt,
	}
}
