package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel is a named sub-activity of a sabha. Events are created (often
// implicitly, by find-or-create) and never mutated afterwards.
type EventModel struct {
	EventID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:event_id" json:"event_id"`
	EventSabhaID uuid.UUID `gorm:"type:uuid;not null;index;column:event_sabha_id"                 json:"event_sabha_id"`
	EventName    string    `gorm:"not null;column:event_name"                                     json:"event_name"`
	EventDate    time.Time `gorm:"not null;index;column:event_date"                               json:"event_date"`

	CreatedAt time.Time  `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	UpdatedAt *time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at,omitempty"`
}

func (EventModel) TableName() string { return "events" }
