package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EventResponseModel holds one respondent's answer vector for one event. The
// sabha id is denormalized from the event for query convenience. A response is
// identified either by a member reference or, for ad-hoc respondents, by the
// is_new flag plus a name or mobile number.
type EventResponseModel struct {
	EventResponseID      uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:event_response_id" json:"event_response_id"`
	EventResponseEventID uuid.UUID  `gorm:"type:uuid;not null;index;column:event_response_event_id"                 json:"event_response_event_id"`
	EventResponseSabhaID uuid.UUID  `gorm:"type:uuid;not null;index;column:event_response_sabha_id"                 json:"event_response_sabha_id"`
	EventResponseMember  *uuid.UUID `gorm:"type:uuid;index;column:event_response_member_id"                         json:"event_response_member_id,omitempty"`

	IsNew  bool   `gorm:"not null;default:false;column:event_response_is_new" json:"event_response_is_new"`
	Name   string `gorm:"column:event_response_name"                          json:"event_response_name,omitempty"`
	Mobile string `gorm:"column:event_response_mobile"                        json:"event_response_mobile,omitempty"`

	// Always exactly 4 entries.
	Answers pq.BoolArray `gorm:"type:boolean[];not null;column:event_response_answers" json:"event_response_answers"`

	CreatedAt time.Time  `gorm:"column:event_response_created_at;autoCreateTime" json:"event_response_created_at"`
	UpdatedAt *time.Time `gorm:"column:event_response_updated_at;autoUpdateTime" json:"event_response_updated_at,omitempty"`
}

func (EventResponseModel) TableName() string { return "event_responses" }
