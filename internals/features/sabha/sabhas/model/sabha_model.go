package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AttendanceMark is one member's presence record for one sabha. Marks live
// embedded in the sabha row and are never referenced independently.
type AttendanceMark struct {
	MemberID  uuid.UUID `json:"member_id"`
	IsPresent bool      `json:"is_present"`
	MarkedAt  time.Time `json:"marked_at"`
}

// AttendanceList is stored as a single jsonb column so the whole collection is
// written with the owning row in one statement.
type AttendanceList []AttendanceMark

func (l AttendanceList) Value() (driver.Value, error) {
	if l == nil {
		l = AttendanceList{}
	}
	return json.Marshal(l)
}

func (l *AttendanceList) Scan(src interface{}) error {
	if src == nil {
		*l = AttendanceList{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("attendance list: unsupported scan source")
	}
	if len(b) == 0 {
		*l = AttendanceList{}
		return nil
	}
	return json.Unmarshal(b, l)
}

func (AttendanceList) GormDataType() string { return "jsonb" }

type SabhaModel struct {
	SabhaID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:sabha_id" json:"sabha_id"`

	// Assigned exactly once, at first persistence.
	SabhaNo string `gorm:"uniqueIndex;not null;column:sabha_no" json:"sabha_no"`

	SabhaType      string     `gorm:"column:sabha_type"                    json:"sabha_type"`
	SabhaDate      time.Time  `gorm:"not null;index;column:sabha_date"     json:"sabha_date"`
	SabhaStartTime *time.Time `gorm:"column:sabha_start_time"              json:"sabha_start_time,omitempty"`
	SabhaEndTime   *time.Time `gorm:"column:sabha_end_time"                json:"sabha_end_time,omitempty"`

	SabhaLeader    string `gorm:"column:sabha_leader"         json:"sabha_leader,omitempty"`
	SahSanchalak   string `gorm:"column:sabha_sah_sanchalak"  json:"sabha_sah_sanchalak,omitempty"`
	Sahayak        string `gorm:"column:sabha_sahayak"        json:"sabha_sahayak,omitempty"`
	Yajman         string `gorm:"column:sabha_yajman"         json:"sabha_yajman,omitempty"`
	Prashad        string `gorm:"column:sabha_prashad"        json:"sabha_prashad,omitempty"`
	Topic          string `gorm:"column:sabha_topic"          json:"sabha_topic,omitempty"`
	SabhaSanchalan string `gorm:"column:sabha_sanchalan"      json:"sabha_sanchalan,omitempty"`
	Vakta          string `gorm:"column:sabha_vakta"          json:"sabha_vakta,omitempty"`

	IsCancelled           bool   `gorm:"not null;default:false;column:sabha_is_cancelled" json:"sabha_is_cancelled"`
	ReasonForCancellation string `gorm:"column:sabha_reason_for_cancellation"             json:"sabha_reason_for_cancellation,omitempty"`

	Area string `gorm:"not null;index;column:sabha_area" json:"sabha_area"`

	Visibility     string         `gorm:"not null;default:'ROLE_BASED';column:sabha_visibility" json:"sabha_visibility"`
	VisibleToRoles pq.StringArray `gorm:"type:text[];column:sabha_visible_to_roles"             json:"sabha_visible_to_roles,omitempty"`
	VisibleToUsers pq.StringArray `gorm:"type:text[];column:sabha_visible_to_users"             json:"sabha_visible_to_users,omitempty"`

	Notes string `gorm:"column:sabha_notes" json:"sabha_notes,omitempty"`

	Attendance AttendanceList `gorm:"type:jsonb;column:sabha_attendance" json:"sabha_attendance"`

	// Derived on every persist, never client-settable.
	TotalPresent int `gorm:"not null;default:0;column:sabha_total_present" json:"sabha_total_present"`
	TotalAbsent  int `gorm:"not null;default:0;column:sabha_total_absent"  json:"sabha_total_absent"`

	CreatedAt time.Time  `gorm:"column:sabha_created_at;autoCreateTime" json:"sabha_created_at"`
	UpdatedAt *time.Time `gorm:"column:sabha_updated_at;autoUpdateTime" json:"sabha_updated_at,omitempty"`
}

func (SabhaModel) TableName() string { return "sabhas" }
