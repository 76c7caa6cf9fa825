package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"sabhaku_backend/internals/features/sabha/sabhas/model"
	helper "sabhaku_backend/internals/helpers"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// CreateSabhaRequest is decoded once into a fully-typed model; all date and
// attendance coercion happens in ToModel, not in the controller.
type CreateSabhaRequest struct {
	SabhaType      string `json:"sabha_type" validate:"omitempty,oneof='Teen assembly' 'Youth assembly - C'"`
	SabhaDate      string `json:"sabha_date"`
	SabhaStartTime string `json:"sabha_start_time"`
	SabhaEndTime   string `json:"sabha_end_time"`

	SabhaLeader    string `json:"sabha_leader"`
	SahSanchalak   string `json:"sabha_sah_sanchalak"`
	Sahayak        string `json:"sabha_sahayak"`
	Yajman         string `json:"sabha_yajman"`
	Prashad        string `json:"sabha_prashad"`
	Topic          string `json:"sabha_topic"`
	SabhaSanchalan string `json:"sabha_sanchalan"`
	Vakta          string `json:"sabha_vakta"`

	IsCancelled           *bool  `json:"sabha_is_cancelled"`
	ReasonForCancellation string `json:"sabha_reason_for_cancellation"`

	Area string `json:"sabha_area" validate:"required"`

	Visibility     string   `json:"sabha_visibility" validate:"omitempty,oneof=PUBLIC REGISTERED ROLE_BASED USER_SPECIFIC"`
	VisibleToRoles []string `json:"sabha_visible_to_roles"`
	VisibleToUsers []string `json:"sabha_visible_to_users" validate:"omitempty,dive,uuid4"`

	Notes string `json:"sabha_notes"`

	// Accepts a JSON array or a string-encoded JSON array; malformed input
	// decodes to an empty list.
	Attendance json.RawMessage `json:"attendance"`
}

func (r *CreateSabhaRequest) ToModel() *model.SabhaModel {
	m := &model.SabhaModel{
		SabhaType:             r.SabhaType,
		SabhaDate:             time.Now(),
		SabhaLeader:           r.SabhaLeader,
		SahSanchalak:          r.SahSanchalak,
		Sahayak:               r.Sahayak,
		Yajman:                r.Yajman,
		Prashad:               r.Prashad,
		Topic:                 r.Topic,
		SabhaSanchalan:        r.SabhaSanchalan,
		Vakta:                 r.Vakta,
		ReasonForCancellation: r.ReasonForCancellation,
		Area:                  r.Area,
		Visibility:            "ROLE_BASED",
		VisibleToRoles:        r.VisibleToRoles,
		VisibleToUsers:        r.VisibleToUsers,
		Notes:                 r.Notes,
		Attendance:            DecodeAttendance(r.Attendance),
	}
	if t := helper.ParseDateLenient(r.SabhaDate); t != nil {
		m.SabhaDate = *t
	}
	m.SabhaStartTime = helper.ParseDateLenient(r.SabhaStartTime)
	m.SabhaEndTime = helper.ParseDateLenient(r.SabhaEndTime)
	if r.IsCancelled != nil {
		m.IsCancelled = *r.IsCancelled
	}
	if r.Visibility != "" {
		m.Visibility = r.Visibility
	}
	return m
}

// UpdateSabhaRequest is a shallow field replacement: only supplied fields
// touch the record.
type UpdateSabhaRequest struct {
	SabhaType      *string `json:"sabha_type" validate:"omitempty,oneof='Teen assembly' 'Youth assembly - C' ''"`
	SabhaDate      *string `json:"sabha_date"`
	SabhaStartTime *string `json:"sabha_start_time"`
	SabhaEndTime   *string `json:"sabha_end_time"`

	SabhaLeader    *string `json:"sabha_leader"`
	SahSanchalak   *string `json:"sabha_sah_sanchalak"`
	Sahayak        *string `json:"sabha_sahayak"`
	Yajman         *string `json:"sabha_yajman"`
	Prashad        *string `json:"sabha_prashad"`
	Topic          *string `json:"sabha_topic"`
	SabhaSanchalan *string `json:"sabha_sanchalan"`
	Vakta          *string `json:"sabha_vakta"`

	IsCancelled           *bool   `json:"sabha_is_cancelled"`
	ReasonForCancellation *string `json:"sabha_reason_for_cancellation"`

	Area *string `json:"sabha_area"`

	Visibility     *string   `json:"sabha_visibility" validate:"omitempty,oneof=PUBLIC REGISTERED ROLE_BASED USER_SPECIFIC"`
	VisibleToRoles *[]string `json:"sabha_visible_to_roles"`
	VisibleToUsers *[]string `json:"sabha_visible_to_users" validate:"omitempty,dive,uuid4"`

	Notes *string `json:"sabha_notes"`

	Attendance json.RawMessage `json:"attendance"`
}

func (r *UpdateSabhaRequest) Apply(m *model.SabhaModel) {
	if r.SabhaType != nil {
		m.SabhaType = *r.SabhaType
	}
	if r.SabhaDate != nil {
		if t := helper.ParseDateLenient(*r.SabhaDate); t != nil {
			m.SabhaDate = *t
		}
	}
	if r.SabhaStartTime != nil {
		m.SabhaStartTime = helper.ParseDateLenient(*r.SabhaStartTime)
	}
	if r.SabhaEndTime != nil {
		m.SabhaEndTime = helper.ParseDateLenient(*r.SabhaEndTime)
	}
	if r.SabhaLeader != nil {
		m.SabhaLeader = *r.SabhaLeader
	}
	if r.SahSanchalak != nil {
		m.SahSanchalak = *r.SahSanchalak
	}
	if r.Sahayak != nil {
		m.Sahayak = *r.Sahayak
	}
	if r.Yajman != nil {
		m.Yajman = *r.Yajman
	}
	if r.Prashad != nil {
		m.Prashad = *r.Prashad
	}
	if r.Topic != nil {
		m.Topic = *r.Topic
	}
	if r.SabhaSanchalan != nil {
		m.SabhaSanchalan = *r.SabhaSanchalan
	}
	if r.Vakta != nil {
		m.Vakta = *r.Vakta
	}
	if r.IsCancelled != nil {
		m.IsCancelled = *r.IsCancelled
	}
	if r.ReasonForCancellation != nil {
		m.ReasonForCancellation = *r.ReasonForCancellation
	}
	if r.Area != nil {
		m.Area = *r.Area
	}
	if r.Visibility != nil {
		m.Visibility = *r.Visibility
	}
	if r.VisibleToRoles != nil {
		m.VisibleToRoles = *r.VisibleToRoles
	}
	if r.VisibleToUsers != nil {
		m.VisibleToUsers = *r.VisibleToUsers
	}
	if r.Notes != nil {
		m.Notes = *r.Notes
	}
	if len(r.Attendance) > 0 {
		m.Attendance = DecodeAttendance(r.Attendance)
	}
}

type attendanceInput struct {
	MemberID  string `json:"member_id"`
	IsPresent bool   `json:"is_present"`
	MarkedAt  string `json:"marked_at"`
}

// DecodeAttendance accepts either a JSON array or a string holding a JSON
// array (clients sending multipart forms serialize it). Malformed payloads
// and rows without a valid member id decode to nothing.
func DecodeAttendance(raw json.RawMessage) model.AttendanceList {
	list := model.AttendanceList{}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return list
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return list
		}
		trimmed = []byte(inner)
	}

	var rows []attendanceInput
	if err := json.Unmarshal(trimmed, &rows); err != nil {
		return list
	}

	now := time.Now()
	for _, row := range rows {
		memberID, err := uuid.Parse(row.MemberID)
		if err != nil {
			continue
		}
		mark := model.AttendanceMark{
			MemberID:  memberID,
			IsPresent: row.IsPresent,
			MarkedAt:  now,
		}
		if t := helper.ParseDateLenient(row.MarkedAt); t != nil {
			mark.MarkedAt = *t
		}
		list = append(list, mark)
	}
	return list
}

// MarkAttendanceRequest marks a single member.
type MarkAttendanceRequest struct {
	MemberID  uuid.UUID `json:"member_id" validate:"required"`
	IsPresent bool      `json:"is_present"`
}

type BulkMarkItem struct {
	MemberID  uuid.UUID `json:"member_id"`
	IsPresent bool      `json:"is_present"`
}

type MarkBulkAttendanceRequest struct {
	AttendanceList []BulkMarkItem `json:"attendance_list" validate:"required,min=1"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// MemberSummary carries the display fields joined onto attendance entries.
type MemberSummary struct {
	MemberID    uuid.UUID `json:"member_id"`
	Name        string    `json:"name"`
	SmkNo       string    `json:"smk_no"`
	HajriNumber string    `json:"hajri_number,omitempty"`
	Mobile      string    `json:"mobile,omitempty"`
}

type AttendanceEntryResponse struct {
	MemberID  uuid.UUID      `json:"member_id"`
	IsPresent bool           `json:"is_present"`
	MarkedAt  time.Time      `json:"marked_at"`
	Member    *MemberSummary `json:"member,omitempty"`
}

type SabhaResponse struct {
	SabhaID        uuid.UUID  `json:"sabha_id"`
	SabhaNo        string     `json:"sabha_no"`
	SabhaType      string     `json:"sabha_type"`
	SabhaDate      time.Time  `json:"sabha_date"`
	SabhaStartTime *time.Time `json:"sabha_start_time,omitempty"`
	SabhaEndTime   *time.Time `json:"sabha_end_time,omitempty"`

	SabhaLeader    string `json:"sabha_leader,omitempty"`
	SahSanchalak   string `json:"sabha_sah_sanchalak,omitempty"`
	Sahayak        string `json:"sabha_sahayak,omitempty"`
	Yajman         string `json:"sabha_yajman,omitempty"`
	Prashad        string `json:"sabha_prashad,omitempty"`
	Topic          string `json:"sabha_topic,omitempty"`
	SabhaSanchalan string `json:"sabha_sanchalan,omitempty"`
	Vakta          string `json:"sabha_vakta,omitempty"`

	IsCancelled           bool   `json:"sabha_is_cancelled"`
	ReasonForCancellation string `json:"sabha_reason_for_cancellation,omitempty"`

	Area string `json:"sabha_area"`

	Visibility     string   `json:"sabha_visibility"`
	VisibleToRoles []string `json:"sabha_visible_to_roles,omitempty"`
	VisibleToUsers []string `json:"sabha_visible_to_users,omitempty"`

	Notes string `json:"sabha_notes,omitempty"`

	Attendance   []AttendanceEntryResponse `json:"attendance"`
	TotalPresent int                       `json:"total_present"`
	TotalAbsent  int                       `json:"total_absent"`

	CreatedAt time.Time  `json:"sabha_created_at"`
	UpdatedAt *time.Time `json:"sabha_updated_at,omitempty"`
}

// NewSabhaResponse expands the embedded marks with whatever member summaries
// could be resolved.
func NewSabhaResponse(m model.SabhaModel, members map[uuid.UUID]MemberSummary) SabhaResponse {
	attendance := make([]AttendanceEntryResponse, 0, len(m.Attendance))
	for _, att := range m.Attendance {
		entry := AttendanceEntryResponse{
			MemberID:  att.MemberID,
			IsPresent: att.IsPresent,
			MarkedAt:  att.MarkedAt,
		}
		if summary, ok := members[att.MemberID]; ok {
			s := summary
			entry.Member = &s
		}
		attendance = append(attendance, entry)
	}

	return SabhaResponse{
		SabhaID:               m.SabhaID,
		SabhaNo:               m.SabhaNo,
		SabhaType:             m.SabhaType,
		SabhaDate:             m.SabhaDate,
		SabhaStartTime:        m.SabhaStartTime,
		SabhaEndTime:          m.SabhaEndTime,
		SabhaLeader:           m.SabhaLeader,
		SahSanchalak:          m.SahSanchalak,
		Sahayak:               m.Sahayak,
		Yajman:                m.Yajman,
		Prashad:               m.Prashad,
		Topic:                 m.Topic,
		SabhaSanchalan:        m.SabhaSanchalan,
		Vakta:                 m.Vakta,
		IsCancelled:           m.IsCancelled,
		ReasonForCancellation: m.ReasonForCancellation,
		Area:                  m.Area,
		Visibility:            m.Visibility,
		VisibleToRoles:        m.VisibleToRoles,
		VisibleToUsers:        m.VisibleToUsers,
		Notes:                 m.Notes,
		Attendance:            attendance,
		TotalPresent:          m.TotalPresent,
		TotalAbsent:           m.TotalAbsent,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

type SabhaReportResponse struct {
	SabhaNo        string                    `json:"sabha_no"`
	SabhaType      string                    `json:"sabha_type"`
	SabhaDate      time.Time                 `json:"sabha_date"`
	TotalPresent   int                       `json:"total_present"`
	TotalAbsent    int                       `json:"total_absent"`
	TotalMembers   int                       `json:"total_members"`
	PresentMembers []AttendanceEntryResponse `json:"present_members"`
	AbsentMembers  []AttendanceEntryResponse `json:"absent_members"`
}

// NewSabhaReportResponse partitions the expanded attendance into present and
// absent sub-lists.
func NewSabhaReportResponse(m model.SabhaModel, members map[uuid.UUID]MemberSummary) SabhaReportResponse {
	expanded := NewSabhaResponse(m, members).Attendance
	present := make([]AttendanceEntryResponse, 0, len(expanded))
	absent := make([]AttendanceEntryResponse, 0, len(expanded))
	for _, entry := range expanded {
		if entry.IsPresent {
			present = append(present, entry)
		} else {
			absent = append(absent, entry)
		}
	}
	return SabhaReportResponse{
		SabhaNo:        m.SabhaNo,
		SabhaType:      m.SabhaType,
		SabhaDate:      m.SabhaDate,
		TotalPresent:   m.TotalPresent,
		TotalAbsent:    m.TotalAbsent,
		TotalMembers:   len(m.Attendance),
		PresentMembers: present,
		AbsentMembers:  absent,
	}
}
