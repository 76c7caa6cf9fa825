package dto

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sabhaku_backend/internals/features/sabha/sabhas/model"
)

func TestDecodeAttendance(t *testing.T) {
	memberA := uuid.New()
	memberB := uuid.New()

	t.Run("plain array", func(t *testing.T) {
		raw := json.RawMessage(fmt.Sprintf(
			`[{"member_id":"%s","is_present":true,"marked_at":"2026-01-10T19:00:00Z"},{"member_id":"%s","is_present":false}]`,
			memberA, memberB,
		))
		list := DecodeAttendance(raw)
		require.Len(t, list, 2)
		assert.Equal(t, memberA, list[0].MemberID)
		assert.True(t, list[0].IsPresent)
		assert.Equal(t, time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC), list[0].MarkedAt)
		assert.False(t, list[1].IsPresent)
		assert.False(t, list[1].MarkedAt.IsZero(), "missing marked_at defaults to now")
	})

	t.Run("string-encoded array", func(t *testing.T) {
		inner := fmt.Sprintf(`[{"member_id":"%s","is_present":true}]`, memberA)
		raw, err := json.Marshal(inner)
		require.NoError(t, err)

		list := DecodeAttendance(raw)
		require.Len(t, list, 1)
		assert.Equal(t, memberA, list[0].MemberID)
	})

	t.Run("rows with invalid member ids are skipped", func(t *testing.T) {
		raw := json.RawMessage(fmt.Sprintf(
			`[{"member_id":"not-a-uuid","is_present":true},{"member_id":"%s","is_present":true},{"is_present":true}]`,
			memberB,
		))
		list := DecodeAttendance(raw)
		require.Len(t, list, 1)
		assert.Equal(t, memberB, list[0].MemberID)
	})

	t.Run("malformed payloads decode to empty", func(t *testing.T) {
		for _, raw := range []json.RawMessage{
			nil,
			json.RawMessage(`null`),
			json.RawMessage(`{}`),
			json.RawMessage(`"not json at all"`),
			json.RawMessage(`[{"member_id"`),
		} {
			assert.Empty(t, DecodeAttendance(raw), "raw=%s", raw)
		}
	})
}

func TestCreateSabhaRequestToModel(t *testing.T) {
	memberID := uuid.New()
	cancelled := true
	req := CreateSabhaRequest{
		SabhaType:      "Teen assembly",
		SabhaDate:      "2026-04-12",
		SabhaStartTime: "2026-04-12 18:30:00",
		SabhaEndTime:   "2026-04-12 20:00:00",
		SabhaLeader:    "Leader",
		Topic:          "Seva",
		IsCancelled:    &cancelled,
		Area:           "Sarjan",
		VisibleToRoles: []string{"kishor"},
		Attendance:     json.RawMessage(fmt.Sprintf(`[{"member_id":"%s","is_present":true}]`, memberID)),
	}

	m := req.ToModel()
	assert.Equal(t, "Teen assembly", m.SabhaType)
	assert.Equal(t, time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC), m.SabhaDate)
	require.NotNil(t, m.SabhaStartTime)
	require.NotNil(t, m.SabhaEndTime)
	assert.Equal(t, 18, m.SabhaStartTime.Hour())
	assert.True(t, m.IsCancelled)
	assert.Equal(t, "Sarjan", m.Area)
	assert.Equal(t, "ROLE_BASED", m.Visibility, "default visibility")
	require.Len(t, m.Attendance, 1)
	assert.Equal(t, memberID, m.Attendance[0].MemberID)
}

func TestCreateSabhaRequestToModelDefaults(t *testing.T) {
	req := CreateSabhaRequest{Area: "Rivanta", Visibility: "PUBLIC"}
	m := req.ToModel()
	assert.Equal(t, "PUBLIC", m.Visibility)
	assert.False(t, m.SabhaDate.IsZero(), "unparseable date falls back to now")
	assert.Nil(t, m.SabhaStartTime)
	assert.Empty(t, m.Attendance)
}

func TestUpdateSabhaRequestApply(t *testing.T) {
	start := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	m := &model.SabhaModel{
		SabhaNo:        "SAB-SARJAN-000001",
		SabhaType:      "Teen assembly",
		Topic:          "Old topic",
		Area:           "Sarjan",
		Visibility:     "ROLE_BASED",
		SabhaStartTime: &start,
	}

	topic := "New topic"
	date := "2026-05-08"
	cancelled := true
	reason := "Rain"
	req := UpdateSabhaRequest{
		Topic:                 &topic,
		SabhaDate:             &date,
		IsCancelled:           &cancelled,
		ReasonForCancellation: &reason,
	}
	req.Apply(m)

	assert.Equal(t, "New topic", m.Topic)
	assert.Equal(t, time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC), m.SabhaDate)
	assert.True(t, m.IsCancelled)
	assert.Equal(t, "Rain", m.ReasonForCancellation)

	// Untouched fields keep their values.
	assert.Equal(t, "Teen assembly", m.SabhaType)
	assert.Equal(t, "Sarjan", m.Area)
	assert.Equal(t, &start, m.SabhaStartTime)
	assert.Equal(t, "SAB-SARJAN-000001", m.SabhaNo)
}

func TestNewSabhaResponseExpansion(t *testing.T) {
	memberA := uuid.New()
	memberB := uuid.New()
	now := time.Now()

	m := model.SabhaModel{
		SabhaID:   uuid.New(),
		SabhaNo:   "SAB-GEN-000007",
		SabhaType: "Teen assembly",
		Attendance: model.AttendanceList{
			{MemberID: memberA, IsPresent: true, MarkedAt: now},
			{MemberID: memberB, IsPresent: false, MarkedAt: now},
		},
		TotalPresent: 1,
		TotalAbsent:  1,
	}
	members := map[uuid.UUID]MemberSummary{
		memberA: {MemberID: memberA, Name: "Known Member", HajriNumber: "012"},
	}

	resp := NewSabhaResponse(m, members)
	require.Len(t, resp.Attendance, 2)
	require.NotNil(t, resp.Attendance[0].Member)
	assert.Equal(t, "Known Member", resp.Attendance[0].Member.Name)
	assert.Nil(t, resp.Attendance[1].Member, "unresolved members stay bare")
}

func TestNewSabhaReportResponse(t *testing.T) {
	memberA := uuid.New()
	memberB := uuid.New()
	memberC := uuid.New()
	now := time.Now()

	m := model.SabhaModel{
		SabhaNo: "SAB-GEN-000008",
		Attendance: model.AttendanceList{
			{MemberID: memberA, IsPresent: true, MarkedAt: now},
			{MemberID: memberB, IsPresent: false, MarkedAt: now},
			{MemberID: memberC, IsPresent: true, MarkedAt: now},
		},
		TotalPresent: 2,
		TotalAbsent:  1,
	}

	report := NewSabhaReportResponse(m, nil)
	assert.Equal(t, 3, report.TotalMembers)
	require.Len(t, report.PresentMembers, 2)
	require.Len(t, report.AbsentMembers, 1)
	assert.Equal(t, memberB, report.AbsentMembers[0].MemberID)
}
