package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sabhaku_backend/internals/features/sabha/sabhas/model"
	counter "sabhaku_backend/internals/features/utils/counter/service"
)

// ErrEndBeforeStart is raised when both times are set and the end does not
// come strictly after the start.
var ErrEndBeforeStart = errors.New("sabha_end_time must be after sabha_start_time")

// areaCodes maps known localities to the short code used in sabha numbers.
// Matching is by case-sensitive substring; anything else falls back to GEN.
var areaCodes = []struct {
	Needle string
	Code   string
}{
	{"Murtibaug", "MURTIBAG"},
	{"Nathdwar Society", "NATHDWAR"},
	{"Radheshyam", "RADHESHYAM"},
	{"Sarjan", "SARJAN"},
	{"Rivanta", "RIVANTA"},
}

const fallbackAreaCode = "GEN"

func AreaCode(area string) string {
	if area == "" {
		return fallbackAreaCode
	}
	for _, ac := range areaCodes {
		if strings.Contains(area, ac.Needle) {
			return ac.Code
		}
	}
	return fallbackAreaCode
}

type SabhaService struct {
	Seq counter.Sequencer
}

func NewSabhaService(seq counter.Sequencer) *SabhaService {
	return &SabhaService{Seq: seq}
}

// Prepare enforces the persistence invariants: end-after-start, one-time sabha
// number assignment, and derived totals. Call it before every save.
func (s *SabhaService) Prepare(m *model.SabhaModel) error {
	if err := ValidateTimes(m); err != nil {
		return err
	}
	if err := s.EnsureSabhaNo(m); err != nil {
		return err
	}
	RecomputeTotals(m)
	return nil
}

func ValidateTimes(m *model.SabhaModel) error {
	if m.SabhaStartTime != nil && m.SabhaEndTime != nil && !m.SabhaEndTime.After(*m.SabhaStartTime) {
		return ErrEndBeforeStart
	}
	return nil
}

// EnsureSabhaNo mints the sequence code once, from the atomic per-area-code
// counter. Existing numbers are never reassigned.
func (s *SabhaService) EnsureSabhaNo(m *model.SabhaModel) error {
	if m.SabhaNo != "" {
		return nil
	}
	code := AreaCode(m.Area)
	seq, err := s.Seq.Next("sabha:" + code)
	if err != nil {
		return err
	}
	m.SabhaNo = FormatSabhaNo(code, seq)
	return nil
}

func FormatSabhaNo(code string, seq int64) string {
	return fmt.Sprintf("SAB-%s-%06d", code, seq)
}

// RecomputeTotals rederives the present/absent tallies from the embedded list.
func RecomputeTotals(m *model.SabhaModel) {
	present := 0
	for _, att := range m.Attendance {
		if att.IsPresent {
			present++
		}
	}
	m.TotalPresent = present
	m.TotalAbsent = len(m.Attendance) - present
}

// UpsertMark updates the member's existing mark in place or appends a new one.
// The list never holds two marks for the same member.
func UpsertMark(list *model.AttendanceList, memberID uuid.UUID, isPresent bool, now time.Time) {
	for i := range *list {
		if (*list)[i].MemberID == memberID {
			(*list)[i].IsPresent = isPresent
			(*list)[i].MarkedAt = now
			return
		}
	}
	*list = append(*list, model.AttendanceMark{
		MemberID:  memberID,
		IsPresent: isPresent,
		MarkedAt:  now,
	})
}

// BulkMark is one item of a bulk attendance request.
type BulkMark struct {
	MemberID  uuid.UUID
	IsPresent bool
}

// ApplyBulk upserts every mark whose member passes the resolve check and
// silently skips the rest. Returns how many marks were applied.
func ApplyBulk(list *model.AttendanceList, items []BulkMark, resolves func(uuid.UUID) bool, now time.Time) int {
	applied := 0
	for _, item := range items {
		if item.MemberID == uuid.Nil || !resolves(item.MemberID) {
			continue
		}
		UpsertMark(list, item.MemberID, item.IsPresent, now)
		applied++
	}
	return applied
}

// HistoryEntry is one sabha appearance in a member's attendance history.
type HistoryEntry struct {
	SabhaNo   string     `json:"sabha_no"`
	SabhaType string     `json:"sabha_type"`
	SabhaDate time.Time  `json:"sabha_date"`
	IsPresent bool       `json:"is_present"`
	MarkedAt  *time.Time `json:"marked_at"`
}

type HistoryStats struct {
	TotalSabhas          int    `json:"total_sabhas"`
	TotalPresent         int    `json:"total_present"`
	TotalAbsent          int    `json:"total_absent"`
	AttendancePercentage string `json:"attendance_percentage"`
}

// BuildMemberHistory extracts the member's mark from each sabha (a
// structurally missing mark counts as absent with no timestamp) and computes
// the aggregate statistics.
func BuildMemberHistory(sabhas []model.SabhaModel, memberID uuid.UUID) ([]HistoryEntry, HistoryStats) {
	entries := make([]HistoryEntry, 0, len(sabhas))
	present := 0
	for _, sb := range sabhas {
		entry := HistoryEntry{
			SabhaNo:   sb.SabhaNo,
			SabhaType: sb.SabhaType,
			SabhaDate: sb.SabhaDate,
		}
		for _, att := range sb.Attendance {
			if att.MemberID == memberID {
				entry.IsPresent = att.IsPresent
				markedAt := att.MarkedAt
				entry.MarkedAt = &markedAt
				break
			}
		}
		if entry.IsPresent {
			present++
		}
		entries = append(entries, entry)
	}

	stats := HistoryStats{
		TotalSabhas:          len(entries),
		TotalPresent:         present,
		TotalAbsent:          len(entries) - present,
		AttendancePercentage: FormatPercentage(present, len(entries)),
	}
	return entries, stats
}

func FormatPercentage(present, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(present)/float64(total)*100)
}
