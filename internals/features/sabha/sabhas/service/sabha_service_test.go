package service

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sabhaku_backend/internals/features/sabha/sabhas/model"
)

// memSequencer is an in-memory stand-in for the counters table.
type memSequencer struct {
	mu   sync.Mutex
	seqs map[string]int64
}

func newMemSequencer() *memSequencer {
	return &memSequencer{seqs: map[string]int64{}}
}

func (s *memSequencer) Next(key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seqs[key]++
	return s.seqs[key], nil
}

func TestAreaCode(t *testing.T) {
	cases := []struct {
		area string
		want string
	}{
		{"Murtibaug", "MURTIBAG"},
		{"Murtibaug Society, Block B", "MURTIBAG"},
		{"Nathdwar Society", "NATHDWAR"},
		{"Radheshyam", "RADHESHYAM"},
		{"Sarjan", "SARJAN"},
		{"Rivanta", "RIVANTA"},
		{"Somewhere Else", "GEN"},
		{"", "GEN"},
		{"murtibaug", "GEN"}, // matching is case-sensitive
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AreaCode(tc.area), "area=%q", tc.area)
	}
}

func TestFormatSabhaNo(t *testing.T) {
	assert.Equal(t, "SAB-MURTIBAG-000001", FormatSabhaNo("MURTIBAG", 1))
	assert.Equal(t, "SAB-GEN-000123", FormatSabhaNo("GEN", 123))
	assert.Equal(t, "SAB-GEN-1000000", FormatSabhaNo("GEN", 1000000))
}

func TestEnsureSabhaNo(t *testing.T) {
	svc := NewSabhaService(newMemSequencer())

	m := &model.SabhaModel{Area: "Sarjan"}
	require.NoError(t, svc.EnsureSabhaNo(m))
	assert.Equal(t, "SAB-SARJAN-000001", m.SabhaNo)

	// An already assigned number is never reissued.
	require.NoError(t, svc.EnsureSabhaNo(m))
	assert.Equal(t, "SAB-SARJAN-000001", m.SabhaNo)

	m2 := &model.SabhaModel{Area: "Sarjan"}
	require.NoError(t, svc.EnsureSabhaNo(m2))
	assert.Equal(t, "SAB-SARJAN-000002", m2.SabhaNo)

	// Per-area counters are independent.
	m3 := &model.SabhaModel{Area: "Unknown Place"}
	require.NoError(t, svc.EnsureSabhaNo(m3))
	assert.Equal(t, "SAB-GEN-000001", m3.SabhaNo)
}

func TestEnsureSabhaNoConcurrent(t *testing.T) {
	svc := NewSabhaService(newMemSequencer())

	const n = 50
	var wg sync.WaitGroup
	nos := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := &model.SabhaModel{Area: "Rivanta"}
			if err := svc.EnsureSabhaNo(m); err == nil {
				nos <- m.SabhaNo
			}
		}()
	}
	wg.Wait()
	close(nos)

	seen := map[string]bool{}
	for no := range nos {
		assert.False(t, seen[no], "duplicate sabha number %s", no)
		seen[no] = true
	}
	assert.Len(t, seen, n)
}

func TestValidateTimes(t *testing.T) {
	start := time.Date(2026, 1, 10, 18, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	assert.NoError(t, ValidateTimes(&model.SabhaModel{SabhaStartTime: &start, SabhaEndTime: &end}))
	assert.NoError(t, ValidateTimes(&model.SabhaModel{SabhaStartTime: &start}))
	assert.NoError(t, ValidateTimes(&model.SabhaModel{SabhaEndTime: &end}))
	assert.NoError(t, ValidateTimes(&model.SabhaModel{}))

	assert.ErrorIs(t, ValidateTimes(&model.SabhaModel{SabhaStartTime: &end, SabhaEndTime: &start}), ErrEndBeforeStart)
	assert.ErrorIs(t, ValidateTimes(&model.SabhaModel{SabhaStartTime: &start, SabhaEndTime: &start}), ErrEndBeforeStart)
}

func TestRecomputeTotals(t *testing.T) {
	now := time.Now()
	m := &model.SabhaModel{
		Attendance: model.AttendanceList{
			{MemberID: uuid.New(), IsPresent: true, MarkedAt: now},
			{MemberID: uuid.New(), IsPresent: false, MarkedAt: now},
			{MemberID: uuid.New(), IsPresent: true, MarkedAt: now},
		},
		// Stale values must be overwritten.
		TotalPresent: 99,
		TotalAbsent:  99,
	}

	RecomputeTotals(m)
	assert.Equal(t, 2, m.TotalPresent)
	assert.Equal(t, 1, m.TotalAbsent)
	assert.Equal(t, len(m.Attendance), m.TotalPresent+m.TotalAbsent)

	empty := &model.SabhaModel{}
	RecomputeTotals(empty)
	assert.Zero(t, empty.TotalPresent)
	assert.Zero(t, empty.TotalAbsent)
}

func TestUpsertMark(t *testing.T) {
	memberID := uuid.New()
	otherID := uuid.New()
	t0 := time.Date(2026, 2, 1, 19, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	var list model.AttendanceList
	UpsertMark(&list, memberID, true, t0)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsPresent)
	assert.Equal(t, t0, list[0].MarkedAt)

	// Same member again flips the mark in place, no duplicate entry.
	UpsertMark(&list, memberID, false, t1)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsPresent)
	assert.Equal(t, t1, list[0].MarkedAt)

	UpsertMark(&list, otherID, true, t1)
	require.Len(t, list, 2)
	assert.Equal(t, otherID, list[1].MemberID)
}

func TestApplyBulk(t *testing.T) {
	known := uuid.New()
	alsoKnown := uuid.New()
	unknown := uuid.New()
	now := time.Now()

	resolves := func(id uuid.UUID) bool { return id == known || id == alsoKnown }

	var list model.AttendanceList
	applied := ApplyBulk(&list, []BulkMark{
		{MemberID: known, IsPresent: true},
		{MemberID: unknown, IsPresent: true},
		{MemberID: uuid.Nil, IsPresent: true},
		{MemberID: alsoKnown, IsPresent: false},
		{MemberID: known, IsPresent: false}, // re-mark, still counts as applied
	}, resolves, now)

	assert.Equal(t, 3, applied)
	require.Len(t, list, 2)
	assert.False(t, list[0].IsPresent)
}

func TestPrepare(t *testing.T) {
	svc := NewSabhaService(newMemSequencer())
	now := time.Now()
	start := time.Date(2026, 3, 5, 18, 30, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	m := &model.SabhaModel{
		Area:           "Nathdwar Society",
		SabhaStartTime: &start,
		SabhaEndTime:   &end,
		Attendance: model.AttendanceList{
			{MemberID: uuid.New(), IsPresent: true, MarkedAt: now},
			{MemberID: uuid.New(), IsPresent: false, MarkedAt: now},
		},
	}
	require.NoError(t, svc.Prepare(m))
	assert.Equal(t, "SAB-NATHDWAR-000001", m.SabhaNo)
	assert.Equal(t, 1, m.TotalPresent)
	assert.Equal(t, 1, m.TotalAbsent)

	bad := &model.SabhaModel{Area: "Sarjan", SabhaStartTime: &end, SabhaEndTime: &start}
	assert.ErrorIs(t, svc.Prepare(bad), ErrEndBeforeStart)
	assert.Empty(t, bad.SabhaNo, "no sequence consumed on validation failure")
}

func TestBuildMemberHistory(t *testing.T) {
	memberID := uuid.New()
	otherID := uuid.New()
	t0 := time.Date(2026, 1, 4, 19, 0, 0, 0, time.UTC)

	sabhas := []model.SabhaModel{
		{
			SabhaNo:   "SAB-SARJAN-000003",
			SabhaType: "Weekly Sabha",
			SabhaDate: t0.AddDate(0, 0, 14),
			Attendance: model.AttendanceList{
				{MemberID: memberID, IsPresent: true, MarkedAt: t0.AddDate(0, 0, 14)},
			},
		},
		{
			SabhaNo:   "SAB-SARJAN-000002",
			SabhaType: "Weekly Sabha",
			SabhaDate: t0.AddDate(0, 0, 7),
			Attendance: model.AttendanceList{
				{MemberID: memberID, IsPresent: false, MarkedAt: t0.AddDate(0, 0, 7)},
				{MemberID: otherID, IsPresent: true, MarkedAt: t0.AddDate(0, 0, 7)},
			},
		},
		{
			// Member has no mark at all here: counts as absent, no timestamp.
			SabhaNo:   "SAB-SARJAN-000001",
			SabhaType: "Special Sabha",
			SabhaDate: t0,
			Attendance: model.AttendanceList{
				{MemberID: otherID, IsPresent: true, MarkedAt: t0},
			},
		},
	}

	entries, stats := BuildMemberHistory(sabhas, memberID)
	require.Len(t, entries, 3)

	assert.True(t, entries[0].IsPresent)
	require.NotNil(t, entries[0].MarkedAt)

	assert.False(t, entries[1].IsPresent)
	require.NotNil(t, entries[1].MarkedAt)

	assert.False(t, entries[2].IsPresent)
	assert.Nil(t, entries[2].MarkedAt)

	assert.Equal(t, 3, stats.TotalSabhas)
	assert.Equal(t, 1, stats.TotalPresent)
	assert.Equal(t, 2, stats.TotalAbsent)
	assert.Equal(t, "33.33%", stats.AttendancePercentage)
}

func TestBuildMemberHistoryEmpty(t *testing.T) {
	entries, stats := BuildMemberHistory(nil, uuid.New())
	assert.Empty(t, entries)
	assert.Equal(t, 0, stats.TotalSabhas)
	assert.Equal(t, "0.00%", stats.AttendancePercentage)
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "0.00%", FormatPercentage(0, 0))
	assert.Equal(t, "0.00%", FormatPercentage(0, 5))
	assert.Equal(t, "50.00%", FormatPercentage(1, 2))
	assert.Equal(t, "100.00%", FormatPercentage(4, 4))
	assert.Equal(t, "66.67%", FormatPercentage(2, 3))
}
