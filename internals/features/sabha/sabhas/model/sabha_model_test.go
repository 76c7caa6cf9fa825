package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceListRoundTrip(t *testing.T) {
	memberID := uuid.New()
	list := AttendanceList{
		{MemberID: memberID, IsPresent: true, MarkedAt: time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC)},
	}

	v, err := list.Value()
	require.NoError(t, err)
	raw, ok := v.([]byte)
	require.True(t, ok)

	var out AttendanceList
	require.NoError(t, out.Scan(raw))
	require.Len(t, out, 1)
	assert.Equal(t, memberID, out[0].MemberID)
	assert.True(t, out[0].IsPresent)
}

func TestAttendanceListScan(t *testing.T) {
	var list AttendanceList
	require.NoError(t, list.Scan(nil))
	assert.Empty(t, list)

	require.NoError(t, list.Scan(""))
	assert.Empty(t, list)

	// lib/pq may hand jsonb back as a string.
	require.NoError(t, list.Scan(`[{"member_id":"`+uuid.Nil.String()+`","is_present":false}]`))
	require.Len(t, list, 1)

	assert.Error(t, list.Scan(42))
}

func TestAttendanceListNilValue(t *testing.T) {
	var list AttendanceList
	v, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v.([]byte))
}
