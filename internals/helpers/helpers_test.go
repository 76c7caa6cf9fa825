package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateLenient(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-04-12T18:30:00Z", time.Date(2026, 4, 12, 18, 30, 0, 0, time.UTC)},
		{"2026-04-12T18:30:00", time.Date(2026, 4, 12, 18, 30, 0, 0, time.UTC)},
		{"2026-04-12 18:30:00", time.Date(2026, 4, 12, 18, 30, 0, 0, time.UTC)},
		{"2026-04-12", time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)},
		{"12-04-2026", time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)},
		{"  2026-04-12  ", time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got := ParseDateLenient(tc.in)
		require.NotNil(t, got, "in=%q", tc.in)
		assert.True(t, tc.want.Equal(*got), "in=%q got=%v", tc.in, got)
	}

	for _, in := range []string{"", "   ", "garbage", "12/04/2026", "2026-13-40"} {
		assert.Nil(t, ParseDateLenient(in), "in=%q", in)
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(95, 2, 10)
	assert.Equal(t, 10, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	first := BuildPagination(95, 1, 10)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := BuildPagination(95, 10, 10)
	assert.False(t, last.HasNext)

	empty := BuildPagination(0, 1, 10)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
