package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSequencer struct {
	seq int64
}

func (s *stubSequencer) Next(key string) (int64, error) {
	s.seq++
	return s.seq, nil
}

func TestFormatHajriNumber(t *testing.T) {
	assert.Equal(t, "001", FormatHajriNumber(1))
	assert.Equal(t, "042", FormatHajriNumber(42))
	assert.Equal(t, "999", FormatHajriNumber(999))
	assert.Equal(t, "1000", FormatHajriNumber(1000))
}

func TestNextHajriNumber(t *testing.T) {
	svc := NewMemberService(&stubSequencer{})

	n1, err := svc.NextHajriNumber()
	require.NoError(t, err)
	n2, err := svc.NextHajriNumber()
	require.NoError(t, err)

	assert.Equal(t, "001", n1)
	assert.Equal(t, "002", n2)
}
