package service

import (
	"fmt"

	counter "sabhaku_backend/internals/features/utils/counter/service"
)

const hajriCounterKey = "hajri"

type MemberService struct {
	Seq counter.Sequencer
}

func NewMemberService(seq counter.Sequencer) *MemberService {
	return &MemberService{Seq: seq}
}

// NextHajriNumber mints the next kishor badge number from the shared atomic
// counter.
func (s *MemberService) NextHajriNumber() (string, error) {
	seq, err := s.Seq.Next(hajriCounterKey)
	if err != nil {
		return "", err
	}
	return FormatHajriNumber(seq), nil
}

func FormatHajriNumber(seq int64) string {
	return fmt.Sprintf("%03d", seq)
}
