package service

import (
	"fmt"

	"gorm.io/gorm"
)

// Sequencer mints monotonically increasing values per key. No two callers may
// receive the same value for the same key.
type Sequencer interface {
	Next(key string) (int64, error)
}

type CounterService struct {
	DB *gorm.DB
}

func NewCounterService(db *gorm.DB) *CounterService {
	return &CounterService{DB: db}
}

// Next increments and returns the counter for key in a single statement. The
// upsert is atomic per key, so concurrent callers always see distinct values.
func (s *CounterService) Next(key string) (int64, error) {
	var seq int64
	err := s.DB.Raw(
		`INSERT INTO counters (counter_key, counter_seq)
		 VALUES (?, 1)
		 ON CONFLICT (counter_key)
		 DO UPDATE SET counter_seq = counters.counter_seq + 1
		 RETURNING counter_seq`,
		key,
	).Scan(&seq).Error
	if err != nil {
		return 0, fmt.Errorf("counter next %q: %w", key, err)
	}
	return seq, nil
}
