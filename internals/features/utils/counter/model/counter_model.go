package model

type CounterModel struct {
	CounterKey string `gorm:"primaryKey;column:counter_key" json:"counter_key"`
	CounterSeq int64  `gorm:"not null;default:0;column:counter_seq" json:"counter_seq"`
}

func (CounterModel) TableName() string { return "counters" }
