package model

import (
	"time"

	"github.com/google/uuid"
)

type SevaModel struct {
	SevaID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:seva_id" json:"seva_id"`
	Name        string    `gorm:"not null;column:seva_name"                                     json:"seva_name"`
	Description string    `gorm:"column:seva_description"                                       json:"seva_description,omitempty"`
	CreatedAt   time.Time `gorm:"column:seva_created_at;autoCreateTime"                         json:"seva_created_at"`
	UpdatedAt   time.Time `gorm:"column:seva_updated_at;autoUpdateTime"                         json:"seva_updated_at"`
}

func (SevaModel) TableName() string { return "sevas" }
