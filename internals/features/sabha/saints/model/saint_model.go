package model

import (
	"time"

	"github.com/google/uuid"
)

type SaintModel struct {
	SaintID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:saint_id" json:"saint_id"`
	Tag       string    `gorm:"not null;index;column:saint_tag"                                json:"saint_tag"`
	Name      string    `gorm:"not null;column:saint_name"                                     json:"saint_name"`
	PhotoURL  string    `gorm:"column:saint_photo_url"                                         json:"saint_photo_url,omitempty"`
	CreatedAt time.Time `gorm:"column:saint_created_at;autoCreateTime"                         json:"saint_created_at"`
	UpdatedAt time.Time `gorm:"column:saint_updated_at;autoUpdateTime"                         json:"saint_updated_at"`
}

func (SaintModel) TableName() string { return "saints" }
