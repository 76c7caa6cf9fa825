package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminModel struct {
	AdminID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admin_id" json:"admin_id"`
	Username      string    `gorm:"uniqueIndex;not null;column:admin_username"                     json:"admin_username"`
	PasswordHash  string    `gorm:"not null;column:admin_password_hash"                            json:"-"`
	CreatedAt     time.Time `gorm:"column:admin_created_at;autoCreateTime"                         json:"admin_created_at"`
	UpdatedAt     time.Time `gorm:"column:admin_updated_at;autoUpdateTime"                         json:"admin_updated_at"`
}

func (AdminModel) TableName() string { return "admins" }
