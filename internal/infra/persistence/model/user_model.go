package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table owned by the external auth service.
// This service only reads it; inserts and updates happen over there.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Username  string    `gorm:"type:varchar(100);unique;not null"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	ServerURL string    `gorm:"column:server_url;type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
