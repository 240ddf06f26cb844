package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The email column carries the unique
// constraint that makes concurrent registration races safe, and the
// password_hash column holds the self-describing encoded hash, never plaintext.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
