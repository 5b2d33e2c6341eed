package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklistModel menyimpan access token yang sudah di-logout sampai kadaluarsa.
type TokenBlacklistModel struct {
	TokenBlacklistID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:token_blacklist_id" json:"token_blacklist_id"`
	TokenBlacklistToken     string         `gorm:"not null;index;column:token_blacklist_token" json:"token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time      `gorm:"not null;column:token_blacklist_expired_at" json:"token_blacklist_expired_at"`
	TokenBlacklistCreatedAt time.Time      `gorm:"column:token_blacklist_created_at;autoCreateTime" json:"token_blacklist_created_at"`
	TokenBlacklistDeletedAt gorm.DeletedAt `gorm:"column:token_blacklist_deleted_at;index" json:"token_blacklist_deleted_at,omitempty"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklists" }
