package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users.
// user_role adalah role aktif (dipakai di JWT); user_roles daftar role yang diberikan
// (admin bisa merangkap dosen).
type UserModel struct {
	UserID       uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName     string         `gorm:"size:100;not null;column:user_name" json:"user_name" validate:"required,min=3,max=100"`
	UserEmail    string         `gorm:"size:255;unique;not null;column:user_email" json:"user_email" validate:"required,email"`
	UserPassword string         `gorm:"not null;column:user_password" json:"-" validate:"required,min=8"`
	UserRole     string         `gorm:"type:varchar(20);not null;default:'mahasiswa';column:user_role" json:"user_role" validate:"required,oneof=admin dosen mahasiswa"`
	UserRoles    pq.StringArray `gorm:"type:text[];not null;default:'{mahasiswa}';column:user_roles" json:"user_roles"`

	// identitas akademik (opsional sesuai role)
	UserNIM   *string `gorm:"size:20;column:user_nim" json:"user_nim,omitempty"`
	UserNIDN  *string `gorm:"size:20;column:user_nidn" json:"user_nidn,omitempty"`
	UserPhone *string `gorm:"size:20;column:user_phone" json:"user_phone,omitempty"`

	UserIsActive  bool           `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`
	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

// HasRole cek apakah role ada di daftar role user
func (u *UserModel) HasRole(role string) bool {
	for _, r := range u.UserRoles {
		if r == role {
			return true
		}
	}
	return false
}
