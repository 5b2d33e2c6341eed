package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "magangku_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	UserName string  `json:"user_name" validate:"required,min=3,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"required,oneof=admin dosen mahasiswa"`
	NIM      *string `json:"nim" validate:"omitempty,max=20"`
	NIDN     *string `json:"nidn" validate:"omitempty,max=20"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	UserRole  string    `json:"user_role"`
	UserRoles []string  `json:"user_roles"`
	UserNIM   *string   `json:"user_nim,omitempty"`
	UserNIDN  *string   `json:"user_nidn,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

func FromUserModel(u userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		UserName:  u.UserName,
		UserEmail: u.UserEmail,
		UserRole:  u.UserRole,
		UserRoles: append([]string(nil), u.UserRoles...),
		UserNIM:   u.UserNIM,
		UserNIDN:  u.UserNIDN,
		CreatedAt: u.UserCreatedAt,
	}
}
