// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"magangku_backend/internals/configs"
	userModel "magangku_backend/internals/features/users/user/model"
)

const (
	accessTTL  = 1 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

// IssueAccessToken membuat access JWT (HS256) berisi identitas + role aktif.
func IssueAccessToken(u *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"roles":     []string(u.UserRoles),
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

// IssueRefreshToken membuat refresh JWT (subject saja).
func IssueRefreshToken(userID uuid.UUID) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET belum diset")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken memvalidasi refresh JWT dan mengembalikan user id.
func ParseRefreshToken(token string) (uuid.UUID, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("metode signing tidak dikenal")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	return id, nil
}

// AccessTokenExpiry membaca exp dari access token tanpa verifikasi penuh
// (dipakai saat logout untuk menentukan masa simpan blacklist).
func AccessTokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return time.Now().Add(accessTTL)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(accessTTL)
}
