// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	activityModel "magangku_backend/internals/features/activity/model"
	activityService "magangku_backend/internals/features/activity/service"
	authDTO "magangku_backend/internals/features/users/auth/dto"
	authModel "magangku_backend/internals/features/users/auth/model"
	authService "magangku_backend/internals/features/users/auth/service"
	userModel "magangku_backend/internals/features/users/user/model"
	helper "magangku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	// identitas akademik wajib sesuai role
	if req.Role == "mahasiswa" && (req.NIM == nil || strings.TrimSpace(*req.NIM) == "") {
		return helper.JsonValidationError(c, map[string][]string{"nim": {"NIM wajib diisi untuk mahasiswa."}})
	}
	if req.Role == "dosen" && (req.NIDN == nil || strings.TrimSpace(*req.NIDN) == "") {
		return helper.JsonValidationError(c, map[string][]string{"nidn": {"NIDN wajib diisi untuk dosen."}})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	u := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.Email,
		UserPassword: string(hashed),
		UserRole:     req.Role,
		UserRoles:    pq.StringArray{req.Role},
		UserNIM:      req.NIM,
		UserNIDN:     req.NIDN,
		UserPhone:    req.Phone,
		UserIsActive: true,
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("lower(user_email) = ? AND user_deleted_at IS NULL", req.Email).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi email")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		if err := tx.Create(&u).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun")
		}
		return activityService.Record(tx, activityModel.UserSubject(u.UserID), &u.UserID,
			"USER_REGISTERED", map[string]any{"role": u.UserRole})
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", authDTO.FromUserModel(u))
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u userModel.UserModel
	if err := h.DB.Where("lower(user_email) = ? AND user_deleted_at IS NULL", req.Email).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, err := authService.IssueAccessToken(&u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, err := authService.IssueRefreshToken(u.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	// audit login best-effort (jangan gagalkan login karena audit)
	_ = activityService.Record(h.DB, activityModel.UserSubject(u.UserID), &u.UserID,
		"USER_LOGIN", map[string]any{"ip": c.IP()})

	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         authDTO.FromUserModel(u),
	})
}

// POST /api/auth/refresh-token
func (h *AuthController) RefreshToken(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.RefreshToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Refresh token tidak ada")
	}

	userID, err := authService.ParseRefreshToken(body.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	var u userModel.UserModel
	if err := h.DB.Where("user_id = ? AND user_deleted_at IS NULL", userID).First(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	access, err := authService.IssueAccessToken(&u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, err := authService.IssueRefreshToken(u.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// POST /api/auth/logout — access token masuk blacklist sampai exp
func (h *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}
	token := strings.TrimSpace(parts[1])

	row := authModel.TokenBlacklistModel{
		TokenBlacklistToken:     token,
		TokenBlacklistExpiredAt: authService.AccessTokenExpiry(token),
	}
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// untuk dipakai scheduler cleanup
func DeleteExpiredBlacklist(db *gorm.DB) (int64, error) {
	res := db.Unscoped().
		Where("token_blacklist_expired_at < ?", time.Now()).
		Delete(&authModel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}
