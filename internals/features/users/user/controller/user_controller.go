package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "magangku_backend/internals/features/users/auth/dto"
	userModel "magangku_backend/internals/features/users/user/model"
	helper "magangku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

// GET /api/u/me
func (h *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var u userModel.UserModel
	if err := h.DB.Where("user_id = ? AND user_deleted_at IS NULL", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Profil ditemukan", authDTO.FromUserModel(u))
}

// GET /api/a/users?role=&q=&page=&per_page=
// Dipakai admin untuk memilih dosen pembimbing / melihat mahasiswa.
func (h *UserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&userModel.UserModel{}).
		Where("user_deleted_at IS NULL")

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("? = ANY(user_roles)", role)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(user_name) LIKE ? OR LOWER(user_email) LIKE ?)", kw, kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []userModel.UserModel
	if err := tx.
		Order("user_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]authDTO.UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, authDTO.FromUserModel(rows[i]))
	}
	return helper.JsonList(c, "Daftar user", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
