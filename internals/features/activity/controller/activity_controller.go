package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "magangku_backend/internals/features/activity/model"
	helper "magangku_backend/internals/helpers"
)

type ActivityController struct {
	DB *gorm.DB
}

// LIST (admin)
// GET /api/a/activities?subject_type=&subject_id=&action=&page=&per_page=
func (h *ActivityController) ListActivities(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&activityModel.ActivityModel{}).
		Where("activity_deleted_at IS NULL")

	if st := strings.TrimSpace(c.Query("subject_type")); st != "" {
		t := activityModel.SubjectType(strings.ToUpper(st))
		if !t.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_type tidak dikenal")
		}
		tx = tx.Where("activity_subject_type = ?", t)
	}
	if sid := strings.TrimSpace(c.Query("subject_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		tx = tx.Where("activity_subject_id = ?", id)
	}
	if action := strings.TrimSpace(c.Query("action")); action != "" {
		tx = tx.Where("activity_action = ?", action)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []activityModel.ActivityModel
	if err := tx.
		Order("activity_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar aktivitas", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
