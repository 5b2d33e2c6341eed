// internals/features/internships/magang/controller/internship_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "magangku_backend/internals/features/internships/magang/dto"
	m "magangku_backend/internals/features/internships/magang/model"
	"magangku_backend/internals/features/internships/magang/service"
	helper "magangku_backend/internals/helpers"
	ossHelper "magangku_backend/internals/helpers/oss"
)

type InternshipAdminController struct {
	DB      *gorm.DB
	Service *service.LifecycleService
}

func NewInternshipAdminController(db *gorm.DB, svc *service.LifecycleService) *InternshipAdminController {
	return &InternshipAdminController{DB: db, Service: svc}
}

/* =========================================================
   LIST & DETAIL
   ========================================================= */

// 📄 GET /api/a/internships?status=&category=&q=&page=&per_page=
func (ctrl *InternshipAdminController) ListInternships(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&m.InternshipModel{}).
		Where("internship_deleted_at IS NULL")

	if st := strings.ToUpper(strings.TrimSpace(c.Query("status"))); st != "" {
		if !m.InternshipStatus(st).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status tidak dikenal")
		}
		q = q.Where("internship_status = ?", st)
	}
	if cat := strings.ToUpper(strings.TrimSpace(c.Query("category"))); cat != "" {
		if !m.InternshipCategory(cat).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kategori tidak dikenal")
		}
		q = q.Where("internship_category = ?", cat)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("internship_company_name ILIKE ? OR internship_supervisor_name ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writeServiceError(c, err)
	}

	var rows []m.InternshipModel
	if err := q.Order("internship_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonList(c, "Daftar magang berhasil diambil",
		dto.FromInternshipModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 📄 GET /api/a/internships/:id — detail + seluruh log
func (ctrl *InternshipAdminController) GetInternship(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	var mo m.InternshipModel
	if err := ctrl.DB.
		Where("internship_id = ? AND internship_deleted_at IS NULL", id).
		First(&mo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan magang tidak ditemukan")
		}
		return writeServiceError(c, err)
	}

	var logs []m.InternshipLogModel
	if err := ctrl.DB.
		Where("internship_log_internship_id = ? AND internship_log_deleted_at IS NULL", id).
		Order("internship_log_created_at ASC").
		Find(&logs).Error; err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, "Detail magang berhasil diambil", fiber.Map{
		"internship": dto.FromInternshipModel(mo),
		"logs":       dto.FromLogModels(logs),
	})
}

/* =========================================================
   TRANSISI STATUS
   ========================================================= */

// ✅ POST /api/a/internships/:id/approve
func (ctrl *InternshipAdminController) Approve(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	var body struct {
		Notes *string `json:"notes"`
	}
	_ = c.BodyParser(&body) // body opsional

	mo, err := ctrl.Service.Approve(c.Context(), actor, id, body.Notes)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Pengajuan magang disetujui", dto.FromInternshipModel(*mo))
}

// ❌ POST /api/a/internships/:id/reject
func (ctrl *InternshipAdminController) Reject(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	mo, err := ctrl.Service.Reject(c.Context(), actor, id, strings.TrimSpace(body.Reason))
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Pengajuan magang ditolak", dto.FromInternshipModel(*mo))
}

// 👨‍🏫 POST /api/a/internships/:id/assign-supervisor
func (ctrl *InternshipAdminController) AssignSupervisor(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	var body struct {
		DosenID string  `json:"dosen_id"`
		Notes   *string `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	dosenID, err := parseBodyUUID(body.DosenID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format dosen_id tidak valid")
	}

	mo, err := ctrl.Service.AssignSupervisor(c.Context(), actor, id, dosenID, body.Notes)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Dosen pembimbing berhasil ditugaskan", dto.FromInternshipModel(*mo))
}

// 🏁 POST /api/a/internships/:id/complete
func (ctrl *InternshipAdminController) Complete(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	mo, err := ctrl.Service.Complete(c.Context(), actor, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Magang berhasil diselesaikan", dto.FromInternshipModel(*mo))
}

// 🚫 POST /api/a/internships/:id/cancel
func (ctrl *InternshipAdminController) Cancel(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	_ = c.BodyParser(&body)

	mo, err := ctrl.Service.Cancel(c.Context(), actor, id, body.Reason)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Magang dibatalkan", dto.FromInternshipModel(*mo))
}

/* =========================================================
   DOKUMEN & PENGHAPUSAN
   ========================================================= */

// 📎 POST /api/a/internships/:id/approval-letter (multipart)
func (ctrl *InternshipAdminController) UploadApprovalLetter(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	fh := ossHelper.TryGetFile(c, "approval_letter", "file")
	mo, err := ctrl.Service.UploadApprovalLetter(c.Context(), actor, id, fh)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Surat persetujuan berhasil diunggah", dto.FromInternshipModel(*mo))
}

// 🗑️ DELETE /api/a/internships/:id — soft delete
func (ctrl *InternshipAdminController) DeleteInternship(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("internship_id = ? AND internship_deleted_at IS NULL", id).
			Delete(&m.InternshipModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Pengajuan magang tidak ditemukan")
		}
		return nil
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Pengajuan magang dihapus", fiber.Map{"internship_id": id})
}

// 🗑️ DELETE /api/a/internships/:id/logs/:log_id — soft delete satu log
func (ctrl *InternshipAdminController) DeleteLog(c *fiber.Ctx) error {
	internshipID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}
	logID, err := parseUUIDParam(c, "log_id")
	if err != nil {
		return writeServiceError(c, err)
	}

	res := ctrl.DB.
		Where("internship_log_id = ? AND internship_log_internship_id = ? AND internship_log_deleted_at IS NULL",
			logID, internshipID).
		Delete(&m.InternshipLogModel{})
	if res.Error != nil {
		return writeServiceError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Log tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Log berhasil dihapus", fiber.Map{"internship_log_id": logID})
}
