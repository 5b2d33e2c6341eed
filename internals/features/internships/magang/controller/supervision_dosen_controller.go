// internals/features/internships/magang/controller/supervision_dosen_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "magangku_backend/internals/features/internships/magang/dto"
	m "magangku_backend/internals/features/internships/magang/model"
	"magangku_backend/internals/features/internships/magang/service"
	helper "magangku_backend/internals/helpers"
)

type SupervisionDosenController struct {
	DB      *gorm.DB
	Service *service.LifecycleService
}

func NewSupervisionDosenController(db *gorm.DB, svc *service.LifecycleService) *SupervisionDosenController {
	return &SupervisionDosenController{DB: db, Service: svc}
}

/* =========================================================
   READ
   ========================================================= */

// 📄 GET /api/d/internships — magang yang dibimbing dosen ini
func (ctrl *SupervisionDosenController) ListSupervised(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&m.InternshipModel{}).
		Where("internship_dosen_id = ? AND internship_deleted_at IS NULL", actor.ID)

	if st := strings.ToUpper(strings.TrimSpace(c.Query("status"))); st != "" {
		q = q.Where("internship_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writeServiceError(c, err)
	}

	var rows []m.InternshipModel
	if err := q.Order("internship_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonList(c, "Daftar mahasiswa bimbingan berhasil diambil",
		dto.FromInternshipModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 📄 GET /api/d/internships/:id/supervisions — riwayat bimbingan satu magang
func (ctrl *SupervisionDosenController) ListSupervisions(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	var mo m.InternshipModel
	if err := ctrl.DB.
		Where("internship_id = ? AND internship_dosen_id = ? AND internship_deleted_at IS NULL", id, actor.ID).
		First(&mo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Magang bimbingan tidak ditemukan")
		}
		return writeServiceError(c, err)
	}

	var rows []m.InternshipSupervisionModel
	if err := ctrl.DB.
		Where("supervision_internship_id = ? AND supervision_deleted_at IS NULL", id).
		Order("supervision_date ASC, supervision_created_at ASC").
		Find(&rows).Error; err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, "Riwayat bimbingan berhasil diambil", fiber.Map{
		"internship":   dto.FromInternshipModel(mo),
		"supervisions": dto.FromSupervisionModels(rows),
	})
}

/* =========================================================
   BIMBINGAN & EVALUASI
   ========================================================= */

// 📝 POST /api/d/internships/:id/supervisions (multipart, attachment opsional)
func (ctrl *SupervisionDosenController) CreateSupervision(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	req, attachment, err := dto.BindMultipartSupervision(c)
	if err != nil {
		return writeServiceError(c, err)
	}

	row, err := ctrl.Service.RecordSupervision(c.Context(), actor, id, req, attachment)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Bimbingan berhasil dicatat", dto.FromSupervisionModel(*row))
}

// 🏁 POST /api/d/internships/:id/final-evaluation
func (ctrl *SupervisionDosenController) RecordFinalEvaluation(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	var req dto.FinalEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	row, err := ctrl.Service.RecordFinalEvaluation(c.Context(), actor, id, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Evaluasi akhir berhasil dicatat", dto.FromSupervisionModel(*row))
}

// ✅ POST /api/d/attendances — presensi batch per sesi bimbingan
func (ctrl *SupervisionDosenController) RecordAttendance(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}

	var req dto.RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v := strings.TrimSpace(c.Query("date")); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			req.Date = &t
		}
	}

	result, err := ctrl.Service.RecordAttendance(c.Context(), actor, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Presensi berhasil dicatat", result)
}

// 🏁 POST /api/d/internships/:id/complete — dosen pembimbing menyelesaikan
func (ctrl *SupervisionDosenController) Complete(c *fiber.Ctx) error {
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

// 💬 POST /api/d/internships/:id/comments
func (ctrl *SupervisionDosenController) CreateComment(c *fiber.Ctx) error {
	return createComment(c, ctrl.Service)
}
