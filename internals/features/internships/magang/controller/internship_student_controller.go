// internals/features/internships/magang/controller/internship_student_controller.go
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

type InternshipStudentController struct {
	DB      *gorm.DB
	Service *service.LifecycleService
}

func NewInternshipStudentController(db *gorm.DB, svc *service.LifecycleService) *InternshipStudentController {
	return &InternshipStudentController{DB: db, Service: svc}
}

/* =========================================================
   PENGAJUAN
   ========================================================= */

// 📝 POST /api/u/internships (multipart: field + cover_letter)
func (ctrl *InternshipStudentController) Submit(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}

	req, coverLetter, err := dto.BindMultipartCreate(c)
	if err != nil {
		return writeServiceError(c, err)
	}

	mo, err := ctrl.Service.Submit(c.Context(), actor, req, coverLetter)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Pengajuan magang berhasil dibuat", dto.FromInternshipModel(*mo))
}

// ✏️ PUT /api/u/internships/:id — hanya selama PENDING
func (ctrl *InternshipStudentController) Update(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	req, coverLetter, err := dto.BindMultipartUpdate(c)
	if err != nil {
		return writeServiceError(c, err)
	}

	mo, err := ctrl.Service.UpdatePending(c.Context(), actor, id, req, coverLetter)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Pengajuan magang berhasil diperbarui", dto.FromInternshipModel(*mo))
}

/* =========================================================
   READ
   ========================================================= */

// 📄 GET /api/u/internships — daftar magang milik sendiri
func (ctrl *InternshipStudentController) MyInternships(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&m.InternshipModel{}).
		Where("internship_mahasiswa_id = ? AND internship_deleted_at IS NULL", actor.ID)

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

	return helper.JsonList(c, "Daftar magang Anda berhasil diambil",
		dto.FromInternshipModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 📄 GET /api/u/internships/:id — detail + log (harus milik sendiri)
func (ctrl *InternshipStudentController) GetMyInternship(c *fiber.Ctx) error {
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
		Where("internship_id = ? AND internship_mahasiswa_id = ? AND internship_deleted_at IS NULL", id, actor.ID).
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
   LOG HARIAN, KOMENTAR, LAPORAN AKHIR
   ========================================================= */

// 📝 POST /api/u/internships/:id/activity-reports (multipart, attachment opsional)
func (ctrl *InternshipStudentController) CreateActivityReport(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	var req dto.CreateActivityReportRequest
	req.Title = strings.TrimSpace(c.FormValue("internship_log_title"))
	if v := strings.TrimSpace(c.FormValue("internship_log_description")); v != "" {
		req.Description = &v
	}
	attachment := ossHelper.TryGetFile(c, "attachment", "file")

	row, err := ctrl.Service.RecordActivityLog(c.Context(), actor, id, req, attachment)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Laporan aktivitas berhasil dicatat", dto.FromLogModel(*row))
}

// 💬 POST /api/u/internships/:id/comments
func (ctrl *InternshipStudentController) CreateComment(c *fiber.Ctx) error {
	return createComment(c, ctrl.Service)
}

// 📎 POST /api/u/internships/:id/final-report (multipart)
func (ctrl *InternshipStudentController) UploadFinalReport(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	fh := ossHelper.TryGetFile(c, "report", "file")
	mo, err := ctrl.Service.UploadFinalReport(c.Context(), actor, id, fh)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Laporan akhir berhasil diunggah", dto.FromInternshipModel(*mo))
}
