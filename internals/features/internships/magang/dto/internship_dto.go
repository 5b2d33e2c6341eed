package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"mime/multipart"

	m "magangku_backend/internals/features/internships/magang/model"
)

const dateLayout = "2006-01-02"

/* =========================================================
   CREATE (pengajuan magang oleh mahasiswa)
   ========================================================= */

type CreateInternshipRequest struct {
	Category        m.InternshipCategory `json:"internship_category" form:"internship_category" validate:"required,oneof=KKL KKN"`
	CompanyName     string               `json:"internship_company_name" form:"internship_company_name" validate:"required,min=2,max=200"`
	CompanyAddress  string               `json:"internship_company_address" form:"internship_company_address" validate:"required,min=5"`
	CompanyPhone    string               `json:"internship_company_phone" form:"internship_company_phone" validate:"required,min=6,max=20"`
	SupervisorName  string               `json:"internship_supervisor_name" form:"internship_supervisor_name" validate:"required,min=2,max=100"`
	SupervisorPhone string               `json:"internship_supervisor_phone" form:"internship_supervisor_phone" validate:"required,min=6,max=20"`
	StartDate       time.Time            `json:"-" form:"-" validate:"required"`
	EndDate         time.Time            `json:"-" form:"-" validate:"required"`
	Notes           *string              `json:"internship_notes" form:"internship_notes"`
}

func (r *CreateInternshipRequest) Normalize() {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.CompanyAddress = strings.TrimSpace(r.CompanyAddress)
	r.CompanyPhone = strings.TrimSpace(r.CompanyPhone)
	r.SupervisorName = strings.TrimSpace(r.SupervisorName)
	r.SupervisorPhone = strings.TrimSpace(r.SupervisorPhone)
	if r.Notes != nil {
		v := strings.TrimSpace(*r.Notes)
		if v == "" {
			r.Notes = nil
		} else {
			r.Notes = &v
		}
	}
}

func (r CreateInternshipRequest) ToModel(mahasiswaID uuid.UUID) m.InternshipModel {
	return m.InternshipModel{
		InternshipMahasiswaID:     mahasiswaID,
		InternshipCategory:        r.Category,
		InternshipCompanyName:     r.CompanyName,
		InternshipCompanyAddress:  r.CompanyAddress,
		InternshipCompanyPhone:    r.CompanyPhone,
		InternshipSupervisorName:  r.SupervisorName,
		InternshipSupervisorPhone: r.SupervisorPhone,
		InternshipStartDate:       r.StartDate,
		InternshipEndDate:         r.EndDate,
		InternshipNotes:           r.Notes,
		InternshipStatus:          m.StatusPending,
	}
}

// BindMultipartCreate: text fields + file surat pengantar (wajib divalidasi di service)
func BindMultipartCreate(c *fiber.Ctx) (CreateInternshipRequest, *multipart.FileHeader, error) {
	var req CreateInternshipRequest

	req.Category = m.InternshipCategory(strings.ToUpper(strings.TrimSpace(c.FormValue("internship_category"))))
	req.CompanyName = c.FormValue("internship_company_name")
	req.CompanyAddress = c.FormValue("internship_company_address")
	req.CompanyPhone = c.FormValue("internship_company_phone")
	req.SupervisorName = c.FormValue("internship_supervisor_name")
	req.SupervisorPhone = c.FormValue("internship_supervisor_phone")

	if v := strings.TrimSpace(c.FormValue("internship_notes")); v != "" {
		req.Notes = &v
	}

	var err error
	if req.StartDate, err = parseDate(c.FormValue("internship_start_date")); err != nil {
		return req, nil, fiber.NewError(fiber.StatusBadRequest, "Tanggal mulai tidak valid (format YYYY-MM-DD)")
	}
	if req.EndDate, err = parseDate(c.FormValue("internship_end_date")); err != nil {
		return req, nil, fiber.NewError(fiber.StatusBadRequest, "Tanggal selesai tidak valid (format YYYY-MM-DD)")
	}

	var fh *multipart.FileHeader
	if f, err := c.FormFile("cover_letter"); err == nil && f != nil {
		fh = f
	} else if f2, err2 := c.FormFile("file"); err2 == nil && f2 != nil {
		fh = f2
	}

	return req, fh, nil
}

/* =========================================================
   UPDATE (hanya selama PENDING, oleh mahasiswa pemilik)
   ========================================================= */

type UpdateInternshipRequest struct {
	Category        *m.InternshipCategory `json:"internship_category" validate:"omitempty,oneof=KKL KKN"`
	CompanyName     *string               `json:"internship_company_name" validate:"omitempty,min=2,max=200"`
	CompanyAddress  *string               `json:"internship_company_address" validate:"omitempty,min=5"`
	CompanyPhone    *string               `json:"internship_company_phone" validate:"omitempty,min=6,max=20"`
	SupervisorName  *string               `json:"internship_supervisor_name" validate:"omitempty,min=2,max=100"`
	SupervisorPhone *string               `json:"internship_supervisor_phone" validate:"omitempty,min=6,max=20"`
	StartDate       *time.Time            `json:"-"`
	EndDate         *time.Time            `json:"-"`
	Notes           *string               `json:"internship_notes"`
}

// Apply menerapkan field yang dikirim ke model; return daftar field yang berubah.
func (r UpdateInternshipRequest) Apply(mo *m.InternshipModel) []string {
	changed := []string{}
	if r.Category != nil {
		mo.InternshipCategory = *r.Category
		changed = append(changed, "category")
	}
	if r.CompanyName != nil {
		mo.InternshipCompanyName = strings.TrimSpace(*r.CompanyName)
		changed = append(changed, "company_name")
	}
	if r.CompanyAddress != nil {
		mo.InternshipCompanyAddress = strings.TrimSpace(*r.CompanyAddress)
		changed = append(changed, "company_address")
	}
	if r.CompanyPhone != nil {
		mo.InternshipCompanyPhone = strings.TrimSpace(*r.CompanyPhone)
		changed = append(changed, "company_phone")
	}
	if r.SupervisorName != nil {
		mo.InternshipSupervisorName = strings.TrimSpace(*r.SupervisorName)
		changed = append(changed, "supervisor_name")
	}
	if r.SupervisorPhone != nil {
		mo.InternshipSupervisorPhone = strings.TrimSpace(*r.SupervisorPhone)
		changed = append(changed, "supervisor_phone")
	}
	if r.StartDate != nil {
		mo.InternshipStartDate = *r.StartDate
		changed = append(changed, "start_date")
	}
	if r.EndDate != nil {
		mo.InternshipEndDate = *r.EndDate
		changed = append(changed, "end_date")
	}
	if r.Notes != nil {
		v := strings.TrimSpace(*r.Notes)
		if v == "" {
			mo.InternshipNotes = nil
		} else {
			mo.InternshipNotes = &v
		}
		changed = append(changed, "notes")
	}
	return changed
}

// BindMultipartUpdate: field opsional + file surat pengantar pengganti (opsional)
func BindMultipartUpdate(c *fiber.Ctx) (UpdateInternshipRequest, *multipart.FileHeader, error) {
	var req UpdateInternshipRequest

	setStr := func(dst **string, key string) {
		if v := strings.TrimSpace(c.FormValue(key)); v != "" {
			*dst = &v
		}
	}
	if v := strings.ToUpper(strings.TrimSpace(c.FormValue("internship_category"))); v != "" {
		cat := m.InternshipCategory(v)
		req.Category = &cat
	}
	setStr(&req.CompanyName, "internship_company_name")
	setStr(&req.CompanyAddress, "internship_company_address")
	setStr(&req.CompanyPhone, "internship_company_phone")
	setStr(&req.SupervisorName, "internship_supervisor_name")
	setStr(&req.SupervisorPhone, "internship_supervisor_phone")
	setStr(&req.Notes, "internship_notes")

	if v := strings.TrimSpace(c.FormValue("internship_start_date")); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return req, nil, fiber.NewError(fiber.StatusBadRequest, "Tanggal mulai tidak valid (format YYYY-MM-DD)")
		}
		req.StartDate = &t
	}
	if v := strings.TrimSpace(c.FormValue("internship_end_date")); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return req, nil, fiber.NewError(fiber.StatusBadRequest, "Tanggal selesai tidak valid (format YYYY-MM-DD)")
		}
		req.EndDate = &t
	}

	var fh *multipart.FileHeader
	if f, err := c.FormFile("cover_letter"); err == nil && f != nil {
		fh = f
	}

	return req, fh, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

/* =========================================================
   RESPONSE
   ========================================================= */

type InternshipResponse struct {
	InternshipID          uuid.UUID  `json:"internship_id"`
	InternshipMahasiswaID uuid.UUID  `json:"internship_mahasiswa_id"`
	InternshipDosenID     *uuid.UUID `json:"internship_dosen_id,omitempty"`
	InternshipApprovedBy  *uuid.UUID `json:"internship_approved_by,omitempty"`

	InternshipCategory m.InternshipCategory `json:"internship_category"`

	InternshipCompanyName     string `json:"internship_company_name"`
	InternshipCompanyAddress  string `json:"internship_company_address"`
	InternshipCompanyPhone    string `json:"internship_company_phone"`
	InternshipSupervisorName  string `json:"internship_supervisor_name"`
	InternshipSupervisorPhone string `json:"internship_supervisor_phone"`

	InternshipStartDate string `json:"internship_start_date"`
	InternshipEndDate   string `json:"internship_end_date"`

	InternshipCoverLetterPath    *string `json:"internship_cover_letter_path,omitempty"`
	InternshipApprovalLetterPath *string `json:"internship_approval_letter_path,omitempty"`
	InternshipReportFilePath     *string `json:"internship_report_file_path,omitempty"`

	InternshipStatus          m.InternshipStatus `json:"internship_status"`
	InternshipRejectionReason *string            `json:"internship_rejection_reason,omitempty"`
	InternshipNotes           *string            `json:"internship_notes,omitempty"`

	InternshipCreatedAt time.Time `json:"internship_created_at"`
	InternshipUpdatedAt time.Time `json:"internship_updated_at"`
}

func FromInternshipModel(mo m.InternshipModel) InternshipResponse {
	return InternshipResponse{
		InternshipID:                 mo.InternshipID,
		InternshipMahasiswaID:        mo.InternshipMahasiswaID,
		InternshipDosenID:            mo.InternshipDosenID,
		InternshipApprovedBy:         mo.InternshipApprovedBy,
		InternshipCategory:           mo.InternshipCategory,
		InternshipCompanyName:        mo.InternshipCompanyName,
		InternshipCompanyAddress:     mo.InternshipCompanyAddress,
		InternshipCompanyPhone:       mo.InternshipCompanyPhone,
		InternshipSupervisorName:     mo.InternshipSupervisorName,
		InternshipSupervisorPhone:    mo.InternshipSupervisorPhone,
		InternshipStartDate:          mo.InternshipStartDate.Format(dateLayout),
		InternshipEndDate:            mo.InternshipEndDate.Format(dateLayout),
		InternshipCoverLetterPath:    mo.InternshipCoverLetterPath,
		InternshipApprovalLetterPath: mo.InternshipApprovalLetterPath,
		InternshipReportFilePath:     mo.InternshipReportFilePath,
		InternshipStatus:             mo.InternshipStatus,
		InternshipRejectionReason:    mo.InternshipRejectionReason,
		InternshipNotes:              mo.InternshipNotes,
		InternshipCreatedAt:          mo.InternshipCreatedAt,
		InternshipUpdatedAt:          mo.InternshipUpdatedAt,
	}
}

func FromInternshipModels(rows []m.InternshipModel) []InternshipResponse {
	out := make([]InternshipResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromInternshipModel(rows[i]))
	}
	return out
}
