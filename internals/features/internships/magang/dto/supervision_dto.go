package dto

import (
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "magangku_backend/internals/features/internships/magang/model"
)

/* =========================================================
   CREATE bimbingan (dosen)
   ========================================================= */

type CreateSupervisionRequest struct {
	Title              string            `json:"supervision_title" form:"supervision_title" validate:"required,min=3,max=200"`
	Date               time.Time         `json:"-" form:"-" validate:"required"`
	Type               m.SupervisionType `json:"supervision_type" form:"supervision_type" validate:"required,oneof=ONLINE OFFLINE HYBRID"`
	Location           *string           `json:"supervision_location" form:"supervision_location" validate:"omitempty,max=200"`
	Notes              *string           `json:"supervision_notes" form:"supervision_notes"`
	ProgressNotes      *string           `json:"supervision_progress_notes" form:"supervision_progress_notes"`
	ImprovementsNeeded *string           `json:"supervision_improvements_needed" form:"supervision_improvements_needed"`
	ProgressScore      *int              `json:"supervision_progress_score" form:"supervision_progress_score" validate:"omitempty,gte=0,lte=100"`
}

func (r CreateSupervisionRequest) ToModel(internshipID, dosenID uuid.UUID) m.InternshipSupervisionModel {
	return m.InternshipSupervisionModel{
		SupervisionInternshipID:       internshipID,
		SupervisionDosenID:            dosenID,
		SupervisionTitle:              strings.TrimSpace(r.Title),
		SupervisionDate:               r.Date,
		SupervisionType:               r.Type,
		SupervisionLocation:           r.Location,
		SupervisionNotes:              r.Notes,
		SupervisionProgressNotes:      r.ProgressNotes,
		SupervisionImprovementsNeeded: r.ImprovementsNeeded,
		SupervisionProgressScore:      r.ProgressScore,
	}
}

// BindMultipartSupervision: text fields + lampiran opsional
func BindMultipartSupervision(c *fiber.Ctx) (CreateSupervisionRequest, *multipart.FileHeader, error) {
	var req CreateSupervisionRequest

	req.Title = strings.TrimSpace(c.FormValue("supervision_title"))
	req.Type = m.SupervisionType(strings.ToUpper(strings.TrimSpace(c.FormValue("supervision_type"))))
	if req.Type == "" {
		req.Type = m.SupervisionOffline
	}

	setStr := func(dst **string, key string) {
		if v := strings.TrimSpace(c.FormValue(key)); v != "" {
			*dst = &v
		}
	}
	setStr(&req.Location, "supervision_location")
	setStr(&req.Notes, "supervision_notes")
	setStr(&req.ProgressNotes, "supervision_progress_notes")
	setStr(&req.ImprovementsNeeded, "supervision_improvements_needed")

	if v := strings.TrimSpace(c.FormValue("supervision_date")); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return req, nil, fiber.NewError(fiber.StatusBadRequest, "Tanggal bimbingan tidak valid (format YYYY-MM-DD)")
		}
		req.Date = t
	} else {
		req.Date = time.Now()
	}

	if v := strings.TrimSpace(c.FormValue("supervision_progress_score")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, nil, fiber.NewError(fiber.StatusBadRequest, "Skor progres harus angka")
		}
		req.ProgressScore = &n
	}

	var fh *multipart.FileHeader
	if f, err := c.FormFile("attachment"); err == nil && f != nil {
		fh = f
	}

	return req, fh, nil
}

/* =========================================================
   Evaluasi akhir (dosen, menjelang selesai)
   ========================================================= */

type FinalEvaluationRequest struct {
	Title      string         `json:"supervision_title" validate:"omitempty,max=200"`
	Evaluation map[string]any `json:"final_evaluation" validate:"required"`
	FinalScore int            `json:"final_score" validate:"gte=0,lte=100"`
	Notes      *string        `json:"supervision_notes"`
}

/* =========================================================
   Presensi (dosen, batch per sesi bimbingan)
   ========================================================= */

type AttendanceEntryRequest struct {
	MahasiswaID uuid.UUID          `json:"mahasiswa_id" validate:"required"`
	Status      m.AttendanceStatus `json:"status" validate:"required,oneof=HADIR IZIN SAKIT TIDAK_HADIR"`
	Notes       *string            `json:"notes"`
}

type RecordAttendanceRequest struct {
	SupervisionID uuid.UUID                `json:"supervision_id" validate:"required"`
	Date          *time.Time               `json:"-"`
	Entries       []AttendanceEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type SupervisionResponse struct {
	SupervisionID           uuid.UUID `json:"supervision_id"`
	SupervisionInternshipID uuid.UUID `json:"supervision_internship_id"`
	SupervisionDosenID      uuid.UUID `json:"supervision_dosen_id"`

	SupervisionTitle string            `json:"supervision_title"`
	SupervisionDate  string            `json:"supervision_date"`
	SupervisionType  m.SupervisionType `json:"supervision_type"`

	SupervisionLocation           *string `json:"supervision_location,omitempty"`
	SupervisionNotes              *string `json:"supervision_notes,omitempty"`
	SupervisionProgressNotes      *string `json:"supervision_progress_notes,omitempty"`
	SupervisionImprovementsNeeded *string `json:"supervision_improvements_needed,omitempty"`

	SupervisionProgressScore  *int   `json:"supervision_progress_score,omitempty"`
	SupervisionProgressStatus string `json:"supervision_progress_status"`

	SupervisionFinalScore *int   `json:"supervision_final_score,omitempty"`
	SupervisionFinalGrade string `json:"supervision_final_grade"`

	SupervisionAttachmentPath *string   `json:"supervision_attachment_path,omitempty"`
	SupervisionCreatedAt      time.Time `json:"supervision_created_at"`
}

func FromSupervisionModel(mo m.InternshipSupervisionModel) SupervisionResponse {
	return SupervisionResponse{
		SupervisionID:                 mo.SupervisionID,
		SupervisionInternshipID:       mo.SupervisionInternshipID,
		SupervisionDosenID:            mo.SupervisionDosenID,
		SupervisionTitle:              mo.SupervisionTitle,
		SupervisionDate:               mo.SupervisionDate.Format(dateLayout),
		SupervisionType:               mo.SupervisionType,
		SupervisionLocation:           mo.SupervisionLocation,
		SupervisionNotes:              mo.SupervisionNotes,
		SupervisionProgressNotes:      mo.SupervisionProgressNotes,
		SupervisionImprovementsNeeded: mo.SupervisionImprovementsNeeded,
		SupervisionProgressScore:      mo.SupervisionProgressScore,
		SupervisionProgressStatus:     mo.GetProgressStatus(),
		SupervisionFinalScore:         mo.SupervisionFinalScore,
		SupervisionFinalGrade:         mo.GetFinalGrade(),
		SupervisionAttachmentPath:     mo.SupervisionAttachmentPath,
		SupervisionCreatedAt:          mo.SupervisionCreatedAt,
	}
}

func FromSupervisionModels(rows []m.InternshipSupervisionModel) []SupervisionResponse {
	out := make([]SupervisionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromSupervisionModel(rows[i]))
	}
	return out
}
