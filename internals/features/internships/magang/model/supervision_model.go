package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SupervisionType string

const (
	SupervisionOnline  SupervisionType = "ONLINE"
	SupervisionOffline SupervisionType = "OFFLINE"
	SupervisionHybrid  SupervisionType = "HYBRID"
)

func (t SupervisionType) Valid() bool {
	switch t {
	case SupervisionOnline, SupervisionOffline, SupervisionHybrid:
		return true
	}
	return false
}

type AttendanceStatus string

const (
	AttendanceHadir      AttendanceStatus = "HADIR"
	AttendanceIzin       AttendanceStatus = "IZIN"
	AttendanceSakit      AttendanceStatus = "SAKIT"
	AttendanceTidakHadir AttendanceStatus = "TIDAK_HADIR"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceHadir, AttendanceIzin, AttendanceSakit, AttendanceTidakHadir:
		return true
	}
	return false
}

// InternshipSupervisionModel merekam sesi bimbingan dosen (skema kaya: skor
// progres + evaluasi akhir). Append-only seperti log: tidak di-update, hanya
// soft delete.
type InternshipSupervisionModel struct {
	SupervisionID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:supervision_id" json:"supervision_id"`
	SupervisionInternshipID uuid.UUID `gorm:"type:uuid;not null;index;column:supervision_internship_id" json:"supervision_internship_id"`
	SupervisionDosenID      uuid.UUID `gorm:"type:uuid;not null;index;column:supervision_dosen_id" json:"supervision_dosen_id"`

	SupervisionTitle string          `gorm:"size:200;not null;column:supervision_title" json:"supervision_title"`
	SupervisionDate  time.Time       `gorm:"type:date;not null;column:supervision_date" json:"supervision_date"`
	SupervisionType  SupervisionType `gorm:"type:varchar(10);not null;default:'OFFLINE';column:supervision_type" json:"supervision_type"`

	SupervisionLocation           *string `gorm:"size:200;column:supervision_location" json:"supervision_location,omitempty"`
	SupervisionNotes              *string `gorm:"column:supervision_notes" json:"supervision_notes,omitempty"`
	SupervisionProgressNotes      *string `gorm:"column:supervision_progress_notes" json:"supervision_progress_notes,omitempty"`
	SupervisionImprovementsNeeded *string `gorm:"column:supervision_improvements_needed" json:"supervision_improvements_needed,omitempty"`

	SupervisionProgressScore   *int           `gorm:"column:supervision_progress_score" json:"supervision_progress_score,omitempty"`
	SupervisionFinalEvaluation datatypes.JSON `gorm:"type:jsonb;column:supervision_final_evaluation" json:"supervision_final_evaluation,omitempty"`
	SupervisionFinalScore      *int           `gorm:"column:supervision_final_score" json:"supervision_final_score,omitempty"`

	SupervisionAttachmentPath *string `gorm:"column:supervision_attachment_path" json:"supervision_attachment_path,omitempty"`

	SupervisionCreatedAt time.Time      `gorm:"column:supervision_created_at;autoCreateTime" json:"supervision_created_at"`
	SupervisionDeletedAt gorm.DeletedAt `gorm:"column:supervision_deleted_at;index" json:"supervision_deleted_at,omitempty"`
}

func (InternshipSupervisionModel) TableName() string { return "internship_supervisions" }

/* =========================================================
   Label turunan dari skor
   ========================================================= */

// GetProgressStatus label kualitatif dari progress_score.
func (m *InternshipSupervisionModel) GetProgressStatus() string {
	return ProgressStatusLabel(m.SupervisionProgressScore)
}

// GetFinalGrade huruf mutu dari final_score; nil → "Belum Dinilai".
func (m *InternshipSupervisionModel) GetFinalGrade() string {
	return FinalGradeLetter(m.SupervisionFinalScore)
}

func ProgressStatusLabel(score *int) string {
	if score == nil {
		return "Belum Dinilai"
	}
	switch {
	case *score >= 85:
		return "Sangat Baik"
	case *score >= 75:
		return "Baik"
	case *score >= 65:
		return "Cukup"
	default:
		return "Perlu Perbaikan"
	}
}

func FinalGradeLetter(score *int) string {
	if score == nil {
		return "Belum Dinilai"
	}
	switch {
	case *score >= 85:
		return "A"
	case *score >= 75:
		return "B"
	case *score >= 65:
		return "C"
	default:
		return "D"
	}
}
