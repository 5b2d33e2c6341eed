package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   Status & kategori (set kanonik — label Inggris)
   ========================================================= */

type InternshipStatus string

const (
	StatusDraft     InternshipStatus = "DRAFT"
	StatusPending   InternshipStatus = "PENDING"
	StatusApproved  InternshipStatus = "APPROVED"
	StatusRejected  InternshipStatus = "REJECTED"
	StatusOngoing   InternshipStatus = "ONGOING"
	StatusCompleted InternshipStatus = "COMPLETED"
	StatusCancelled InternshipStatus = "CANCELLED"
)

func (s InternshipStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected,
		StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal: tidak ada edge keluar lagi
func (s InternshipStatus) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// edge maju yang sah; CANCELLED ditangani terpisah (boleh dari semua pre-terminal)
var forwardTransitions = map[InternshipStatus][]InternshipStatus{
	StatusDraft:    {StatusPending},
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusOngoing},
	StatusOngoing:  {StatusCompleted},
}

// CanTransition cek apakah from→to adalah edge yang sah pada state machine.
func CanTransition(from, to InternshipStatus) bool {
	if to == StatusCancelled {
		return !from.IsTerminal()
	}
	for _, next := range forwardTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type InternshipCategory string

const (
	CategoryKKL InternshipCategory = "KKL"
	CategoryKKN InternshipCategory = "KKN"
)

func (c InternshipCategory) Valid() bool {
	return c == CategoryKKL || c == CategoryKKN
}

/* =========================================================
   Model
   ========================================================= */

type InternshipModel struct {
	InternshipID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:internship_id" json:"internship_id"`
	InternshipMahasiswaID uuid.UUID  `gorm:"type:uuid;not null;index;column:internship_mahasiswa_id" json:"internship_mahasiswa_id"`
	InternshipDosenID     *uuid.UUID `gorm:"type:uuid;index;column:internship_dosen_id" json:"internship_dosen_id,omitempty"`
	InternshipApprovedBy  *uuid.UUID `gorm:"type:uuid;column:internship_approved_by" json:"internship_approved_by,omitempty"`

	InternshipCategory InternshipCategory `gorm:"type:varchar(10);not null;column:internship_category" json:"internship_category"`

	InternshipCompanyName     string `gorm:"size:200;not null;column:internship_company_name" json:"internship_company_name"`
	InternshipCompanyAddress  string `gorm:"not null;column:internship_company_address" json:"internship_company_address"`
	InternshipCompanyPhone    string `gorm:"size:20;not null;column:internship_company_phone" json:"internship_company_phone"`
	InternshipSupervisorName  string `gorm:"size:100;not null;column:internship_supervisor_name" json:"internship_supervisor_name"`
	InternshipSupervisorPhone string `gorm:"size:20;not null;column:internship_supervisor_phone" json:"internship_supervisor_phone"`

	InternshipStartDate time.Time `gorm:"type:date;not null;column:internship_start_date" json:"internship_start_date"`
	InternshipEndDate   time.Time `gorm:"type:date;not null;column:internship_end_date" json:"internship_end_date"`

	InternshipCoverLetterPath    *string `gorm:"column:internship_cover_letter_path" json:"internship_cover_letter_path,omitempty"`
	InternshipApprovalLetterPath *string `gorm:"column:internship_approval_letter_path" json:"internship_approval_letter_path,omitempty"`
	InternshipReportFilePath     *string `gorm:"column:internship_report_file_path" json:"internship_report_file_path,omitempty"`

	InternshipStatus          InternshipStatus `gorm:"type:varchar(20);not null;default:'PENDING';index;column:internship_status" json:"internship_status"`
	InternshipRejectionReason *string          `gorm:"column:internship_rejection_reason" json:"internship_rejection_reason,omitempty"`
	InternshipNotes           *string          `gorm:"column:internship_notes" json:"internship_notes,omitempty"`

	InternshipCreatedAt time.Time      `gorm:"column:internship_created_at;autoCreateTime" json:"internship_created_at"`
	InternshipUpdatedAt time.Time      `gorm:"column:internship_updated_at;autoUpdateTime" json:"internship_updated_at"`
	InternshipDeletedAt gorm.DeletedAt `gorm:"column:internship_deleted_at;index" json:"internship_deleted_at,omitempty"`
}

func (InternshipModel) TableName() string { return "internships" }

/* =========================================================
   Guard helper pada entity
   ========================================================= */

func (m *InternshipModel) CanBeApproved() bool  { return m.InternshipStatus == StatusPending }
func (m *InternshipModel) CanBeRejected() bool  { return m.InternshipStatus == StatusPending }
func (m *InternshipModel) CanBeCompleted() bool { return m.InternshipStatus == StatusOngoing }
func (m *InternshipModel) CanBeCancelled() bool { return !m.InternshipStatus.IsTerminal() }
func (m *InternshipModel) CanBeEdited() bool    { return m.InternshipStatus == StatusPending }

// IsActive: boleh menerima log aktivitas & bimbingan
func (m *InternshipModel) IsActive() bool {
	return m.InternshipStatus == StatusApproved || m.InternshipStatus == StatusOngoing
}

// CanAssignSupervisor: penugasan dosen hanya dari APPROVED supaya magang yang
// selesai/ditolak tidak bisa di-reassign.
func (m *InternshipModel) CanAssignSupervisor() bool {
	return m.InternshipStatus == StatusApproved
}
