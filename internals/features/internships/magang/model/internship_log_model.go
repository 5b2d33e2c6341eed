package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LogType string

const (
	LogStatusChange   LogType = "STATUS_CHANGE"
	LogComment        LogType = "COMMENT"
	LogDocumentUpload LogType = "DOCUMENT_UPLOAD"
	LogActivityReport LogType = "ACTIVITY_REPORT"
	LogSupervision    LogType = "SUPERVISION"
	LogAttendance     LogType = "ATTENDANCE"
)

func (t LogType) Valid() bool {
	switch t {
	case LogStatusChange, LogComment, LogDocumentUpload,
		LogActivityReport, LogSupervision, LogAttendance:
		return true
	}
	return false
}

// InternshipLogModel adalah jejak audit per-magang. Append-only:
// tidak pernah di-update setelah dibuat, hanya soft delete.
type InternshipLogModel struct {
	InternshipLogID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:internship_log_id" json:"internship_log_id"`
	InternshipLogInternshipID uuid.UUID      `gorm:"type:uuid;not null;index;column:internship_log_internship_id" json:"internship_log_internship_id"`
	InternshipLogUserID       uuid.UUID      `gorm:"type:uuid;not null;column:internship_log_user_id" json:"internship_log_user_id"`
	InternshipLogType         LogType        `gorm:"type:varchar(30);not null;column:internship_log_type" json:"internship_log_type"`
	InternshipLogTitle        string         `gorm:"size:200;not null;column:internship_log_title" json:"internship_log_title"`
	InternshipLogDescription  *string        `gorm:"column:internship_log_description" json:"internship_log_description,omitempty"`
	InternshipLogMetadata     datatypes.JSON `gorm:"type:jsonb;column:internship_log_metadata" json:"internship_log_metadata,omitempty"`
	InternshipLogAttachment   *string        `gorm:"column:internship_log_attachment_path" json:"internship_log_attachment_path,omitempty"`
	InternshipLogCreatedAt    time.Time      `gorm:"column:internship_log_created_at;autoCreateTime" json:"internship_log_created_at"`
	InternshipLogDeletedAt    gorm.DeletedAt `gorm:"column:internship_log_deleted_at;index" json:"internship_log_deleted_at,omitempty"`
}

func (InternshipLogModel) TableName() string { return "internship_logs" }
