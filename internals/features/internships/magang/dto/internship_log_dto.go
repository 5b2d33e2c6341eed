package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "magangku_backend/internals/features/internships/magang/model"
)

type CreateActivityReportRequest struct {
	Title       string  `json:"internship_log_title" form:"internship_log_title" validate:"required,min=3,max=200"`
	Description *string `json:"internship_log_description" form:"internship_log_description"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

type LogResponse struct {
	InternshipLogID           uuid.UUID      `json:"internship_log_id"`
	InternshipLogInternshipID uuid.UUID      `json:"internship_log_internship_id"`
	InternshipLogUserID       uuid.UUID      `json:"internship_log_user_id"`
	InternshipLogType         m.LogType      `json:"internship_log_type"`
	InternshipLogTitle        string         `json:"internship_log_title"`
	InternshipLogDescription  *string        `json:"internship_log_description,omitempty"`
	InternshipLogMetadata     datatypes.JSON `json:"internship_log_metadata,omitempty"`
	InternshipLogAttachment   *string        `json:"internship_log_attachment_path,omitempty"`
	InternshipLogCreatedAt    time.Time      `json:"internship_log_created_at"`
}

func FromLogModel(mo m.InternshipLogModel) LogResponse {
	return LogResponse{
		InternshipLogID:           mo.InternshipLogID,
		InternshipLogInternshipID: mo.InternshipLogInternshipID,
		InternshipLogUserID:       mo.InternshipLogUserID,
		InternshipLogType:         mo.InternshipLogType,
		InternshipLogTitle:        mo.InternshipLogTitle,
		InternshipLogDescription:  mo.InternshipLogDescription,
		InternshipLogMetadata:     mo.InternshipLogMetadata,
		InternshipLogAttachment:   mo.InternshipLogAttachment,
		InternshipLogCreatedAt:    mo.InternshipLogCreatedAt,
	}
}

func FromLogModels(rows []m.InternshipLogModel) []LogResponse {
	out := make([]LogResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromLogModel(rows[i]))
	}
	return out
}
