package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubjectType adalah discriminant dari subject audit (closed set).
type SubjectType string

const (
	SubjectUser       SubjectType = "USER"
	SubjectInternship SubjectType = "INTERNSHIP"
)

func (s SubjectType) Valid() bool {
	switch s {
	case SubjectUser, SubjectInternship:
		return true
	}
	return false
}

// Subject adalah tagged union {type, id} — konsumen wajib switch di Type,
// bukan lookup dinamis dua kolom lepas.
type Subject struct {
	Type SubjectType
	ID   uuid.UUID
}

func UserSubject(id uuid.UUID) Subject       { return Subject{Type: SubjectUser, ID: id} }
func InternshipSubject(id uuid.UUID) Subject { return Subject{Type: SubjectInternship, ID: id} }

// ActivityModel adalah audit trail umum lintas fitur (login, transisi status, dst).
// Append-only: tidak pernah di-update, hanya soft delete.
type ActivityModel struct {
	ActivityID          uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:activity_id" json:"activity_id"`
	ActivitySubjectType SubjectType       `gorm:"type:varchar(20);not null;column:activity_subject_type" json:"activity_subject_type"`
	ActivitySubjectID   uuid.UUID         `gorm:"type:uuid;not null;index;column:activity_subject_id" json:"activity_subject_id"`
	ActivityActorID     *uuid.UUID        `gorm:"type:uuid;column:activity_actor_id" json:"activity_actor_id,omitempty"`
	ActivityAction      string            `gorm:"size:60;not null;column:activity_action" json:"activity_action"`
	ActivityDetail      datatypes.JSONMap `gorm:"type:jsonb;column:activity_detail" json:"activity_detail,omitempty"`
	ActivityCreatedAt   time.Time         `gorm:"column:activity_created_at;autoCreateTime" json:"activity_created_at"`
	ActivityDeletedAt   gorm.DeletedAt    `gorm:"column:activity_deleted_at;index" json:"activity_deleted_at,omitempty"`
}

func (ActivityModel) TableName() string { return "activities" }

func (a *ActivityModel) Subject() Subject {
	return Subject{Type: a.ActivitySubjectType, ID: a.ActivitySubjectID}
}
