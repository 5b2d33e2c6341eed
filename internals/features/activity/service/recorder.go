// internals/features/activity/service/recorder.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	activityModel "magangku_backend/internals/features/activity/model"
)

// Record menulis satu entry audit. Panggil dengan tx yang sama kalau dipakai
// di dalam transaksi lifecycle supaya ikut rollback.
func Record(tx *gorm.DB, subject activityModel.Subject, actorID *uuid.UUID, action string, detail map[string]any) error {
	if !subject.Type.Valid() {
		return errors.New("subject type tidak dikenal")
	}
	if subject.ID == uuid.Nil {
		return errors.New("subject id kosong")
	}
	row := activityModel.ActivityModel{
		ActivitySubjectType: subject.Type,
		ActivitySubjectID:   subject.ID,
		ActivityActorID:     actorID,
		ActivityAction:      action,
		ActivityDetail:      datatypes.JSONMap(detail),
	}
	return tx.Create(&row).Error
}
