package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*
Metadata log adalah tagged union: satu record per tipe log, diserialisasi ke
kolom jsonb dengan wire shape yang sama dengan skema lama ({old_status,
new_status} dsb). Konsumen decode lewat DecodeLogMetadata dan switch di tipe,
bukan membaca map lepas.
*/

// STATUS_CHANGE
type StatusChangeMeta struct {
	OldStatus *InternshipStatus `json:"old_status"`
	NewStatus InternshipStatus  `json:"new_status"`
	Reason    *string           `json:"reason,omitempty"`
}

// STATUS_CHANGE varian "submission updated" — status tidak berubah,
// metadata membawa status & kategori saat itu untuk kontinuitas audit.
type SubmissionUpdateMeta struct {
	Status   InternshipStatus   `json:"status"`
	Category InternshipCategory `json:"category"`
	Updated  []string           `json:"updated_fields,omitempty"`
}

// DOCUMENT_UPLOAD
type DocumentUploadMeta struct {
	FilePath string `json:"file_path"`
	Kind     string `json:"kind,omitempty"` // cover_letter | approval_letter | final_report
}

// SUPERVISION
type SupervisionMeta struct {
	SupervisionID uuid.UUID `json:"supervision_id"`
	Final         bool      `json:"final,omitempty"`
}

// ATTENDANCE
type AttendanceMeta struct {
	Status        AttendanceStatus `json:"status"`
	SupervisionID uuid.UUID        `json:"supervision_id"`
	Date          string           `json:"date"` // YYYY-MM-DD
	Notes         *string          `json:"notes,omitempty"`
}

// ACTIVITY_REPORT
type ActivityReportMeta struct {
	FilePath *string `json:"file_path,omitempty"`
}

// MarshalLogMeta menyerialisasi salah satu record meta di atas ke jsonb.
func MarshalLogMeta(meta any) (datatypes.JSON, error) {
	switch meta.(type) {
	case StatusChangeMeta, SubmissionUpdateMeta, DocumentUploadMeta,
		SupervisionMeta, AttendanceMeta, ActivityReportMeta:
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("tipe metadata log tidak dikenal: %T", meta)
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// DecodeLogMetadata membaca jsonb kembali ke record sesuai tipe log.
// COMMENT tidak punya metadata → nil.
func DecodeLogMetadata(t LogType, raw datatypes.JSON) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	switch t {
	case LogStatusChange:
		// bedakan varian submission-updated dari kehadiran field "status"
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
		if _, ok := fields["status"]; ok {
			var m SubmissionUpdateMeta
			return m, json.Unmarshal(raw, &m)
		}
		var m StatusChangeMeta
		return m, json.Unmarshal(raw, &m)
	case LogDocumentUpload:
		var m DocumentUploadMeta
		return m, json.Unmarshal(raw, &m)
	case LogSupervision:
		var m SupervisionMeta
		return m, json.Unmarshal(raw, &m)
	case LogAttendance:
		var m AttendanceMeta
		return m, json.Unmarshal(raw, &m)
	case LogActivityReport:
		var m ActivityReportMeta
		return m, json.Unmarshal(raw, &m)
	case LogComment:
		return nil, nil
	}
	return nil, errors.New("tipe log tidak dikenal")
}
