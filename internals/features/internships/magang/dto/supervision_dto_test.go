package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	m "magangku_backend/internals/features/internships/magang/model"
)

func validSupervisionRequest() CreateSupervisionRequest {
	score := 80
	return CreateSupervisionRequest{
		Title:         "Bimbingan minggu ke-3",
		Date:          time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		Type:          m.SupervisionOnline,
		ProgressScore: &score,
	}
}

func TestSupervisionRequestValidation(t *testing.T) {
	assert.NoError(t, validate.Struct(validSupervisionRequest()))

	bad := validSupervisionRequest()
	bad.Type = "REMOTE"
	assert.Error(t, validate.Struct(bad))

	bad = validSupervisionRequest()
	over := 120
	bad.ProgressScore = &over
	assert.Error(t, validate.Struct(bad), "skor di atas 100 harus gagal")

	bad = validSupervisionRequest()
	bad.Title = "ab"
	assert.Error(t, validate.Struct(bad))
}

func TestSupervisionRequestToModel(t *testing.T) {
	internshipID, dosenID := uuid.New(), uuid.New()
	req := validSupervisionRequest()
	req.Title = "  Bimbingan minggu ke-3  "

	mo := req.ToModel(internshipID, dosenID)
	assert.Equal(t, internshipID, mo.SupervisionInternshipID)
	assert.Equal(t, dosenID, mo.SupervisionDosenID)
	assert.Equal(t, "Bimbingan minggu ke-3", mo.SupervisionTitle)
	assert.Equal(t, m.SupervisionOnline, mo.SupervisionType)
	assert.Nil(t, mo.SupervisionFinalScore, "bimbingan biasa tidak membawa nilai akhir")
}

func TestFinalEvaluationRequestValidation(t *testing.T) {
	req := FinalEvaluationRequest{
		Evaluation: map[string]any{"kedisiplinan": 85, "laporan": 78},
		FinalScore: 82,
	}
	assert.NoError(t, validate.Struct(req))

	req.FinalScore = 101
	assert.Error(t, validate.Struct(req))

	req.FinalScore = 82
	req.Evaluation = nil
	assert.Error(t, validate.Struct(req), "rubrik evaluasi wajib ada")
}

func TestRecordAttendanceRequestValidation(t *testing.T) {
	req := RecordAttendanceRequest{
		SupervisionID: uuid.New(),
		Entries: []AttendanceEntryRequest{
			{MahasiswaID: uuid.New(), Status: m.AttendanceHadir},
			{MahasiswaID: uuid.New(), Status: m.AttendanceSakit},
		},
	}
	assert.NoError(t, validate.Struct(req))

	// entries kosong ditolak
	req.Entries = nil
	assert.Error(t, validate.Struct(req))

	// status di luar HADIR/IZIN/SAKIT/TIDAK_HADIR ditolak
	req.Entries = []AttendanceEntryRequest{{MahasiswaID: uuid.New(), Status: "ALPHA"}}
	assert.Error(t, validate.Struct(req))
}
