package service

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"magangku_backend/internals/constants"
	dto "magangku_backend/internals/features/internships/magang/dto"
	m "magangku_backend/internals/features/internships/magang/model"
)

/* =========================================================
   Harness: gorm di atas sqlmock + blob stub
   ========================================================= */

type stubBlob struct {
	uploads int
	deletes int
	fail    bool
}

func (b *stubBlob) UploadDocument(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if b.fail {
		return "", "", errors.New("oss tidak bisa dihubungi")
	}
	b.uploads++
	return "https://bucket.example.com/" + dir + "/berkas.pdf", dir + "/berkas.pdf", nil
}

func (b *stubBlob) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	return b.UploadDocument(ctx, dir, fh)
}

func (b *stubBlob) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	b.deletes++
	return nil
}

func newMockService(t *testing.T) (*LifecycleService, sqlmock.Sqlmock, *stubBlob) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	blob := &stubBlob{}
	return NewLifecycleService(db, blob), mock, blob
}

func internshipRows(rows ...m.InternshipModel) *sqlmock.Rows {
	out := sqlmock.NewRows([]string{
		"internship_id", "internship_mahasiswa_id", "internship_dosen_id",
		"internship_category", "internship_company_name", "internship_supervisor_name",
		"internship_start_date", "internship_end_date",
		"internship_status", "internship_notes",
	})
	for _, mo := range rows {
		var dosen driver.Value
		if mo.InternshipDosenID != nil {
			dosen = mo.InternshipDosenID.String()
		}
		var notes driver.Value
		if mo.InternshipNotes != nil {
			notes = *mo.InternshipNotes
		}
		out.AddRow(
			mo.InternshipID.String(), mo.InternshipMahasiswaID.String(), dosen,
			string(mo.InternshipCategory), mo.InternshipCompanyName, mo.InternshipSupervisorName,
			mo.InternshipStartDate, mo.InternshipEndDate,
			string(mo.InternshipStatus), notes,
		)
	}
	return out
}

func internshipFixture(mahasiswaID uuid.UUID, status m.InternshipStatus) m.InternshipModel {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return m.InternshipModel{
		InternshipID:             uuid.New(),
		InternshipMahasiswaID:    mahasiswaID,
		InternshipCategory:       m.CategoryKKL,
		InternshipCompanyName:    "PT Maju Jaya",
		InternshipSupervisorName: "Budi Santoso",
		InternshipStartDate:      start,
		InternshipEndDate:        start.AddDate(0, 3, 0),
		InternshipStatus:         status,
	}
}

func validCreateRequest() dto.CreateInternshipRequest {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return dto.CreateInternshipRequest{
		Category:        m.CategoryKKL,
		CompanyName:     "PT Maju Jaya",
		CompanyAddress:  "Jl. Melati No. 1, Bandung",
		CompanyPhone:    "0227654321",
		SupervisorName:  "Budi Santoso",
		SupervisorPhone: "081234567890",
		StartDate:       start,
		EndDate:         start.AddDate(0, 3, 0),
	}
}

// jsonFieldsArg mencocokkan argumen jsonb dengan subset key yang diharapkan.
type jsonFieldsArg struct {
	want map[string]any
}

func (a jsonFieldsArg) Match(v driver.Value) bool {
	var b []byte
	switch x := v.(type) {
	case []byte:
		b = x
	case string:
		b = []byte(x)
	default:
		return false
	}
	got := map[string]any{}
	if err := json.Unmarshal(b, &got); err != nil {
		return false
	}
	for k, want := range a.want {
		if got[k] != want {
			return false
		}
	}
	return true
}

/* =========================================================
   SUBMIT
   ========================================================= */

func TestSubmitBukanMahasiswa(t *testing.T) {
	svc, mock, blob := newMockService(t)
	admin := Actor{ID: uuid.New(), Role: constants.RoleAdmin}

	_, err := svc.Submit(context.Background(), admin, validCreateRequest(), &multipart.FileHeader{Filename: "surat.pdf"})

	var pe *PermissionError
	require.True(t, errors.As(err, &pe))
	assert.Zero(t, blob.uploads)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitTanggalSelesaiTidakSetelahMulai(t *testing.T) {
	svc, mock, blob := newMockService(t)
	mahasiswa := Actor{ID: uuid.New(), Role: constants.RoleMahasiswa}

	req := validCreateRequest()
	req.EndDate = req.StartDate // sama persis juga ditolak

	_, err := svc.Submit(context.Background(), mahasiswa, req, &multipart.FileHeader{Filename: "surat.pdf"})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "internship_end_date")
	// validasi gagal sebelum ada upload maupun query
	assert.Zero(t, blob.uploads)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitTanpaSuratPengantar(t *testing.T) {
	svc, mock, blob := newMockService(t)
	mahasiswa := Actor{ID: uuid.New(), Role: constants.RoleMahasiswa}

	_, err := svc.Submit(context.Background(), mahasiswa, validCreateRequest(), nil)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "cover_letter")
	assert.Zero(t, blob.uploads)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitUploadGagal(t *testing.T) {
	svc, mock, blob := newMockService(t)
	blob.fail = true
	mahasiswa := Actor{ID: uuid.New(), Role: constants.RoleMahasiswa}

	_, err := svc.Submit(context.Background(), mahasiswa, validCreateRequest(), &multipart.FileHeader{Filename: "surat.pdf"})

	var se *StorageError
	require.True(t, errors.As(err, &se))
	// DB tidak pernah disentuh kalau storage gagal
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitBerhasilSatuTransaksi(t *testing.T) {
	svc, mock, blob := newMockService(t)
	mahasiswa := Actor{ID: uuid.New(), Role: constants.RoleMahasiswa}
	newID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "internships"`).
		WillReturnRows(sqlmock.NewRows([]string{"internship_id"}).AddRow(newID.String()))
	mock.ExpectQuery(`INSERT INTO "internship_logs"`).
		WithArgs(
			newID.String(), mahasiswa.ID.String(), string(m.LogStatusChange),
			"Pengajuan magang dibuat", nil,
			jsonFieldsArg{want: map[string]any{"new_status": "PENDING"}},
			nil, sqlmock.AnyArg(), nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{"internship_log_id"}).AddRow(uuid.NewString()))
	mock.ExpectQuery(`INSERT INTO "activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	mo, err := svc.Submit(context.Background(), mahasiswa, validCreateRequest(), &multipart.FileHeader{Filename: "surat.pdf"})
	require.NoError(t, err)

	assert.Equal(t, m.StatusPending, mo.InternshipStatus)
	require.NotNil(t, mo.InternshipCoverLetterPath)
	assert.Equal(t, 1, blob.uploads)
	// insert internships + log STATUS_CHANGE + audit: persis satu kali masing-masing
	require.NoError(t, mock.ExpectationsWereMet())
}

/* =========================================================
   APPROVE
   ========================================================= */

func TestApproveBukanAdmin(t *testing.T) {
	svc, mock, _ := newMockService(t)
	mahasiswa := Actor{ID: uuid.New(), Role: constants.RoleMahasiswa}

	_, err := svc.Approve(context.Background(), mahasiswa, uuid.New(), nil)

	var pe *PermissionError
	require.True(t, errors.As(err, &pe))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveDariStatusSalah(t *testing.T) {
	svc, mock, _ := newMockService(t)
	admin := Actor{ID: uuid.New(), Role: constants.RoleAdmin}
	mo := internshipFixture(uuid.New(), m.StatusOngoing)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "internships"`).WillReturnRows(internshipRows(mo))
	mock.ExpectRollback()

	_, err := svc.Approve(context.Background(), admin, mo.InternshipID, nil)

	var ise *InvalidStateError
	require.True(t, errors.As(err, &ise))
	// rollback tanpa UPDATE maupun INSERT log — row tidak berubah
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveMenulisSatuLogStatus(t *testing.T) {
	svc, mock, _ := newMockService(t)
	admin := Actor{ID: uuid.New(), Role: constants.RoleAdmin}

	notes := "ingin fokus backend"
	mo := internshipFixture(uuid.New(), m.StatusPending)
	mo.InternshipNotes = &notes

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "internships"`).WillReturnRows(internshipRows(mo))
	mock.ExpectExec(`UPDATE "internships" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "internship_logs"`).
		WithArgs(
			mo.InternshipID.String(), admin.ID.String(), string(m.LogStatusChange),
			"Pengajuan disetujui", nil,
			jsonFieldsArg{want: map[string]any{"old_status": "PENDING", "new_status": "APPROVED"}},
			nil, sqlmock.AnyArg(), nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{"internship_log_id"}).AddRow(uuid.NewString()))
	mock.ExpectQuery(`INSERT INTO "activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	updated, err := svc.Approve(context.Background(), admin, mo.InternshipID, nil)
	require.NoError(t, err)

	assert.Equal(t, m.StatusApproved, updated.InternshipStatus)
	require.NotNil(t, updated.InternshipApprovedBy)
	assert.Equal(t, admin.ID, *updated.InternshipApprovedBy)
	// approve tanpa catatan baru tidak menimpa catatan mahasiswa
	require.NotNil(t, updated.InternshipNotes)
	assert.Equal(t, notes, *updated.InternshipNotes)
	// persis satu log STATUS_CHANGE per transisi
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveDenganCatatanBaru(t *testing.T) {
	svc, mock, _ := newMockService(t)
	admin := Actor{ID: uuid.New(), Role: constants.RoleAdmin}
	mo := internshipFixture(uuid.New(), m.StatusPending)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "internships"`).WillReturnRows(internshipRows(mo))
	mock.ExpectExec(`UPDATE "internships" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "internship_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"internship_log_id"}).AddRow(uuid.NewString()))
	mock.ExpectQuery(`INSERT INTO "activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	catatan := "segera lapor ke dosen pembimbing"
	updated, err := svc.Approve(context.Background(), admin, mo.InternshipID, &catatan)
	require.NoError(t, err)

	require.NotNil(t, updated.InternshipNotes)
	assert.Equal(t, catatan, *updated.InternshipNotes)
	require.NoError(t, mock.ExpectationsWereMet())
}

/* =========================================================
   COMPLETE
   ========================================================= */

func TestCompleteDariStatusSalah(t *testing.T) {
	svc, mock, _ := newMockService(t)
	admin := Actor{ID: uuid.New(), Role: constants.RoleAdmin}
	mo := internshipFixture(uuid.New(), m.StatusPending)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "internships"`).WillReturnRows(internshipRows(mo))
	mock.ExpectRollback()

	_, err := svc.Complete(context.Background(), admin, mo.InternshipID)

	var ise *InvalidStateError
	require.True(t, errors.As(err, &ise))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteOlehDosenBukanPembimbing(t *testing.T) {
	svc, mock, _ := newMockService(t)
	dosenLain := Actor{ID: uuid.New(), Role: constants.RoleDosen}

	pembimbing := uuid.New()
	mo := internshipFixture(uuid.New(), m.StatusOngoing)
	mo.InternshipDosenID = &pembimbing

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "internships"`).WillReturnRows(internshipRows(mo))
	mock.ExpectRollback()

	_, err := svc.Complete(context.Background(), dosenLain, mo.InternshipID)

	var pe *PermissionError
	require.True(t, errors.As(err, &pe))
	require.NoError(t, mock.ExpectationsWereMet())
}

/* =========================================================
   PRESENSI BATCH
   ========================================================= */

func TestRecordAttendanceLewatiMahasiswaTanpaMagangAktif(t *testing.T) {
	svc, mock, _ := newMockService(t)
	dosen := Actor{ID: uuid.New(), Role: constants.RoleDosen}

	supID := uuid.New()
	hadir := internshipFixture(uuid.New(), m.StatusOngoing)
	hadir.InternshipDosenID = &dosen.ID
	tanpaMagang := uuid.New()

	req := dto.RecordAttendanceRequest{
		SupervisionID: supID,
		Entries: []dto.AttendanceEntryRequest{
			{MahasiswaID: hadir.InternshipMahasiswaID, Status: m.AttendanceHadir},
			{MahasiswaID: tanpaMagang, Status: m.AttendanceIzin},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "internship_supervisions"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"supervision_id", "supervision_internship_id", "supervision_dosen_id",
			"supervision_title", "supervision_date", "supervision_type",
		}).AddRow(
			supID.String(), hadir.InternshipID.String(), dosen.ID.String(),
			"Bimbingan mingguan", time.Now(), "OFFLINE",
		))
	// entry 1: magang aktif ditemukan → log presensi tercatat
	mock.ExpectQuery(`SELECT .* FROM "internships"`).WillReturnRows(internshipRows(hadir))
	mock.ExpectQuery(`INSERT INTO "internship_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"internship_log_id"}).AddRow(uuid.NewString()))
	// entry 2: tidak ada magang aktif → dilewati, bukan error
	mock.ExpectQuery(`SELECT .* FROM "internships"`).WillReturnRows(internshipRows())
	mock.ExpectCommit()

	result, err := svc.RecordAttendance(context.Background(), dosen, req)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{hadir.InternshipMahasiswaID}, result.Recorded)
	assert.Equal(t, []uuid.UUID{tanpaMagang}, result.Skipped)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordAttendanceSesiBukanMilikDosen(t *testing.T) {
	svc, mock, _ := newMockService(t)
	dosen := Actor{ID: uuid.New(), Role: constants.RoleDosen}
	supID := uuid.New()

	req := dto.RecordAttendanceRequest{
		SupervisionID: supID,
		Entries: []dto.AttendanceEntryRequest{
			{MahasiswaID: uuid.New(), Status: m.AttendanceHadir},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "internship_supervisions"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"supervision_id", "supervision_internship_id", "supervision_dosen_id",
			"supervision_title", "supervision_date", "supervision_type",
		}).AddRow(
			supID.String(), uuid.NewString(), uuid.NewString(),
			"Bimbingan mingguan", time.Now(), "OFFLINE",
		))
	mock.ExpectRollback()

	_, err := svc.RecordAttendance(context.Background(), dosen, req)

	var pe *PermissionError
	require.True(t, errors.As(err, &pe))
	require.NoError(t, mock.ExpectationsWereMet())
}
