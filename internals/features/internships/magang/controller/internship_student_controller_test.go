package controller

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magangku_backend/internals/constants"
	m "magangku_backend/internals/features/internships/magang/model"
)

func TestGetMyInternshipTidakDitemukan(t *testing.T) {
	db, mock := newMockDB(t)
	ctrl := NewInternshipStudentController(db, nil)

	app := fiber.New()
	app.Use(withActor(uuid.New(), constants.RoleMahasiswa))
	app.Get("/api/u/internships/:id", ctrl.GetMyInternship)

	// row kosong → 404, bukan 500
	mock.ExpectQuery(`SELECT .* FROM "internships"`).WillReturnRows(internshipRows())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/u/internships/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Pengajuan magang tidak ditemukan")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMyInternshipsMilikSendiri(t *testing.T) {
	db, mock := newMockDB(t)
	ctrl := NewInternshipStudentController(db, nil)

	mahasiswaID := uuid.New()
	mo := internshipFixture(m.StatusOngoing)
	mo.InternshipMahasiswaID = mahasiswaID

	app := fiber.New()
	app.Use(withActor(mahasiswaID, constants.RoleMahasiswa))
	app.Get("/api/u/internships", ctrl.MyInternships)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "internships" WHERE .*internship_mahasiswa_id`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .* FROM "internships" WHERE .*internship_mahasiswa_id`).
		WillReturnRows(internshipRows(mo))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/u/internships", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}
