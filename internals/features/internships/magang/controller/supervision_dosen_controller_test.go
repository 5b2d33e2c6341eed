package controller

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magangku_backend/internals/constants"
)

func TestListSupervisionsMagangBukanBimbingan(t *testing.T) {
	db, mock := newMockDB(t)
	ctrl := NewSupervisionDosenController(db, nil)

	app := fiber.New()
	app.Use(withActor(uuid.New(), constants.RoleDosen))
	app.Get("/api/d/internships/:id/supervisions", ctrl.ListSupervisions)

	// magang bukan bimbingan dosen ini → row kosong → 404, bukan 500
	mock.ExpectQuery(`SELECT .* FROM "internships"`).WillReturnRows(internshipRows())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet,
		"/api/d/internships/"+uuid.NewString()+"/supervisions", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Magang bimbingan tidak ditemukan")
	require.NoError(t, mock.ExpectationsWereMet())
}
