package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "magangku_backend/internals/features/internships/magang/model"
)

var validate = validator.New()

func validCreateRequest() CreateInternshipRequest {
	return CreateInternshipRequest{
		Category:        m.CategoryKKL,
		CompanyName:     "PT Maju Jaya",
		CompanyAddress:  "Jl. Sudirman No. 10, Jakarta",
		CompanyPhone:    "0215551234",
		SupervisorName:  "Budi Santoso",
		SupervisorPhone: "081234567890",
		StartDate:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateRequestValidation(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, validate.Struct(req))

	bad := validCreateRequest()
	bad.Category = "PKL"
	assert.Error(t, validate.Struct(bad), "kategori di luar KKL/KKN harus gagal")

	bad = validCreateRequest()
	bad.CompanyName = ""
	assert.Error(t, validate.Struct(bad))

	bad = validCreateRequest()
	bad.CompanyPhone = "123"
	assert.Error(t, validate.Struct(bad), "telepon terlalu pendek harus gagal")
}

func TestCreateRequestNormalize(t *testing.T) {
	notes := "  harap diproses  "
	req := validCreateRequest()
	req.CompanyName = "  PT Maju Jaya  "
	req.Notes = &notes

	req.Normalize()
	assert.Equal(t, "PT Maju Jaya", req.CompanyName)
	require.NotNil(t, req.Notes)
	assert.Equal(t, "harap diproses", *req.Notes)

	empty := "   "
	req.Notes = &empty
	req.Normalize()
	assert.Nil(t, req.Notes, "notes whitespace-only dinormalkan jadi nil")
}

func TestCreateRequestToModel(t *testing.T) {
	mahasiswaID := uuid.New()
	mo := validCreateRequest().ToModel(mahasiswaID)

	assert.Equal(t, mahasiswaID, mo.InternshipMahasiswaID)
	assert.Equal(t, m.StatusPending, mo.InternshipStatus, "pengajuan baru langsung PENDING")
	assert.Equal(t, m.CategoryKKL, mo.InternshipCategory)
	assert.Nil(t, mo.InternshipDosenID)
	assert.Nil(t, mo.InternshipApprovedBy)
}

func TestUpdateRequestApply(t *testing.T) {
	mo := validCreateRequest().ToModel(uuid.New())

	name := "PT Sejahtera"
	end := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	req := UpdateInternshipRequest{
		CompanyName: &name,
		EndDate:     &end,
	}

	changed := req.Apply(&mo)
	assert.Equal(t, "PT Sejahtera", mo.InternshipCompanyName)
	assert.Equal(t, end, mo.InternshipEndDate)
	assert.Contains(t, changed, "company_name")
	assert.Contains(t, changed, "end_date")
	assert.NotContains(t, changed, "company_address")

	// tanpa field → tidak ada perubahan
	var noop UpdateInternshipRequest
	assert.Empty(t, noop.Apply(&mo))
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())

	_, err = parseDate("01-03-2026")
	assert.Error(t, err)
	_, err = parseDate("")
	assert.Error(t, err)
}
