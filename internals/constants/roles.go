package constants

import "fmt"

// Nama role yang dikenal sistem
const (
	RoleAdmin     = "admin"
	RoleDosen     = "dosen"
	RoleMahasiswa = "mahasiswa"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyDosenCanAccess     = "❌ Hanya dosen pembimbing yang boleh mengakses fitur %s."
	ErrOnlyMahasiswaCanAccess = "❌ Hanya mahasiswa yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorDosen(feature string) string {
	return fmt.Sprintf(ErrOnlyDosenCanAccess, feature)
}

func RoleErrorMahasiswa(feature string) string {
	return fmt.Sprintf(ErrOnlyMahasiswaCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleDosen,
		RoleMahasiswa,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	DosenOnly = []string{
		RoleDosen,
	}

	MahasiswaOnly = []string{
		RoleMahasiswa,
	}

	DosenAndAdmin = []string{
		RoleDosen,
		RoleAdmin,
	}
)
