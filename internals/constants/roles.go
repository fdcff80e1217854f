package constants

// Role dikirim per-request lewat header/body, tanpa session.
const (
	RoleInstituteAdmin  = "INSTITUTE_ADMIN"
	RoleDepartmentAdmin = "DEPARTMENT_ADMIN"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllAdminRoles = []string{
		RoleInstituteAdmin,
		RoleDepartmentAdmin,
	}

	InstituteAdminOnly = []string{
		RoleInstituteAdmin,
	}
)

// ValidDays: daftar hari yang diterima untuk cell timetable (case-sensitive).
var ValidDays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func IsValidDay(day string) bool {
	for _, d := range ValidDays {
		if day == d {
			return true
		}
	}
	return false
}
