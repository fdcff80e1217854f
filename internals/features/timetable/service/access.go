package service

import (
	"strings"

	"gorm.io/gorm"

	"timetable_backend/internals/constants"
)

// CallerContext: role + department yang dikirim per-request oleh client.
// Tidak ada ambient state; semua operasi core menerima nilai ini eksplisit.
type CallerContext struct {
	Role       string
	Department string
}

func (cc CallerContext) IsInstituteAdmin() bool {
	return cc.Role == constants.RoleInstituteAdmin
}

func (cc CallerContext) IsDepartmentAdmin() bool {
	return cc.Role == constants.RoleDepartmentAdmin
}

// CanBulkImport: bulk upload khusus institute admin.
func (cc CallerContext) CanBulkImport() bool {
	return cc.IsInstituteAdmin()
}

// CanDelete: hapus cell khusus institute admin.
func (cc CallerContext) CanDelete() bool {
	return cc.IsInstituteAdmin()
}

// CanEditCell: department admin hanya boleh mengubah cell milik
// department-nya sendiri; institute admin bebas.
func (cc CallerContext) CanEditCell(existingDepartment string) bool {
	if cc.IsInstituteAdmin() {
		return true
	}
	if cc.IsDepartmentAdmin() {
		return existingDepartment == cc.Department
	}
	return false
}

// ApplyReadFilter menyempitkan query list sesuai role caller dan filter
// ruangan opsional. Department admin hanya melihat cell department-nya,
// institute admin melihat semua.
func ApplyReadFilter(q *gorm.DB, caller CallerContext, roomFilter string) *gorm.DB {
	if caller.IsDepartmentAdmin() && strings.TrimSpace(caller.Department) != "" {
		q = q.Where("timetable_department = ?", caller.Department)
	}
	if roomFilter != "" {
		q = q.Where("timetable_room = ?", roomFilter)
	}
	return q
}
