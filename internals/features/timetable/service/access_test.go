package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timetable_backend/internals/constants"
)

func TestCanEditCell(t *testing.T) {
	tests := []struct {
		name       string
		caller     CallerContext
		cellDept   string
		wantAccess bool
	}{
		{
			name:       "institute admin bypasses department check",
			caller:     CallerContext{Role: constants.RoleInstituteAdmin},
			cellDept:   "Physics",
			wantAccess: true,
		},
		{
			name:       "department admin edits own department",
			caller:     CallerContext{Role: constants.RoleDepartmentAdmin, Department: "Mathematics"},
			cellDept:   "Mathematics",
			wantAccess: true,
		},
		{
			name:       "department admin rejected for other department",
			caller:     CallerContext{Role: constants.RoleDepartmentAdmin, Department: "Mathematics"},
			cellDept:   "Physics",
			wantAccess: false,
		},
		{
			name:       "unknown role rejected",
			caller:     CallerContext{Role: "STUDENT"},
			cellDept:   "Mathematics",
			wantAccess: false,
		},
		{
			name:       "absent role rejected",
			caller:     CallerContext{},
			cellDept:   "Mathematics",
			wantAccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAccess, tt.caller.CanEditCell(tt.cellDept))
		})
	}
}

func TestBulkImportAndDeleteGates(t *testing.T) {
	institute := CallerContext{Role: constants.RoleInstituteAdmin}
	department := CallerContext{Role: constants.RoleDepartmentAdmin, Department: "CS"}
	anonymous := CallerContext{}

	assert.True(t, institute.CanBulkImport())
	assert.True(t, institute.CanDelete())

	assert.False(t, department.CanBulkImport())
	assert.False(t, department.CanDelete())

	assert.False(t, anonymous.CanBulkImport())
	assert.False(t, anonymous.CanDelete())
}
