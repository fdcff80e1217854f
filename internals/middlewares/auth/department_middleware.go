package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/timetable/model"
	"timetable_backend/internals/features/timetable/service"
)

var errEntryNotFound = errors.New("timetable entry not found")

// findEntryByID memuat cell yang mau di-edit; dipisah supaya gate bisa
// diuji tanpa database.
type findEntryByID func(c *fiber.Ctx, id string) (*model.TimetableModel, error)

// CheckDepartmentAccess: institute admin boleh edit semua cell, department
// admin hanya cell milik department-nya sendiri. Dipasang pada PUT /:id
// sesudah CheckRole.
func CheckDepartmentAccess(db *gorm.DB) fiber.Handler {
	return checkDepartmentAccess(func(c *fiber.Ctx, id string) (*model.TimetableModel, error) {
		var entry model.TimetableModel
		err := db.First(&entry, "timetable_id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errEntryNotFound
		}
		if err != nil {
			return nil, err
		}
		return &entry, nil
	})
}

func checkDepartmentAccess(find findEntryByID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := service.CallerContext{
			Role:       ExtractRole(c),
			Department: ExtractDepartment(c),
		}
		if caller.Role == constants.RoleInstituteAdmin {
			return c.Next()
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid timetable id",
			})
		}

		entry, err := find(c, id)
		if err != nil {
			if errors.Is(err, errEntryNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"message": "Timetable entry not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": err.Error(),
			})
		}

		if !caller.CanEditCell(entry.Department) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "You can only edit your department slots",
			})
		}

		return c.Next()
	}
}
