package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/timetable/controller"
	"timetable_backend/internals/middlewares"
	"timetable_backend/internals/middlewares/auth"
)

func TimetableRoutes(api fiber.Router, db *gorm.DB) {
	timetableCtrl := controller.NewTimetableController(db)

	timetable := api.Group("/timetables")
	timetable.Get("/", timetableCtrl.GetAll)

	timetable.Post("/",
		auth.CheckRole(constants.AllAdminRoles...),
		timetableCtrl.CreateOrUpdate,
	)

	timetable.Put("/:id",
		auth.CheckRole(constants.AllAdminRoles...),
		auth.CheckDepartmentAccess(db),
		timetableCtrl.Update,
	)

	timetable.Delete("/:id",
		auth.CheckRole(constants.InstituteAdminOnly...),
		timetableCtrl.Delete,
	)

	// Bulk upload khusus institute admin.
	timetable.Post("/bulk-upload",
		middlewares.BulkUploadRateLimiter(),
		auth.CheckRole(constants.InstituteAdminOnly...),
		timetableCtrl.BulkUpload,
	)
}
