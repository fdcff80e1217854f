package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	databases "timetable_backend/internals/databases"
	roomRoute "timetable_backend/internals/features/rooms/route"
	timetableRoute "timetable_backend/internals/features/timetable/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := databases.Ping(); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})

	api := app.Group("/api")

	log.Println("[INFO] Setting up TimetableRoutes...")
	timetableRoute.TimetableRoutes(api, db)

	log.Println("[INFO] Setting up RoomRoutes...")
	roomRoute.RoomRoutes(api, db)
}
