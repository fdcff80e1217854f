package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/rooms/controller"
)

func RoomRoutes(api fiber.Router, db *gorm.DB) {
	roomCtrl := controller.NewRoomController(db)

	room := api.Group("/rooms")
	room.Get("/", roomCtrl.GetAllRooms)
	room.Post("/", roomCtrl.CreateRoom)
}
