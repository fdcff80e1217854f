package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/rooms/dto"
	"timetable_backend/internals/features/rooms/model"
	helper "timetable_backend/internals/helpers"
)

var validateRoom = validator.New()

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

// =============================
// 📄 Get All Rooms
// =============================
func (ctrl *RoomController) GetAllRooms(c *fiber.Ctx) error {
	var rooms []model.RoomModel
	if err := ctrl.DB.Order("room_name ASC").Find(&rooms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch rooms")
	}

	result := make([]dto.RoomDTO, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, dto.ToRoomDTO(r))
	}

	return c.JSON(result)
}

// =============================
// ➕ Create Room
// =============================
func (ctrl *RoomController) CreateRoom(c *fiber.Ctx) error {
	var body dto.CreateRoomRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	body.RoomName = strings.TrimSpace(body.RoomName)
	if err := validateRoom.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.RoomModel
	err := ctrl.DB.First(&existing, "room_name = ?", body.RoomName).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Room already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create room")
	}

	room := model.RoomModel{RoomName: body.RoomName}
	if err := ctrl.DB.Create(&room).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create room")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToRoomDTO(room))
}
