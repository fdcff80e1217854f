package dto

import (
	"time"

	"timetable_backend/internals/features/rooms/model"
)

// ============================
// Response DTO
// ============================

type RoomDTO struct {
	RoomID    string    `json:"id"`
	RoomName  string    `json:"roomName"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateRoomRequest struct {
	RoomName string `json:"roomName" validate:"required,min=1,max=100"`
}

// ============================
// Converter
// ============================

func ToRoomDTO(m model.RoomModel) RoomDTO {
	return RoomDTO{
		RoomID:    m.RoomID,
		RoomName:  m.RoomName,
		CreatedAt: m.CreatedAt,
	}
}
