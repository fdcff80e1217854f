package model

import "time"

type RoomModel struct {
	RoomID    string    `gorm:"column:room_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	RoomName  string    `gorm:"column:room_name;type:varchar(100);not null;unique" json:"roomName"`
	CreatedAt time.Time `gorm:"column:room_created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:room_updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for RoomModel
func (RoomModel) TableName() string {
	return "rooms"
}
