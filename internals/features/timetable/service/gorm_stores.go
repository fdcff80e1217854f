package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	roomModel "timetable_backend/internals/features/rooms/model"
	"timetable_backend/internals/features/timetable/model"
)

// Implementasi store di atas GORM. Dipisah dari engine supaya
// reconciliation bisa diuji tanpa database.

type gormTimetableStore struct {
	db *gorm.DB
}

func NewGormTimetableStore(db *gorm.DB) TimetableStore {
	return &gormTimetableStore{db: db}
}

func (s *gormTimetableStore) FindByNaturalKey(ctx context.Context, room, day, slot string) (*model.TimetableModel, error) {
	var entry model.TimetableModel
	err := s.db.WithContext(ctx).
		Where("timetable_room = ? AND timetable_day = ? AND timetable_slot = ?", room, day, slot).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *gormTimetableStore) Create(ctx context.Context, entry *model.TimetableModel) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *gormTimetableStore) Update(ctx context.Context, entry *model.TimetableModel) error {
	return s.db.WithContext(ctx).Save(entry).Error
}

type gormRoomStore struct {
	db *gorm.DB
}

func NewGormRoomStore(db *gorm.DB) RoomStore {
	return &gormRoomStore{db: db}
}

func (s *gormRoomStore) Exists(ctx context.Context, roomName string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&roomModel.RoomModel{}).
		Where("room_name = ?", roomName).
		Count(&count).Error
	return count > 0, err
}

func (s *gormRoomStore) Create(ctx context.Context, roomName string) error {
	return s.db.WithContext(ctx).Create(&roomModel.RoomModel{RoomName: roomName}).Error
}
