package model

import "time"

// TimetableModel merepresentasikan satu cell jadwal: satu ruangan terpakai
// pada kombinasi hari + slot waktu. Natural key (room, day, slot) dijaga
// unik lewat composite index; timetable_id hanya surrogate key storage.
type TimetableModel struct {
	TimetableID string    `gorm:"column:timetable_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Room        string    `gorm:"column:timetable_room;type:varchar(100);not null;uniqueIndex:idx_timetables_natural_key" json:"room"`
	Day         string    `gorm:"column:timetable_day;type:varchar(20);not null;uniqueIndex:idx_timetables_natural_key" json:"day"`
	Slot        string    `gorm:"column:timetable_slot;type:varchar(50);not null;uniqueIndex:idx_timetables_natural_key" json:"slot"`
	Department  string    `gorm:"column:timetable_department;type:varchar(100);not null" json:"department"`
	SubjectCode string    `gorm:"column:timetable_subject_code;type:varchar(50)" json:"subjectCode,omitempty"`
	SubjectName string    `gorm:"column:timetable_subject_name;type:varchar(255)" json:"subjectName,omitempty"`
	Branch      string    `gorm:"column:timetable_branch;type:varchar(100)" json:"branch,omitempty"`
	Section     string    `gorm:"column:timetable_section;type:varchar(50)" json:"section,omitempty"`
	Teacher     string    `gorm:"column:timetable_teacher;type:varchar(255)" json:"teacher,omitempty"`
	CreatedAt   time.Time `gorm:"column:timetable_created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:timetable_updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for TimetableModel
func (TimetableModel) TableName() string {
	return "timetables"
}
