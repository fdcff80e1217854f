package service

import (
	"context"
	"fmt"
	"log"

	"timetable_backend/internals/features/timetable/dto"
	"timetable_backend/internals/features/timetable/model"
)

// TimetableStore: operasi persistence yang dibutuhkan reconciliation.
// FindByNaturalKey mengembalikan (nil, nil) kalau cell belum ada.
type TimetableStore interface {
	FindByNaturalKey(ctx context.Context, room, day, slot string) (*model.TimetableModel, error)
	Create(ctx context.Context, entry *model.TimetableModel) error
	Update(ctx context.Context, entry *model.TimetableModel) error
}

// RoomStore: lookup & auto-create ruangan saat import.
type RoomStore interface {
	Exists(ctx context.Context, roomName string) (bool, error)
	Create(ctx context.Context, roomName string) error
}

type ImportService struct {
	timetables TimetableStore
	rooms      RoomStore
}

func NewImportService(timetables TimetableStore, rooms RoomStore) *ImportService {
	return &ImportService{
		timetables: timetables,
		rooms:      rooms,
	}
}

// ImportRows menjalankan reconciliation: upsert tiap baris valid ke cell
// berdasarkan natural key (room, day, slot), urut sesuai input. Kegagalan
// persistence satu baris dicatat di Failed tanpa menghentikan baris lain.
// Baris duplikat pada natural key yang sama: baris terakhir menang.
func (s *ImportService) ImportRows(ctx context.Context, rows []dto.ImportRow) dto.ImportOutcome {
	s.ensureRooms(ctx, rows)

	var outcome dto.ImportOutcome
	for _, row := range rows {
		if err := s.upsertRow(ctx, row); err != nil {
			outcome.Failed = append(outcome.Failed, dto.ImportFailure{
				Room:  row.Room,
				Day:   row.Day,
				Slot:  row.Slot,
				Error: err.Error(),
			})
			continue
		}
		outcome.Successful = append(outcome.Successful, dto.ImportSuccess{
			Room:       row.Room,
			Day:        row.Day,
			Slot:       row.Slot,
			Department: row.Department,
		})
	}
	return outcome
}

// ensureRooms membuat ruangan yang belum dikenal, best-effort: gagal bikin
// room tidak menggagalkan import, cukup dicatat di log.
func (s *ImportService) ensureRooms(ctx context.Context, rows []dto.ImportRow) {
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if seen[row.Room] {
			continue
		}
		seen[row.Room] = true

		exists, err := s.rooms.Exists(ctx, row.Room)
		if err != nil {
			log.Printf("[WARN] room lookup '%s' gagal: %v", row.Room, err)
			continue
		}
		if exists {
			continue
		}
		if err := s.rooms.Create(ctx, row.Room); err != nil {
			log.Printf("[WARN] auto-create room '%s' gagal: %v", row.Room, err)
		}
	}
}

func (s *ImportService) upsertRow(ctx context.Context, row dto.ImportRow) error {
	entry, err := s.timetables.FindByNaturalKey(ctx, row.Room, row.Day, row.Slot)
	if err != nil {
		return err
	}

	if entry != nil {
		applyRow(entry, row)
		return s.timetables.Update(ctx, entry)
	}

	entry = &model.TimetableModel{
		Room: row.Room,
		Day:  row.Day,
		Slot: row.Slot,
	}
	applyRow(entry, row)
	return s.timetables.Create(ctx, entry)
}

// applyRow menimpa seluruh field isi cell dengan nilai baris, termasuk
// mengosongkan field opsional yang tidak ada di baris.
func applyRow(entry *model.TimetableModel, row dto.ImportRow) {
	entry.Department = row.Department
	entry.SubjectCode = deref(row.SubjectCode)
	entry.SubjectName = deref(row.SubjectName)
	entry.Branch = deref(row.Branch)
	entry.Section = deref(row.Section)
	entry.Teacher = deref(row.Teacher)
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// BuildImportReport merakit response akhir dari ledger reconciliation.
// Sekali validasi lolos, import tidak pernah ditolak total: hasilnya
// full-success atau partial-success.
func BuildImportReport(outcome dto.ImportOutcome) dto.ImportReport {
	report := dto.ImportReport{
		Successful: outcome.Successful,
		Failed:     outcome.Failed,
	}
	if report.Successful == nil {
		report.Successful = []dto.ImportSuccess{}
	}

	if outcome.FullySuccessful() {
		report.Status = dto.ImportStatusFull
		report.Message = fmt.Sprintf("Successfully updated %d timetable entries", len(outcome.Successful))
		return report
	}

	report.Status = dto.ImportStatusPartial
	report.Message = fmt.Sprintf("Partially completed: %d successful, %d failed",
		len(outcome.Successful), len(outcome.Failed))
	return report
}
