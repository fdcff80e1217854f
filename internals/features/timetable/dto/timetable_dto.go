package dto

// ============================
// Request DTO
// ============================

// CreateTimetableRequest dipakai POST / (create-or-update by natural key).
// Field wajib dicek manual di controller supaya pesan "missing fields"
// tetap kompatibel dengan client lama (slot dilaporkan sebagai "timeSlot").
type CreateTimetableRequest struct {
	Room        string `json:"room"`
	Day         string `json:"day"`
	Slot        string `json:"slot"`
	Department  string `json:"department"`
	SubjectCode string `json:"subjectCode"`
	SubjectName string `json:"subjectName"`
	Branch      string `json:"branch"`
	Section     string `json:"section"`
	Teacher     string `json:"teacher"`
}

// UpdateTimetableRequest dipakai PUT /:id. Natural key (room/day/slot)
// immutable: hanya field isi yang boleh berubah.
type UpdateTimetableRequest struct {
	Department  string `json:"department"`
	SubjectCode string `json:"subjectCode"`
	SubjectName string `json:"subjectName"`
	Branch      string `json:"branch"`
	Section     string `json:"section"`
	Teacher     string `json:"teacher"`
}

// ============================
// Bulk import (transient)
// ============================

// ImportRow: satu baris spreadsheet yang sudah lolos validasi & dinormalisasi.
// Field opsional nil kalau cell kosong/absen.
type ImportRow struct {
	Room        string  `json:"room"`
	Day         string  `json:"day"`
	Slot        string  `json:"slot"`
	Department  string  `json:"department"`
	SubjectCode *string `json:"subjectCode,omitempty"`
	SubjectName *string `json:"subjectName,omitempty"`
	Branch      *string `json:"branch,omitempty"`
	Section     *string `json:"section,omitempty"`
	Teacher     *string `json:"teacher,omitempty"`
}

// RowError: satu baris gagal validasi. Row adalah posisi baris di sheet
// (1-based) plus 1 karena header menempati baris pertama.
type RowError struct {
	Row    int      `json:"row"`
	Errors []string `json:"errors"`
}

type ImportSuccess struct {
	Room       string `json:"room"`
	Day        string `json:"day"`
	Slot       string `json:"slot"`
	Department string `json:"department"`
}

type ImportFailure struct {
	Room  string `json:"room"`
	Day   string `json:"day"`
	Slot  string `json:"slot"`
	Error string `json:"error"`
}

// ImportOutcome: ledger hasil reconciliation, urut sesuai input.
type ImportOutcome struct {
	Successful []ImportSuccess
	Failed     []ImportFailure
}

// FullySuccessful: seluruh baris tersimpan tanpa kegagalan persistence.
func (o ImportOutcome) FullySuccessful() bool {
	return len(o.Failed) == 0
}

// ============================
// Report
// ============================

const (
	ImportStatusFull    = "full-success"
	ImportStatusPartial = "partial-success"
)

type ImportReport struct {
	Status     string          `json:"-"`
	Message    string          `json:"message"`
	Successful []ImportSuccess `json:"successful"`
	Failed     []ImportFailure `json:"failed,omitempty"`
}
