package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/timetable/dto"
)

// Kolom wajib di sheet bulk upload.
var requiredFields = []string{"room", "day", "slot", "department"}

// ParseResult: hasil parse satu workbook. Success true hanya kalau semua
// baris valid; Rows tetap berisi subset yang valid walau Success false,
// caller yang memutuskan mau dipakai atau tidak.
type ParseResult struct {
	Success bool
	Rows    []dto.ImportRow
	Errors  []dto.RowError
}

// Parse membaca buffer Excel dan memvalidasi tiap baris secara independen.
// Error structural (bukan per-baris) dikembalikan sebagai error biasa:
// workbook tidak terbaca, tidak ada sheet, atau sheet tanpa data rows.
// Hanya sheet pertama yang dibaca.
func Parse(buf []byte) (*ParseResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("Failed to parse Excel file: %v", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("Excel file is empty or has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse Excel file: %v", err)
	}
	if len(rows) < 2 {
		return nil, errors.New("Excel sheet is empty")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	result := &ParseResult{}
	dataRows := 0

	for i, raw := range rows[1:] {
		// Posisi di sheet +1 untuk header yang menempati baris pertama.
		rowNumber := i + 2

		record := mapRow(headers, raw)
		if isBlank(record) {
			continue
		}
		dataRows++

		rowErrors := validateRow(record)
		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, dto.RowError{
				Row:    rowNumber,
				Errors: rowErrors,
			})
			continue
		}

		result.Rows = append(result.Rows, dto.ImportRow{
			Room:        strings.TrimSpace(record["room"]),
			Day:         strings.TrimSpace(record["day"]),
			Slot:        strings.TrimSpace(record["slot"]),
			Department:  strings.TrimSpace(record["department"]),
			SubjectCode: optional(record["subjectCode"]),
			SubjectName: optional(record["subjectName"]),
			Branch:      optional(record["branch"]),
			Section:     optional(record["section"]),
			Teacher:     optional(record["teacher"]),
		})
	}

	if dataRows == 0 {
		return nil, errors.New("Excel sheet is empty")
	}

	result.Success = len(result.Errors) == 0
	return result, nil
}

// mapRow memetakan cell ke nama kolom dari header. Cell yang tidak ada
// (baris lebih pendek dari header) dianggap string kosong.
func mapRow(headers []string, raw []string) map[string]string {
	record := make(map[string]string, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		if i < len(raw) {
			record[h] = raw[i]
		} else {
			record[h] = ""
		}
	}
	return record
}

func validateRow(record map[string]string) []string {
	var rowErrors []string

	for _, field := range requiredFields {
		if strings.TrimSpace(record[field]) == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Missing or empty '%s'", field))
		}
	}

	// Case-sensitive: "monday" tidak diterima.
	if day := record["day"]; day != "" && !constants.IsValidDay(strings.TrimSpace(day)) {
		rowErrors = append(rowErrors, fmt.Sprintf(
			"Invalid day '%s'. Must be one of: %s",
			day, strings.Join(constants.ValidDays, ", "),
		))
	}

	return rowErrors
}

func isBlank(record map[string]string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func optional(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
