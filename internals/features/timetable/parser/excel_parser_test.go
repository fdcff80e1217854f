package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

var header = []string{"room", "day", "slot", "department", "subjectCode", "subjectName", "branch", "section", "teacher"}

func TestParseAllValid(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		header,
		{"A101", "Monday", "9:00-10:00", "CS", "CS101", "Intro to CS", "CSE", "A", "Dr. Rao"},
		{" A102 ", " Tuesday ", "10:00-11:00", " Mathematics "},
	})

	result, err := Parse(buf)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Rows, 2)

	first := result.Rows[0]
	assert.Equal(t, "A101", first.Room)
	assert.Equal(t, "Monday", first.Day)
	assert.Equal(t, "9:00-10:00", first.Slot)
	assert.Equal(t, "CS", first.Department)
	require.NotNil(t, first.SubjectCode)
	assert.Equal(t, "CS101", *first.SubjectCode)
	require.NotNil(t, first.Teacher)
	assert.Equal(t, "Dr. Rao", *first.Teacher)

	// Whitespace di-trim, field opsional yang kosong jadi nil.
	second := result.Rows[1]
	assert.Equal(t, "A102", second.Room)
	assert.Equal(t, "Tuesday", second.Day)
	assert.Equal(t, "Mathematics", second.Department)
	assert.Nil(t, second.SubjectCode)
	assert.Nil(t, second.SubjectName)
	assert.Nil(t, second.Branch)
	assert.Nil(t, second.Section)
	assert.Nil(t, second.Teacher)
}

func TestParseMissingRequiredFields(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		header,
		{"", "Monday", "9:00-10:00", ""},
	})

	result, err := Parse(buf)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Empty(t, result.Rows)
	require.Len(t, result.Errors, 1)

	rowErr := result.Errors[0]
	assert.Equal(t, 2, rowErr.Row)
	require.Len(t, rowErr.Errors, 2)
	assert.Contains(t, rowErr.Errors, "Missing or empty 'room'")
	assert.Contains(t, rowErr.Errors, "Missing or empty 'department'")
}

func TestParseInvalidDay(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		header,
		{"A101", "Funday", "9:00-10:00", "CS"},
	})

	result, err := Parse(buf)
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	require.Len(t, result.Errors[0].Errors, 1)
	assert.Contains(t, result.Errors[0].Errors[0], "Invalid day 'Funday'")
	assert.Contains(t, result.Errors[0].Errors[0], "Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday")
}

func TestParseDayIsCaseSensitive(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		header,
		{"A101", "monday", "9:00-10:00", "CS"},
	})

	result, err := Parse(buf)
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Errors[0], "Invalid day 'monday'")
}

func TestParseRowsValidatedIndependently(t *testing.T) {
	// Skenario 3 baris: baris kedua room kosong, sisanya valid.
	buf := buildWorkbook(t, [][]string{
		header,
		{"A101", "Monday", "9:00-10:00", "CS"},
		{"", "Tuesday", "10:00-11:00", "Math"},
		{"A103", "Wednesday", "11:00-12:00", "Physics"},
	})

	result, err := Parse(buf)
	require.NoError(t, err)

	assert.False(t, result.Success)

	// Baris invalid dilaporkan sebagai row 3 (header = row 1).
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Errors, "Missing or empty 'room'")

	// Subset valid tetap dikembalikan walau Success false.
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "A101", result.Rows[0].Room)
	assert.Equal(t, "A103", result.Rows[1].Room)
}

func TestParseUnreadableBuffer(t *testing.T) {
	_, err := Parse([]byte("this is not a workbook"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to parse Excel file")
}

func TestParseHeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, [][]string{header})

	_, err := Parse(buf)
	require.Error(t, err)
	assert.Equal(t, "Excel sheet is empty", err.Error())
}

func TestParseOnlyFirstSheetIsRead(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"room", "day", "slot", "department"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"A101", "Monday", "9:00-10:00", "CS"}))

	// Sheet kedua berisi data rusak yang harus diabaikan.
	_, err := f.NewSheet("Extra")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Extra", "A1", &[]interface{}{"garbage"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	result, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Len(t, result.Rows, 1)
}

func TestParseSkipsBlankRows(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		header,
		{"A101", "Monday", "9:00-10:00", "CS"},
		{"", "", "", ""},
		{"A102", "", "10:00-11:00", "CS"},
	})

	result, err := Parse(buf)
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Rows, 1)
	require.Len(t, result.Errors, 1)
	// Baris blank dilewati tapi tidak menggeser penomoran baris lain.
	assert.Equal(t, 4, result.Errors[0].Row)
}
