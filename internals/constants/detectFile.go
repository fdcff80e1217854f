package constants

import "strings"

// MIME types yang diterima untuk bulk upload (hanya file Excel).
const (
	MimeExcelLegacy  = "application/vnd.ms-excel"
	MimeExcelOpenXML = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Batas ukuran file upload (5MB).
const MaxUploadSize = 5 * 1024 * 1024

func IsSpreadsheetMime(mime string) bool {
	switch strings.TrimSpace(strings.ToLower(mime)) {
	case MimeExcelLegacy, MimeExcelOpenXML:
		return true
	default:
		return false
	}
}
