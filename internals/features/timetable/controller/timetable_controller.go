package controller

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/timetable/dto"
	"timetable_backend/internals/features/timetable/model"
	"timetable_backend/internals/features/timetable/parser"
	"timetable_backend/internals/features/timetable/service"
	"timetable_backend/internals/middlewares/auth"
)

type TimetableController struct {
	DB       *gorm.DB
	Importer *service.ImportService
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{
		DB: db,
		Importer: service.NewImportService(
			service.NewGormTimetableStore(db),
			service.NewGormRoomStore(db),
		),
	}
}

// callerFromRequest membaca role/department lewat kanal yang sama dengan
// CheckRole (header atau body JSON), supaya caller yang lolos gate tidak
// berubah identitas di controller.
func callerFromRequest(c *fiber.Ctx) service.CallerContext {
	return service.CallerContext{
		Role:       auth.ExtractRole(c),
		Department: auth.ExtractDepartment(c),
	}
}

// =============================
// 📄 Get All Timetables
// =============================
// Department admin hanya melihat cell department-nya; filter ?room=
// menyempitkan untuk kedua role.
func (ctrl *TimetableController) GetAll(c *fiber.Ctx) error {
	caller := callerFromRequest(c)
	roomFilter := c.Query("room")

	q := service.ApplyReadFilter(ctrl.DB.Model(&model.TimetableModel{}), caller, roomFilter)

	var entries []model.TimetableModel
	if err := q.Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.JSON(entries)
}

// =============================
// ➕ Create Or Update (by natural key)
// =============================
func (ctrl *TimetableController) CreateOrUpdate(c *fiber.Ctx) error {
	var body dto.CreateTimetableRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	// Pesan lama melaporkan slot sebagai "timeSlot"; client existing
	// bergantung pada nama itu.
	var missingFields []string
	if strings.TrimSpace(body.Room) == "" {
		missingFields = append(missingFields, "room")
	}
	if strings.TrimSpace(body.Day) == "" {
		missingFields = append(missingFields, "day")
	}
	if strings.TrimSpace(body.Slot) == "" {
		missingFields = append(missingFields, "timeSlot")
	}

	if len(missingFields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":       fmt.Sprintf("Validation failed: Missing required fields: %s", strings.Join(missingFields, ", ")),
			"missingFields": missingFields,
		})
	}

	var entry model.TimetableModel
	err := ctrl.DB.
		Where("timetable_room = ? AND timetable_day = ? AND timetable_slot = ?", body.Room, body.Day, body.Slot).
		First(&entry).Error

	if err == nil {
		// Update cell yang sudah ada: department admin hanya boleh
		// menimpa cell milik department-nya sendiri.
		caller := callerFromRequest(c)
		if !caller.CanEditCell(entry.Department) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "You can only edit your department slots",
			})
		}

		entry.Department = body.Department
		entry.SubjectCode = body.SubjectCode
		entry.SubjectName = body.SubjectName
		entry.Branch = body.Branch
		entry.Section = body.Section
		entry.Teacher = body.Teacher

		if err := ctrl.DB.Save(&entry).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return c.JSON(entry)
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	entry = model.TimetableModel{
		Room:        body.Room,
		Day:         body.Day,
		Slot:        body.Slot,
		Department:  body.Department,
		SubjectCode: body.SubjectCode,
		SubjectName: body.SubjectName,
		Branch:      body.Branch,
		Section:     body.Section,
		Teacher:     body.Teacher,
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// =============================
// 🔄 Update (by id, natural key immutable)
// =============================
func (ctrl *TimetableController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid timetable id",
		})
	}

	var body dto.UpdateTimetableRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	var entry model.TimetableModel
	if err := ctrl.DB.First(&entry, "timetable_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Timetable entry not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	entry.Department = body.Department
	entry.SubjectCode = body.SubjectCode
	entry.SubjectName = body.SubjectName
	entry.Branch = body.Branch
	entry.Section = body.Section
	entry.Teacher = body.Teacher

	if err := ctrl.DB.Save(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.JSON(entry)
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *TimetableController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid timetable id",
		})
	}

	if err := ctrl.DB.Delete(&model.TimetableModel{}, "timetable_id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Deleted successfully"})
}

// =============================
// 📥 Bulk Upload (Excel)
// =============================
// Alur: intake file → parse + validasi per baris (all-or-nothing gate) →
// reconciliation per baris (partial-failure ditoleransi) → report.
func (ctrl *TimetableController) BulkUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No file uploaded. Please upload an Excel file.",
		})
	}

	if fileHeader.Size > constants.MaxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "File too large. Maximum size is 5MB.",
		})
	}

	// Hanya content type yang menentukan; nama file tidak dipercaya.
	mime := fileHeader.Header.Get(fiber.HeaderContentType)
	if !constants.IsSpreadsheetMime(mime) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid file type. Only Excel files (.xls, .xlsx) are allowed.",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error during bulk upload",
			"error":   err.Error(),
		})
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error during bulk upload",
			"error":   err.Error(),
		})
	}

	parseResult, err := parser.Parse(buf)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Excel file validation failed",
			"errors":  []string{err.Error()},
		})
	}

	// Gate all-or-nothing: satu baris invalid menahan seluruh import.
	// Subset valid di parseResult.Rows sengaja tidak dipakai di sini.
	if !parseResult.Success {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Excel file validation failed",
			"errors":  parseResult.Errors,
		})
	}

	outcome := ctrl.Importer.ImportRows(c.UserContext(), parseResult.Rows)
	report := service.BuildImportReport(outcome)

	status := fiber.StatusOK
	if report.Status == dto.ImportStatusPartial {
		status = fiber.StatusMultiStatus
	}
	return c.Status(status).JSON(report)
}
