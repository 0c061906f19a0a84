package reports

import (
	"fmt"

	"lawfirm-backend/internal/database"
	"lawfirm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

var caseRegisterHeader = []string{
	"Case Number", "Title", "Client", "Status", "Priority",
	"Manager", "Start Date", "Due Date", "Created At",
}

// BuildCaseRegister renders the case list into an XLSX workbook.
func BuildCaseRegister(cases []models.Case) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Cases"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range caseRegisterHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, kase := range cases {
		manager := ""
		if kase.Manager != nil {
			manager = kase.Manager.FullName()
		}
		startDate := ""
		if kase.StartDate != nil {
			startDate = kase.StartDate.Format("2006-01-02")
		}
		dueDate := ""
		if kase.DueDate != nil {
			dueDate = kase.DueDate.Format("2006-01-02")
		}

		values := []interface{}{
			kase.CaseNumber, kase.Title, kase.ClientName,
			string(kase.Status), string(kase.Priority), manager,
			startDate, dueDate, kase.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// GET /api/reports/cases.xlsx
func ExportCasesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Case{})
		if status := c.Query("status"); status != "" {
			if !models.IsValidCaseStatus(status) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid status filter")
			}
			dbq = dbq.Where("status = ?", status)
		}

		var cases []models.Case
		if err := dbq.Preload("Manager").Order("created_at DESC").Find(&cases).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load cases")
		}

		f, err := BuildCaseRegister(cases)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build report")
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not render report")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "case-register.xlsx"))
		return c.Send(buf.Bytes())
	}
}
