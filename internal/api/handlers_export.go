package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/models"
	"github.com/terraincognita07/rangepicker/internal/services"
	"github.com/xuri/excelize/v2"
)

const (
	changeLogSheetName = "Changes"
	xlsxContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func (handler *Handler) ExportChangesJSON(c *fiber.Ctx) error {
	picker, changes, status, message := handler.changeLogForRequest(c)
	if status != 0 {
		return apiError(c, status, message)
	}
	now := handler.now().In(handler.location)

	summary := services.SummarizeChangeLog(changes, handler.location)
	payload := fiber.Map{
		"picker_id":     picker.PublicID,
		"exported_at":   now.Format(time.RFC3339),
		"total_entries": summary.TotalEntries,
		"confirms":      summary.Confirms,
		"cancels":       summary.Cancels,
		"entries":       services.BuildChangeLogEntries(changes, handler.location),
	}

	serialized, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildChangeLogFilename(picker.PublicID, now, "json"))
	return c.Send(serialized)
}

func (handler *Handler) ExportChangesCSV(c *fiber.Ctx) error {
	picker, changes, status, message := handler.changeLogForRequest(c)
	if status != 0 {
		return apiError(c, status, message)
	}
	now := handler.now().In(handler.location)

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ChangeLogHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, entry := range services.BuildChangeLogEntries(changes, handler.location) {
		if err := writer.Write(services.ChangeLogRow(entry)); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setAttachmentHeaders(c, "text/csv", buildChangeLogFilename(picker.PublicID, now, "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportChangesXLSX(c *fiber.Ctx) error {
	picker, changes, status, message := handler.changeLogForRequest(c)
	if status != 0 {
		return apiError(c, status, message)
	}
	now := handler.now().In(handler.location)

	output, err := buildChangeLogWorkbook(services.BuildChangeLogEntries(changes, handler.location))
	if err != nil {
		log.Printf("build change log workbook for %s: %v", picker.PublicID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setAttachmentHeaders(c, xlsxContentType, buildChangeLogFilename(picker.PublicID, now, "xlsx"))
	return c.Send(output.Bytes())
}

func (handler *Handler) changeLogForRequest(c *fiber.Ctx) (models.Picker, []models.PickerChange, int, string) {
	from, to, err := services.ParseChangeLogRange(c.Query("from"), c.Query("to"), handler.location)
	if err != nil {
		return models.Picker{}, nil, fiber.StatusBadRequest, err.Error()
	}

	picker, changes, err := handler.pickers.Changes(currentPickerID(c), from, to)
	if err != nil {
		if errors.Is(err, services.ErrPickerNotFound) {
			return models.Picker{}, nil, fiber.StatusNotFound, "picker not found"
		}
		return models.Picker{}, nil, fiber.StatusInternalServerError, "failed to fetch changes"
	}
	return picker, changes, 0, ""
}

func buildChangeLogWorkbook(entries []services.ChangeLogEntry) (*bytes.Buffer, error) {
	workbook := excelize.NewFile()
	defer func() {
		if err := workbook.Close(); err != nil {
			log.Printf("close change log workbook: %v", err)
		}
	}()

	if err := workbook.SetSheetName("Sheet1", changeLogSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, 0, len(services.ChangeLogHeaders))
	for _, name := range services.ChangeLogHeaders {
		header = append(header, name)
	}
	if err := workbook.SetSheetRow(changeLogSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}
	headerStyle, err := workbook.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("build header style: %w", err)
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return nil, fmt.Errorf("resolve header range: %w", err)
	}
	if err := workbook.SetCellStyle(changeLogSheetName, "A1", lastHeaderCell, headerStyle); err != nil {
		return nil, fmt.Errorf("style header row: %w", err)
	}

	for index, entry := range entries {
		cell, err := excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return nil, fmt.Errorf("resolve row %d: %w", index+2, err)
		}
		fields := services.ChangeLogRow(entry)
		row := make([]any, 0, len(fields))
		for _, field := range fields {
			row = append(row, field)
		}
		if err := workbook.SetSheetRow(changeLogSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", index+2, err)
		}
	}

	output, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return output, nil
}

func buildChangeLogFilename(pickerID string, now time.Time, extension string) string {
	return fmt.Sprintf("%s-changes-%s.%s", pickerID, now.Format("2006-01-02"), extension)
}
