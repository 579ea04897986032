package services

import (
	"fmt"
	"io"

	"id_console_app_go/models"

	"github.com/xuri/excelize/v2"
)

// reportColumns is the spreadsheet header, mirroring the console table.
var reportColumns = []string{
	"Application Number", "Applicant Name", "Type", "Status",
	"Officer", "Created Date", "ID Number",
}

// BuildReportWorkbook builds a spreadsheet for a generated report: a summary
// sheet with the aggregate stats and an applications sheet with one row per
// record. The export is console-side; the backend only supplies the data.
func BuildReportWorkbook(result *models.ReportResult, filters models.ReportFilters) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetApplications := "Applications"
	f.SetSheetName("Sheet1", sheetApplications)

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	// Header row
	for i, col := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheetApplications, cell, col)
		f.SetCellStyle(sheetApplications, cell, cell, headerStyle)
	}

	for row, app := range result.Applications {
		values := []string{
			app.ApplicationNumber,
			app.FullNames,
			app.ApplicationType,
			app.Status,
			app.OfficerName,
			app.CreatedAt,
			app.GeneratedIDNumber,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheetApplications, cell, value)
		}
	}

	// --- Summary sheet ---
	sheetSummary := "Summary"
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, err
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	f.SetCellValue(sheetSummary, "A1", fmt.Sprintf("%s report, %s to %s", filters.ReportType, filters.StartDate, filters.EndDate))
	f.SetCellStyle(sheetSummary, "A1", "A1", titleStyle)

	stats := []struct {
		label string
		value int
	}{
		{"Total", result.Stats.Total},
		{"Pending", result.Stats.Pending},
		{"Approved", result.Stats.Approved},
		{"Rejected", result.Stats.Rejected},
		{"Dispatched", result.Stats.Dispatched},
		{"Collected", result.Stats.Collected},
	}
	for i, s := range stats {
		f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", i+3), s.label)
		f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", i+3), s.value)
	}

	return f, nil
}

// WriteReportXLSX streams a report workbook to w.
func WriteReportXLSX(w io.Writer, result *models.ReportResult, filters models.ReportFilters) error {
	f, err := BuildReportWorkbook(result, filters)
	if err != nil {
		return fmt.Errorf("failed to build report workbook: %w", err)
	}
	defer f.Close()
	return f.Write(w)
}
