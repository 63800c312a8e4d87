// Package export renders schedules as spreadsheets.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"homecare-scheduler/internal/domain"
)

// ContentType is the MIME type of the written workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Schedule"

var header = []string{"Start", "End", "Patient ID", "Assignment ID"}

// WriteDaySchedule writes one sheet with the entries in their given order.
func WriteDaySchedule(w io.Writer, professional domain.Professional, date time.Time, entries []domain.ScheduleEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	title := fmt.Sprintf("%s %s", professional.Name, domain.FormatDate(date))
	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return fmt.Errorf("set title: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A2", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "D2", bold); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return err
		}
		row := []any{e.Start.String(), e.End.String(), e.PatientID.String(), e.AssignmentID.String()}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "B", 10); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "C", "D", 40); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
