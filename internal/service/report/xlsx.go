package report

import (
	"log/slog"

	"github.com/xuri/excelize/v2"
)

const attendanceSheet = "Attendance"

func writeAttendanceWorkbook(rows []attendanceRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, err
	}

	row, err := writeHeader(f, attendanceSheet, 0, attendanceHeaders)
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		row++
		values := []interface{}{r.Date, r.Time, r.EmployeeName, r.Username, r.Department, r.Status, r.Lat, r.Long}
		for i, value := range values {
			if err := writeColumn(f, attendanceSheet, i+1, row, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

// writeHeader writes a bold header on the row after row and returns its index
func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return row, err
	}

	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return row, err
	}
	if err := f.SetCellStyle(sheet, cellFirst, cellLast, style); err != nil {
		return row, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return row, err
	}

	for i, value := range headers {
		if err := writeColumn(f, sheet, i+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}
