package report

import (
	"context"

	"github.com/raminfosys/erp-backend-go/internal/domain/attendance"
)

type ReportService interface {
	// ExportAttendanceCSV renders records (all stored attendance when nil)
	// with columns Date, Time, Employee Name, Username, Department, Status,
	// Lat, Long. Does not modify state.
	ExportAttendanceCSV(ctx context.Context, records []attendance.AttendanceRecord, label string) (Export, error)

	// ExportMonthlyAttendanceCSV exports records whose check-in date falls in monthKey (YYYY-MM)
	ExportMonthlyAttendanceCSV(ctx context.Context, monthKey string) (Export, error)

	// ExportAttendanceXLSX is the spreadsheet variant of ExportAttendanceCSV
	ExportAttendanceXLSX(ctx context.Context, records []attendance.AttendanceRecord, label string) (Export, error)

	// ExportMonthlyAttendanceXLSX is the spreadsheet variant of ExportMonthlyAttendanceCSV
	ExportMonthlyAttendanceXLSX(ctx context.Context, monthKey string) (Export, error)

	// ExportAttendance dispatches on req.Format and req.Month
	ExportAttendance(ctx context.Context, req AttendanceExportRequest) (Export, error)
}
