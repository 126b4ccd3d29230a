package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/raminfosys/erp-backend-go/internal/domain/attendance"
	"github.com/raminfosys/erp-backend-go/internal/domain/report"
	"github.com/raminfosys/erp-backend-go/internal/domain/user"
)

const (
	csvContentType  = "text/csv;charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	fileDateLayout = "1-2-2006"
)

var attendanceHeaders = []string{"Date", "Time", "Employee Name", "Username", "Department", "Status", "Lat", "Long"}

// attendanceRow is one report line, already joined with the live user record
type attendanceRow struct {
	Date         string
	Time         string
	EmployeeName string
	Username     string
	Department   string
	Status       string
	Lat          float64
	Long         float64
}

type ReportServiceImpl struct {
	attendanceRepository attendance.AttendanceRepository
	userRepository       user.UserRepository
	filePrefix           string
	now                  func() time.Time
}

func NewReportService(attendanceRepository attendance.AttendanceRepository, userRepository user.UserRepository, filePrefix string) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepository: attendanceRepository,
		userRepository:       userRepository,
		filePrefix:           filePrefix,
		now:                  time.Now,
	}
}

// ExportAttendanceCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceCSV(ctx context.Context, records []attendance.AttendanceRecord, label string) (report.Export, error) {
	rows, err := s.buildRows(ctx, records)
	if err != nil {
		return report.Export{}, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(attendanceHeaders); err != nil {
		return report.Export{}, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.fields()); err != nil {
			return report.Export{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return report.Export{}, fmt.Errorf("failed to write csv: %w", err)
	}

	export := report.Export{
		FileName:    s.fileName(label, "csv"),
		ContentType: csvContentType,
		Content:     buf.Bytes(),
	}
	slog.Info("Attendance exported", "file", export.FileName, "rows", len(rows))
	return export, nil
}

// ExportMonthlyAttendanceCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportMonthlyAttendanceCSV(ctx context.Context, monthKey string) (report.Export, error) {
	records, err := s.monthRecords(ctx, monthKey)
	if err != nil {
		return report.Export{}, err
	}
	return s.ExportAttendanceCSV(ctx, records, monthlyLabel(monthKey))
}

// ExportAttendanceXLSX implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceXLSX(ctx context.Context, records []attendance.AttendanceRecord, label string) (report.Export, error) {
	rows, err := s.buildRows(ctx, records)
	if err != nil {
		return report.Export{}, err
	}

	content, err := writeAttendanceWorkbook(rows)
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to build xlsx: %w", err)
	}

	export := report.Export{
		FileName:    s.fileName(label, "xlsx"),
		ContentType: xlsxContentType,
		Content:     content,
	}
	slog.Info("Attendance exported", "file", export.FileName, "rows", len(rows))
	return export, nil
}

// ExportMonthlyAttendanceXLSX implements report.ReportService.
func (s *ReportServiceImpl) ExportMonthlyAttendanceXLSX(ctx context.Context, monthKey string) (report.Export, error) {
	records, err := s.monthRecords(ctx, monthKey)
	if err != nil {
		return report.Export{}, err
	}
	return s.ExportAttendanceXLSX(ctx, records, monthlyLabel(monthKey))
}

// ExportAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendance(ctx context.Context, req report.AttendanceExportRequest) (report.Export, error) {
	switch req.Format {
	case report.FormatCSV, "":
		if req.Month != "" {
			return s.ExportMonthlyAttendanceCSV(ctx, req.Month)
		}
		return s.ExportAttendanceCSV(ctx, nil, report.DefaultLabel)
	case report.FormatXLSX:
		if req.Month != "" {
			return s.ExportMonthlyAttendanceXLSX(ctx, req.Month)
		}
		return s.ExportAttendanceXLSX(ctx, nil, report.DefaultLabel)
	default:
		return report.Export{}, report.ErrUnsupportedFormat
	}
}

// buildRows loads all stored attendance when records is nil and joins each
// record with its user. Users that no longer exist render as placeholders.
func (s *ReportServiceImpl) buildRows(ctx context.Context, records []attendance.AttendanceRecord) ([]attendanceRow, error) {
	if records == nil {
		all, err := s.attendanceRepository.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load attendance: %w", err)
		}
		records = all
	}

	users, err := s.userRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	byID := make(map[string]user.User, len(users))
	for _, u := range users {
		if _, seen := byID[u.ID]; !seen {
			byID[u.ID] = u
		}
	}

	rows := make([]attendanceRow, 0, len(records))
	for _, record := range records {
		date, clock := record.SplitCheckIn()
		row := attendanceRow{
			Date:         date,
			Time:         clock,
			EmployeeName: record.UserName,
			Username:     report.Placeholder,
			Department:   report.Placeholder,
			Status:       string(record.Status),
			Lat:          record.Latitude,
			Long:         record.Longitude,
		}
		if u, ok := byID[record.UserID]; ok {
			if u.Username != "" {
				row.Username = u.Username
			}
			if u.Department != "" {
				row.Department = u.Department
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *ReportServiceImpl) monthRecords(ctx context.Context, monthKey string) ([]attendance.AttendanceRecord, error) {
	all, err := s.attendanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	// Non-nil even when empty: nil would mean "everything"
	filtered := make([]attendance.AttendanceRecord, 0, len(all))
	for _, record := range all {
		if record.InMonth(monthKey) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (s *ReportServiceImpl) fileName(label, ext string) string {
	if label == "" {
		label = report.DefaultLabel
	}
	return fmt.Sprintf("%s_%s_Report_%s.%s", s.filePrefix, label, s.now().Format(fileDateLayout), ext)
}

func monthlyLabel(monthKey string) string {
	return "Monthly_" + monthKey
}

func (r attendanceRow) fields() []string {
	return []string{
		r.Date,
		r.Time,
		r.EmployeeName,
		r.Username,
		r.Department,
		r.Status,
		strconv.FormatFloat(r.Lat, 'f', -1, 64),
		strconv.FormatFloat(r.Long, 'f', -1, 64),
	}
}
