package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/raminfosys/erp-backend-go/internal/domain/attendance"
	"github.com/raminfosys/erp-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
	now func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, userRepository user.UserRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
		now:                  time.Now,
	}
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.AttendanceRecord, error) {
	return s.AttendanceRepository.List(ctx)
}

// Add implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Add(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to add attendance record: %w", err)
	}
	slog.Info("Attendance recorded", "attendance_id", created.ID, "user_id", created.UserID)
	return created, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceRecord, error) {
	if err := req.Err(); err != nil {
		slog.Warn("Check-in aborted", "user_id", req.UserID, "failure", req.Failure)
		return attendance.AttendanceRecord{}, err
	}

	var userName string
	employee, err := s.UserRepository.GetByID(ctx, req.UserID)
	switch {
	case err == nil:
		userName = employee.Name
	case !errors.Is(err, user.ErrUserNotFound):
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	record := attendance.AttendanceRecord{
		ID:          uuid.Must(uuid.NewV7()).String(),
		UserID:      req.UserID,
		UserName:    userName,
		CheckIn:     s.now().Format(attendance.CheckInLayout),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		FaceCapture: req.FaceCapture,
		Status:      attendance.StatusPending,
	}

	return s.Add(ctx, record)
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, id string) error {
	checkOut := s.now().Format(attendance.CheckInLayout)
	if err := s.AttendanceRepository.SetCheckOut(ctx, id, checkOut); err != nil {
		return fmt.Errorf("failed to check out: %w", err)
	}
	slog.Info("Checked out", "attendance_id", id, "check_out", checkOut)
	return nil
}

// Review implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Review(ctx context.Context, id string, req attendance.ReviewAttendanceRequest) error {
	if err := s.AttendanceRepository.UpdateStatus(ctx, id, req.Status); err != nil {
		return fmt.Errorf("failed to review attendance: %w", err)
	}
	slog.Info("Attendance reviewed", "attendance_id", id, "status", req.Status)
	return nil
}
