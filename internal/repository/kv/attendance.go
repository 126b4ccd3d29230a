package kv

import (
	"context"

	"github.com/raminfosys/erp-backend-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{store: store}
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.AttendanceRecord, error) {
	return r.store.Sync(ctx).Attendance, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	err := r.store.Update(ctx, func(c *Collections) error {
		c.Attendance = append(c.Attendance, record)
		return nil
	})
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}
	return record, nil
}

// UpdateStatus implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpdateStatus(ctx context.Context, id string, status attendance.Status) error {
	return r.store.Update(ctx, func(c *Collections) error {
		for i := range c.Attendance {
			if c.Attendance[i].ID == id {
				c.Attendance[i].Status = status
			}
		}
		return nil
	})
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, id string, checkOut string) error {
	return r.store.Update(ctx, func(c *Collections) error {
		for i := range c.Attendance {
			if c.Attendance[i].ID == id {
				value := checkOut
				c.Attendance[i].CheckOut = &value
			}
		}
		return nil
	})
}
