package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// List returns every record in stored order
	List(ctx context.Context) ([]AttendanceRecord, error)

	// Create appends a fully formed record
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// UpdateStatus sets the status field only; unknown id is a no-op
	UpdateStatus(ctx context.Context, id string, status Status) error

	// SetCheckOut sets the checkOut field only; unknown id is a no-op
	SetCheckOut(ctx context.Context, id string, checkOut string) error
}
