package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// List returns every attendance record
	List(ctx context.Context) ([]AttendanceRecord, error)

	// Add appends a fully formed record as given
	Add(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// CheckIn turns a capture result into a PENDING record, or aborts
	// without writing when the capture failed
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceRecord, error)

	// CheckOut stamps the current time into checkOut
	CheckOut(ctx context.Context, id string) error

	// Review sets the status to APPROVED or REJECTED, with no transition guard
	Review(ctx context.Context, id string, req ReviewAttendanceRequest) error
}
