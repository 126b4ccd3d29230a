package leave

import "context"

type LeaveService interface {
	List(ctx context.Context) ([]LeaveRequest, error)

	// Request appends a new leave request with status forced to PENDING
	Request(ctx context.Context, req CreateLeaveRequest) (LeaveRequest, error)

	// UpdateStatus sets any status from any status
	UpdateStatus(ctx context.Context, id string, req UpdateLeaveStatusRequest) error
}
