package leave

import "context"

type LeaveRepository interface {
	List(ctx context.Context) ([]LeaveRequest, error)
	Create(ctx context.Context, newLeave LeaveRequest) (LeaveRequest, error)

	// UpdateStatus sets the status field only. Unknown id is a no-op.
	UpdateStatus(ctx context.Context, id string, status Status) error
}
