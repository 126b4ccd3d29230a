package task

import "context"

type TaskRepository interface {
	List(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, newTask Task) (Task, error)

	// UpdateStatus sets the status field only. Unknown id is a no-op.
	UpdateStatus(ctx context.Context, id string, status Status) error
}
