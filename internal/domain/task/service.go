package task

import "context"

type TaskService interface {
	List(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, req CreateTaskRequest) (Task, error)

	// UpdateStatus performs no transition check: any status may follow any other.
	UpdateStatus(ctx context.Context, id string, req UpdateTaskStatusRequest) error
}
