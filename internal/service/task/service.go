package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/raminfosys/erp-backend-go/internal/domain/task"
)

type TaskServiceImpl struct {
	task.TaskRepository
}

func NewTaskService(taskRepository task.TaskRepository) task.TaskService {
	return &TaskServiceImpl{TaskRepository: taskRepository}
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context) ([]task.Task, error) {
	return s.TaskRepository.List(ctx)
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	newTask := task.Task(req)
	if newTask.ID == "" {
		newTask.ID = uuid.Must(uuid.NewV7()).String()
	}
	if newTask.Status == "" {
		newTask.Status = task.StatusTodo
	}

	created, err := s.TaskRepository.Create(ctx, newTask)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	slog.Info("Task created", "task_id", created.ID, "assigned_to", created.AssignedTo)
	return created, nil
}

// UpdateStatus implements task.TaskService.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, id string, req task.UpdateTaskStatusRequest) error {
	if err := s.TaskRepository.UpdateStatus(ctx, id, req.Status); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	slog.Info("Task status updated", "task_id", id, "status", req.Status)
	return nil
}
