package kv

import (
	"context"

	"github.com/raminfosys/erp-backend-go/internal/domain/task"
)

type taskRepositoryImpl struct {
	store *Store
}

func NewTaskRepository(store *Store) task.TaskRepository {
	return &taskRepositoryImpl{store: store}
}

// List implements task.TaskRepository.
func (r *taskRepositoryImpl) List(ctx context.Context) ([]task.Task, error) {
	return r.store.Sync(ctx).Tasks, nil
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	err := r.store.Update(ctx, func(c *Collections) error {
		c.Tasks = append(c.Tasks, newTask)
		return nil
	})
	if err != nil {
		return task.Task{}, err
	}
	return newTask, nil
}

// UpdateStatus implements task.TaskRepository.
func (r *taskRepositoryImpl) UpdateStatus(ctx context.Context, id string, status task.Status) error {
	return r.store.Update(ctx, func(c *Collections) error {
		for i := range c.Tasks {
			if c.Tasks[i].ID == id {
				c.Tasks[i].Status = status
			}
		}
		return nil
	})
}
