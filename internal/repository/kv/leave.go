package kv

import (
	"context"

	"github.com/raminfosys/erp-backend-go/internal/domain/leave"
)

type leaveRepositoryImpl struct {
	store *Store
}

func NewLeaveRepository(store *Store) leave.LeaveRepository {
	return &leaveRepositoryImpl{store: store}
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.store.Sync(ctx).Leaves, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.LeaveRequest) (leave.LeaveRequest, error) {
	err := r.store.Update(ctx, func(c *Collections) error {
		c.Leaves = append(c.Leaves, newLeave)
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return newLeave, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	return r.store.Update(ctx, func(c *Collections) error {
		for i := range c.Leaves {
			if c.Leaves[i].ID == id {
				c.Leaves[i].Status = status
			}
		}
		return nil
	})
}
