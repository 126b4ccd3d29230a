package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/raminfosys/erp-backend-go/internal/domain/leave"
	"github.com/raminfosys/erp-backend-go/internal/domain/user"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	user.UserRepository
}

func NewLeaveService(leaveRepository leave.LeaveRepository, userRepository user.UserRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepository,
		UserRepository:  userRepository,
	}
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return s.LeaveRepository.List(ctx)
}

// Request implements leave.LeaveService.
func (s *LeaveServiceImpl) Request(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequest, error) {
	userName := req.UserName
	requester, err := s.UserRepository.GetByID(ctx, req.UserID)
	switch {
	case err == nil:
		userName = requester.Name
	case !errors.Is(err, user.ErrUserNotFound):
		return leave.LeaveRequest{}, fmt.Errorf("failed to look up requester: %w", err)
	}

	newLeave := leave.LeaveRequest{
		ID:        uuid.Must(uuid.NewV7()).String(),
		UserID:    req.UserID,
		UserName:  userName,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Type:      req.Type,
		Status:    leave.StatusPending,
	}

	created, err := s.LeaveRepository.Create(ctx, newLeave)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave requested", "leave_id", created.ID, "user_id", created.UserID, "type", created.Type)
	return created, nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req leave.UpdateLeaveStatusRequest) error {
	if err := s.LeaveRepository.UpdateStatus(ctx, id, req.Status); err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	slog.Info("Leave status updated", "leave_id", id, "status", req.Status)
	return nil
}
