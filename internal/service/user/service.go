package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/raminfosys/erp-backend-go/internal/domain/user"
)

// DefaultDepartment is assigned when a new user names none.
const DefaultDepartment = "General"

type UserServiceImpl struct {
	user.UserRepository
	now func() time.Time
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
		now:            time.Now,
	}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.User, error) {
	return s.UserRepository.List(ctx)
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	newUser := user.User{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Role:       user.RoleEmployee,
		Department: DefaultDepartment,
		JoinedDate: s.now().UTC().Format(time.RFC3339),
		IsApproved: false,
	}

	// Given fields override the template the same way an update would
	newUser = user.UpdateUserRequest(req).Apply(newUser)

	created, err := s.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User created", "user_id", created.ID, "username", created.Username, "role", created.Role)
	return created, nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, id string, req user.UpdateUserRequest) error {
	if err := s.UserRepository.Update(ctx, id, req); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	slog.Info("User updated", "user_id", id)
	return nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.UserRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	slog.Info("User deleted", "user_id", id)
	return nil
}
