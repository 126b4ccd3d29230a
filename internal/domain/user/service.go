package user

import (
	"context"
)

type UserService interface {
	// List returns a snapshot of every user
	List(ctx context.Context) ([]User, error)

	// Create fills unspecified fields from the default template and appends the user
	Create(ctx context.Context, req CreateUserRequest) (User, error)

	// Update replaces only the fields set in req; unknown id is a no-op
	Update(ctx context.Context, id string, req UpdateUserRequest) error

	// Delete removes the user; tasks, leaves and attendance keep referencing it
	Delete(ctx context.Context, id string) error
}
