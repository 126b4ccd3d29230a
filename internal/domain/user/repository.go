package user

import (
	"context"
)

// UserRepository reads and rewrites the users slot. Every call reloads the
// slot first; Update and Delete on an unknown id change nothing.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) error
	Delete(ctx context.Context, id string) error
}
