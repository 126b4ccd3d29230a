package kv

import (
	"context"

	"github.com/raminfosys/erp-backend-go/internal/domain/user"
)

type userRepositoryImpl struct {
	store *Store
}

func NewUserRepository(store *Store) user.UserRepository {
	return &userRepositoryImpl{store: store}
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	return r.store.Sync(ctx).Users, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range r.store.Sync(ctx).Users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	err := r.store.Update(ctx, func(c *Collections) error {
		c.Users = append(c.Users, newUser)
		return nil
	})
	if err != nil {
		return user.User{}, err
	}
	return newUser, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, id string, req user.UpdateUserRequest) error {
	return r.store.Update(ctx, func(c *Collections) error {
		for i := range c.Users {
			if c.Users[i].ID == id {
				c.Users[i] = req.Apply(c.Users[i])
			}
		}
		return nil
	})
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(c *Collections) error {
		kept := c.Users[:0]
		for _, u := range c.Users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		c.Users = kept
		return nil
	})
}
