package user

import (
	"github.com/raminfosys/erp-backend-go/internal/pkg/validator"
)

// CreateUserRequest carries the fields given at provisioning time. Anything
// left nil falls back to the default template.
type CreateUserRequest struct {
	Name             *string `json:"name,omitempty"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	Username         *string `json:"username,omitempty"`
	Password         *string `json:"password,omitempty"`
	Role             *Role   `json:"role,omitempty" validate:"omitempty,oneof=ADMIN HR EMPLOYEE"`
	Department       *string `json:"department,omitempty"`
	JoinedDate       *string `json:"joinedDate,omitempty"`
	IsApproved       *bool   `json:"isApproved,omitempty"`
	CurrentProjectID *string `json:"currentProjectId,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	return validator.Struct(r)
}

// UpdateUserRequest is a shallow patch: only non-nil fields are replaced.
// JSON null and an absent field both leave a value untouched.
type UpdateUserRequest struct {
	Name             *string `json:"name,omitempty"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	Username         *string `json:"username,omitempty"`
	Password         *string `json:"password,omitempty"`
	Role             *Role   `json:"role,omitempty" validate:"omitempty,oneof=ADMIN HR EMPLOYEE"`
	Department       *string `json:"department,omitempty"`
	JoinedDate       *string `json:"joinedDate,omitempty"`
	IsApproved       *bool   `json:"isApproved,omitempty"`
	CurrentProjectID *string `json:"currentProjectId,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	return validator.Struct(r)
}

// Apply merges the patch into u and returns the result.
func (r UpdateUserRequest) Apply(u User) User {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Username != nil {
		u.Username = *r.Username
	}
	if r.Password != nil {
		u.Password = *r.Password
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
	if r.Department != nil {
		u.Department = *r.Department
	}
	if r.JoinedDate != nil {
		u.JoinedDate = *r.JoinedDate
	}
	if r.IsApproved != nil {
		u.IsApproved = *r.IsApproved
	}
	// An empty id unassigns the user from any project
	if r.CurrentProjectID != nil {
		projectID := *r.CurrentProjectID
		if projectID == "" {
			u.CurrentProjectID = nil
		} else {
			u.CurrentProjectID = &projectID
		}
	}
	return u
}
