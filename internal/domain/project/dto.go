package project

import "github.com/raminfosys/erp-backend-go/internal/pkg/validator"

type CreateProjectRequest struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name" validate:"required"`
	Client string   `json:"client"`
	Status Status   `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE ON_HOLD COMPLETED"`
	Team   []string `json:"team,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	return validator.Struct(r)
}

type AssignMemberRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (r *AssignMemberRequest) Validate() error {
	return validator.Struct(r)
}
