package task

import "github.com/raminfosys/erp-backend-go/internal/pkg/validator"

type CreateTaskRequest struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo" validate:"required"`
	AssignedBy  string `json:"assignedBy"`
	ProjectID   string `json:"projectId"`
	Status      Status `json:"status,omitempty" validate:"omitempty,oneof=TODO IN_PROGRESS COMPLETED"`
	Deadline    string `json:"deadline"`
}

func (r *CreateTaskRequest) Validate() error {
	return validator.Struct(r)
}

type UpdateTaskStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=TODO IN_PROGRESS COMPLETED"`
}

func (r *UpdateTaskStatusRequest) Validate() error {
	return validator.Struct(r)
}
