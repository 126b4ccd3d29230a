package leave

import "github.com/raminfosys/erp-backend-go/internal/pkg/validator"

// CreateLeaveRequest is submitted by the employee. Status is not accepted:
// every new request starts PENDING.
type CreateLeaveRequest struct {
	UserID    string `json:"userId" validate:"required"`
	UserName  string `json:"userName,omitempty"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"`
	Type      Type   `json:"type" validate:"required,oneof=SICK VACATION CASUAL"`
}

func (r *CreateLeaveRequest) Validate() error {
	return validator.Struct(r)
}

type UpdateLeaveStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	return validator.Struct(r)
}
