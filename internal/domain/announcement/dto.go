package announcement

import "github.com/raminfosys/erp-backend-go/internal/pkg/validator"

type CreateAnnouncementRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Priority Priority `json:"priority,omitempty" validate:"omitempty,oneof=NORMAL HIGH URGENT"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	return validator.Struct(r)
}
