package leave

type Type string

const (
	TypeSick     Type = "SICK"
	TypeVacation Type = "VACATION"
	TypeCasual   Type = "CASUAL"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// LeaveRequest keeps UserName as a snapshot of the requester's name at
// request time; it is not refreshed when the user is renamed.
type LeaveRequest struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
	Type      Type   `json:"type"`
	Status    Status `json:"status"`
}
