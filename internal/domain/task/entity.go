package task

type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Task references users and a project by id only. The references are not
// checked and may dangle after a delete.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	AssignedBy  string `json:"assignedBy"`
	ProjectID   string `json:"projectId"`
	Status      Status `json:"status"`
	Deadline    string `json:"deadline"`
}
