package http

import (
	"net/http"

	"github.com/raminfosys/erp-backend-go/internal/domain/announcement"
	"github.com/raminfosys/erp-backend-go/internal/domain/attendance"
	"github.com/raminfosys/erp-backend-go/internal/domain/auth"
	"github.com/raminfosys/erp-backend-go/internal/domain/leave"
	"github.com/raminfosys/erp-backend-go/internal/domain/project"
	"github.com/raminfosys/erp-backend-go/internal/domain/task"
	"github.com/raminfosys/erp-backend-go/internal/domain/user"
	"github.com/raminfosys/erp-backend-go/internal/handler/http/response"
	"github.com/raminfosys/erp-backend-go/internal/service/changefeed"
)

type SnapshotHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type SnapshotHandlerImpl struct {
	changefeedService *changefeed.Service
}

func NewSnapshotHandler(changefeedService *changefeed.Service) SnapshotHandler {
	return &SnapshotHandlerImpl{
		changefeedService: changefeedService,
	}
}

type snapshotResponse struct {
	Users         []user.User                   `json:"users"`
	Tasks         []task.Task                   `json:"tasks"`
	Leaves        []leave.LeaveRequest          `json:"leaves"`
	Attendance    []attendance.AttendanceRecord `json:"attendance"`
	Projects      []project.Project             `json:"projects"`
	Announcements []announcement.Announcement   `json:"announcements"`
}

// Get implements SnapshotHandler. Managers see every collection; employees
// see themselves and their own tasks, leaves and attendance.
func (h *SnapshotHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	c := h.changefeedService.Snapshot(r.Context())
	resp := snapshotResponse{
		Users:         c.Users,
		Tasks:         c.Tasks,
		Leaves:        c.Leaves,
		Attendance:    c.Attendance,
		Projects:      c.Projects,
		Announcements: c.Announcements,
	}

	if !sess.can(user.PermissionEmployeeManage) {
		resp.Users = ownUser(c.Users, sess.UserID)
		resp.Tasks = ownTasks(c.Tasks, sess.UserID)
		resp.Leaves = ownLeaves(c.Leaves, sess.UserID)
		resp.Attendance = ownAttendance(c.Attendance, sess.UserID)
	}

	response.Success(w, resp)
}
