package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/raminfosys/erp-backend-go/internal/domain/attendance"
	"github.com/raminfosys/erp-backend-go/internal/domain/leave"
	"github.com/raminfosys/erp-backend-go/internal/domain/task"
	"github.com/raminfosys/erp-backend-go/internal/domain/user"
)

// session is the logged-in user as carried by the access token
type session struct {
	UserID   string
	Username string
	Name     string
	Role     user.Role
}

func sessionFromRequest(r *http.Request) (session, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return session{}, false
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return session{}, false
	}
	username, _ := claims["username"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return session{
		UserID:   userID,
		Username: username,
		Name:     name,
		Role:     user.Role(role),
	}, true
}

func (s session) can(permission user.Permission) bool {
	return user.HasPermission(s.Role, permission)
}

func ownTasks(tasks []task.Task, userID string) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.AssignedTo == userID {
			out = append(out, t)
		}
	}
	return out
}

func ownLeaves(leaves []leave.LeaveRequest, userID string) []leave.LeaveRequest {
	out := make([]leave.LeaveRequest, 0, len(leaves))
	for _, l := range leaves {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out
}

func ownAttendance(records []attendance.AttendanceRecord, userID string) []attendance.AttendanceRecord {
	out := make([]attendance.AttendanceRecord, 0, len(records))
	for _, a := range records {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

func ownUser(users []user.User, userID string) []user.User {
	out := make([]user.User, 0, 1)
	for _, u := range users {
		if u.ID == userID {
			out = append(out, u)
		}
	}
	return out
}
