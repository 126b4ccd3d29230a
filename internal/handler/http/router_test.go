package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/raminfosys/erp-backend-go/internal/domain/attendance"
	"github.com/raminfosys/erp-backend-go/internal/domain/auth"
	"github.com/raminfosys/erp-backend-go/internal/domain/leave"
	"github.com/raminfosys/erp-backend-go/internal/domain/task"
	"github.com/raminfosys/erp-backend-go/internal/domain/user"
	"github.com/raminfosys/erp-backend-go/internal/fixtures"
	"github.com/raminfosys/erp-backend-go/internal/pkg/jwt"
	"github.com/raminfosys/erp-backend-go/internal/pkg/sse"
	"github.com/raminfosys/erp-backend-go/internal/pkg/storage"
	"github.com/raminfosys/erp-backend-go/internal/repository/kv"
	announcementService "github.com/raminfosys/erp-backend-go/internal/service/announcement"
	attendanceService "github.com/raminfosys/erp-backend-go/internal/service/attendance"
	authService "github.com/raminfosys/erp-backend-go/internal/service/auth"
	"github.com/raminfosys/erp-backend-go/internal/service/changefeed"
	leaveService "github.com/raminfosys/erp-backend-go/internal/service/leave"
	projectService "github.com/raminfosys/erp-backend-go/internal/service/project"
	reportService "github.com/raminfosys/erp-backend-go/internal/service/report"
	taskService "github.com/raminfosys/erp-backend-go/internal/service/task"
	userService "github.com/raminfosys/erp-backend-go/internal/service/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type snapshotBody struct {
	Users      []user.User                   `json:"users"`
	Tasks      []task.Task                   `json:"tasks"`
	Leaves     []leave.LeaveRequest          `json:"leaves"`
	Attendance []attendance.AttendanceRecord `json:"attendance"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	hub := sse.NewHub()
	store := kv.NewStore(storage.NewMemoryStorage(), hub, kv.NewKeys(kv.DefaultKeyPrefix))

	userRepo := kv.NewUserRepository(store)
	attendanceRepo := kv.NewAttendanceRepository(store)
	JWTService := jwt.NewJWTService("test-secret", time.Hour)
	changefeedService := changefeed.NewService(store, hub)

	handlers := Handlers{
		Auth:         NewAuthHandler(JWTService, authService.NewAuthService(userRepo, JWTService)),
		User:         NewUserHandler(userService.NewUserService(userRepo)),
		Project:      NewProjectHandler(projectService.NewProjectService(kv.NewProjectRepository(store))),
		Task:         NewTaskHandler(taskService.NewTaskService(kv.NewTaskRepository(store))),
		Leave:        NewLeaveHandler(leaveService.NewLeaveService(kv.NewLeaveRepository(store), userRepo)),
		Attendance:   NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo, userRepo), reportService.NewReportService(attendanceRepo, userRepo, "Raminfosys_Attendance")),
		Announcement: NewAnnouncementHandler(announcementService.NewAnnouncementService(kv.NewAnnouncementRepository(store))),
		Snapshot:     NewSnapshotHandler(changefeedService),
		Events:       NewEventsHandler(changefeedService),
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewRouter(logger, []string{"http://localhost:3000"}, JWTService, handlers)
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func login(t *testing.T, h http.Handler, username string) string {
	t.Helper()

	rec := doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{
		Username: username,
		Password: fixtures.DefaultPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp auth.LoginResponse
	decodeEnvelope(t, rec, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestRouter_Login_Success(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{
		Username: "  ADMIN ",
		Password: fixtures.DefaultPassword,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp auth.LoginResponse
	env := decodeEnvelope(t, rec, &resp)
	assert.True(t, env.Success)
	assert.Equal(t, "1", resp.User.ID)
	assert.Equal(t, user.RoleAdmin, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestRouter_Login_InvalidCredentials(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	assert.False(t, env.Success)
	assert.Equal(t, auth.ErrInvalidCredentials.Error(), env.Error.Message)
}

func TestRouter_Login_MissingFields(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	assert.Contains(t, env.Error.Details, "username")
	assert.Contains(t, env.Error.Details, "password")
}

func TestRouter_Login_NotApproved(t *testing.T) {
	h := newTestRouter(t)
	admin := login(t, h, "admin")

	username, password := "newbie", "secret"
	rec := doRequest(t, h, http.MethodPost, "/api/v1/users", admin, user.CreateUserRequest{
		Username: &username,
		Password: &password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{
		Username: username,
		Password: password,
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, auth.ErrAccountNotApproved.Error(), env.Error.Message)
}

func TestRouter_Snapshot_RequiresToken(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/snapshot", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/snapshot", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Snapshot_FilteredForEmployee(t *testing.T) {
	h := newTestRouter(t)

	var managerView snapshotBody
	rec := doRequest(t, h, http.MethodGet, "/api/v1/snapshot", login(t, h, "hr_lead"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &managerView)
	assert.Len(t, managerView.Users, len(fixtures.Users()))

	var employeeView snapshotBody
	rec = doRequest(t, h, http.MethodGet, "/api/v1/snapshot", login(t, h, "john_dev"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &employeeView)
	require.Len(t, employeeView.Users, 1)
	assert.Equal(t, "3", employeeView.Users[0].ID)
	for _, tk := range employeeView.Tasks {
		assert.Equal(t, "3", tk.AssignedTo)
	}
}

func TestRouter_Users_ForbiddenForEmployee(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/users", login(t, h, "john_dev"), nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_Users_UpdateAndDelete(t *testing.T) {
	h := newTestRouter(t)
	admin := login(t, h, "admin")

	department := "Platform"
	rec := doRequest(t, h, http.MethodPatch, "/api/v1/users/3", admin, user.UpdateUserRequest{Department: &department})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, h, http.MethodDelete, "/api/v1/users/2", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []user.User
	rec = doRequest(t, h, http.MethodGet, "/api/v1/users", admin, nil)
	decodeEnvelope(t, rec, &users)
	require.Len(t, users, 2)
	assert.Equal(t, "1", users[0].ID)
	assert.Equal(t, "3", users[1].ID)
	assert.Equal(t, "Platform", users[1].Department)
}

func TestRouter_Tasks_EmployeeSeesOwnAndUpdatesStatus(t *testing.T) {
	h := newTestRouter(t)
	admin := login(t, h, "admin")
	employee := login(t, h, "john_dev")

	rec := doRequest(t, h, http.MethodPost, "/api/v1/tasks", admin, task.CreateTaskRequest{
		Title:      "Review budget",
		AssignedTo: "2",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created task.Task
	decodeEnvelope(t, rec, &created)
	assert.Equal(t, task.StatusTodo, created.Status)
	assert.Equal(t, "1", created.AssignedBy)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/tasks", employee, task.CreateTaskRequest{Title: "x", AssignedTo: "3"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, h, http.MethodPatch, "/api/v1/tasks/t1/status", employee, task.UpdateTaskStatusRequest{Status: task.StatusInProgress})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tasks []task.Task
	rec = doRequest(t, h, http.MethodGet, "/api/v1/tasks", employee, nil)
	decodeEnvelope(t, rec, &tasks)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)
	assert.Equal(t, task.StatusInProgress, tasks[0].Status)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/tasks", admin, nil)
	decodeEnvelope(t, rec, &tasks)
	assert.Len(t, tasks, 2)
}

func TestRouter_Leaves_FiledForCaller(t *testing.T) {
	h := newTestRouter(t)
	admin := login(t, h, "admin")
	employee := login(t, h, "john_dev")

	rec := doRequest(t, h, http.MethodPost, "/api/v1/leaves", employee, leave.CreateLeaveRequest{
		UserID:    "1",
		StartDate: "2025-04-01",
		EndDate:   "2025-04-02",
		Reason:    "Flu",
		Type:      leave.TypeSick,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var leaves []leave.LeaveRequest
	rec = doRequest(t, h, http.MethodGet, "/api/v1/leaves", admin, nil)
	decodeEnvelope(t, rec, &leaves)
	require.Len(t, leaves, 1)
	assert.Equal(t, "3", leaves[0].UserID)
	assert.Equal(t, "John Doe", leaves[0].UserName)
	assert.Equal(t, leave.StatusPending, leaves[0].Status)

	rec = doRequest(t, h, http.MethodPatch, "/api/v1/leaves/"+leaves[0].ID+"/status", employee, leave.UpdateLeaveStatusRequest{Status: leave.StatusApproved})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, h, http.MethodPatch, "/api/v1/leaves/"+leaves[0].ID+"/status", admin, leave.UpdateLeaveStatusRequest{Status: leave.StatusApproved})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/leaves", admin, nil)
	decodeEnvelope(t, rec, &leaves)
	assert.Equal(t, leave.StatusApproved, leaves[0].Status)
}

func TestRouter_Attendance_CheckInFailureWritesNothing(t *testing.T) {
	h := newTestRouter(t)
	employee := login(t, h, "john_dev")

	rec := doRequest(t, h, http.MethodPost, "/api/v1/attendance/check-in", employee, attendance.CheckInRequest{
		Failure: attendance.CaptureFailureCamera,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var records []attendance.AttendanceRecord
	rec = doRequest(t, h, http.MethodGet, "/api/v1/attendance", employee, nil)
	decodeEnvelope(t, rec, &records)
	assert.Empty(t, records)
}

func TestRouter_Attendance_CheckInReviewAndExport(t *testing.T) {
	h := newTestRouter(t)
	admin := login(t, h, "admin")
	employee := login(t, h, "john_dev")

	rec := doRequest(t, h, http.MethodPost, "/api/v1/attendance/check-in", employee, attendance.CheckInRequest{
		FaceCapture: "data:image/jpeg;base64,AAAA",
		Latitude:    12.97,
		Longitude:   77.59,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var record attendance.AttendanceRecord
	decodeEnvelope(t, rec, &record)
	assert.Equal(t, "3", record.UserID)
	assert.Equal(t, "John Doe", record.UserName)
	assert.Equal(t, attendance.StatusPending, record.Status)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/attendance/"+record.ID+"/check-out", employee, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodPatch, "/api/v1/attendance/"+record.ID+"/status", admin, attendance.ReviewAttendanceRequest{Status: attendance.StatusApproved})
	require.Equal(t, http.StatusOK, rec.Code)

	var records []attendance.AttendanceRecord
	rec = doRequest(t, h, http.MethodGet, "/api/v1/attendance", admin, nil)
	decodeEnvelope(t, rec, &records)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusApproved, records[0].Status)
	assert.NotNil(t, records[0].CheckOut)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/attendance/export?format=csv", employee, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/attendance/export?format=csv", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv;charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), `attachment; filename="Raminfosys_Attendance_Full_Report_`))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Date,Time,Employee Name,Username,Department,Status,Lat,Long\n"))
	assert.Contains(t, rec.Body.String(), "John Doe,john_dev,Engineering,APPROVED,12.97,77.59")
}

func TestRouter_Attendance_CheckOutOwnRecordsOnly(t *testing.T) {
	h := newTestRouter(t)
	hr := login(t, h, "hr_lead")
	employee := login(t, h, "john_dev")

	rec := doRequest(t, h, http.MethodPost, "/api/v1/attendance/check-in", hr, attendance.CheckInRequest{
		FaceCapture: "data:image/jpeg;base64,AAAA",
		Latitude:    12.97,
		Longitude:   77.59,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var hrRecord attendance.AttendanceRecord
	decodeEnvelope(t, rec, &hrRecord)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/attendance/"+hrRecord.ID+"/check-out", employee, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var records []attendance.AttendanceRecord
	rec = doRequest(t, h, http.MethodGet, "/api/v1/attendance", hr, nil)
	decodeEnvelope(t, rec, &records)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].CheckOut)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/attendance/"+hrRecord.ID+"/check-out", hr, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/attendance", hr, nil)
	decodeEnvelope(t, rec, &records)
	assert.NotNil(t, records[0].CheckOut)
}

func TestRouter_Attendance_ExportRejectsUnknownFormat(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/attendance/export?format=pdf", login(t, h, "admin"), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	assert.Contains(t, env.Error.Details, "format")
}

func TestRouter_Session_KeepsClaimsFromLogin(t *testing.T) {
	h := newTestRouter(t)
	admin := login(t, h, "admin")
	employee := login(t, h, "john_dev")

	approved := false
	role := user.RoleHR
	rec := doRequest(t, h, http.MethodPatch, "/api/v1/users/3", admin, user.UpdateUserRequest{IsApproved: &approved, Role: &role})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The live token still carries the EMPLOYEE role it was issued with
	var view snapshotBody
	rec = doRequest(t, h, http.MethodGet, "/api/v1/snapshot", employee, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &view)
	assert.Len(t, view.Users, 1)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/users", employee, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// A fresh login sees the new approval state
	rec = doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{
		Username: "john_dev",
		Password: fixtures.DefaultPassword,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_Logout_RevokesToken(t *testing.T) {
	h := newTestRouter(t)
	token := login(t, h, "admin")

	rec := doRequest(t, h, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/snapshot", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Events_StreamsChanges(t *testing.T) {
	h := newTestRouter(t)
	server := httptest.NewServer(h)
	defer server.Close()

	admin := login(t, h, "admin")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/v1/events?token="+admin, nil)
	require.NoError(t, err)
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	waitFor := func(want string) {
		t.Helper()
		for {
			select {
			case line, ok := <-lines:
				require.True(t, ok, "stream closed before %q", want)
				if line == want {
					return
				}
			case <-ctx.Done():
				t.Fatalf("timed out waiting for %q", want)
			}
		}
	}

	waitFor("event: connected")

	rec := doRequest(t, h, http.MethodPost, "/api/v1/announcements", admin, map[string]string{"title": "Office closed"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	waitFor("event: changed")
}

func TestRouter_Events_RequiresToken(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/events", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
