package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/raminfosys/erp-backend-go/internal/domain/attendance"
	"github.com/raminfosys/erp-backend-go/internal/domain/auth"
	"github.com/raminfosys/erp-backend-go/internal/domain/report"
	"github.com/raminfosys/erp-backend-go/internal/domain/user"
	"github.com/raminfosys/erp-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	reportService     report.ReportService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, reportService report.ReportService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	records, err := h.attendanceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !sess.can(user.PermissionAttendanceViewAll) {
		records = ownAttendance(records, sess.UserID)
	}

	response.Success(w, records)
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Check-in decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.UserID = sess.UserID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", record)
}

// CheckOut implements AttendanceHandler. Employees may only check out their
// own records; reviewers may check out any.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	id := chi.URLParam(r, "id")

	if !sess.can(user.PermissionAttendanceApprove) {
		records, err := h.attendanceService.List(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		for _, record := range records {
			if record.ID == id && record.UserID != sess.UserID {
				slog.Warn("Check-out of another user's record refused", "attendance_id", id, "user_id", sess.UserID)
				response.Forbidden(w, "You can only check out your own attendance")
				return
			}
		}
	}

	if err := h.attendanceService.CheckOut(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", nil)
}

// Review implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req attendance.ReviewAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.Review(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance reviewed successfully", nil)
}

// Export implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := report.AttendanceExportRequest{
		Month:  r.URL.Query().Get("month"),
		Format: report.Format(r.URL.Query().Get("format")),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	export, err := h.reportService.ExportAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, export.FileName, export.ContentType, export.Content)
}
