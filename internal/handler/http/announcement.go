package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/raminfosys/erp-backend-go/internal/domain/announcement"
	"github.com/raminfosys/erp-backend-go/internal/domain/auth"
	"github.com/raminfosys/erp-backend-go/internal/handler/http/response"
)

type AnnouncementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &AnnouncementHandlerImpl{
		announcementService: announcementService,
	}
}

// List implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, announcements)
}

// Create implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req announcement.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create announcement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.Author == "" {
		req.Author = sess.Name
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.announcementService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement published successfully", created)
}
