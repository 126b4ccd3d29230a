package announcement

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/raminfosys/erp-backend-go/internal/domain/announcement"
)

type AnnouncementServiceImpl struct {
	announcement.AnnouncementRepository
	now func() time.Time
}

func NewAnnouncementService(announcementRepository announcement.AnnouncementRepository) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		AnnouncementRepository: announcementRepository,
		now:                    time.Now,
	}
}

// List implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) List(ctx context.Context) ([]announcement.Announcement, error) {
	return s.AnnouncementRepository.List(ctx)
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.Announcement, error) {
	newAnnouncement := announcement.Announcement{
		ID:       uuid.Must(uuid.NewV7()).String(),
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Date:     s.now().Format("2006-01-02"),
		Priority: req.Priority,
	}
	if newAnnouncement.Priority == "" {
		newAnnouncement.Priority = announcement.PriorityNormal
	}

	created, err := s.AnnouncementRepository.Create(ctx, newAnnouncement)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	slog.Info("Announcement published", "announcement_id", created.ID, "priority", created.Priority)
	return created, nil
}
