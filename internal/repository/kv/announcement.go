package kv

import (
	"context"

	"github.com/raminfosys/erp-backend-go/internal/domain/announcement"
)

type announcementRepositoryImpl struct {
	store *Store
}

func NewAnnouncementRepository(store *Store) announcement.AnnouncementRepository {
	return &announcementRepositoryImpl{store: store}
}

// List implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) List(ctx context.Context) ([]announcement.Announcement, error) {
	return r.store.Sync(ctx).Announcements, nil
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Create(ctx context.Context, newAnnouncement announcement.Announcement) (announcement.Announcement, error) {
	err := r.store.Update(ctx, func(c *Collections) error {
		c.Announcements = append(c.Announcements, newAnnouncement)
		return nil
	})
	if err != nil {
		return announcement.Announcement{}, err
	}
	return newAnnouncement, nil
}
