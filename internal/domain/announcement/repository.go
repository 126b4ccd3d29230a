package announcement

import "context"

type AnnouncementRepository interface {
	List(ctx context.Context) ([]Announcement, error)
	Create(ctx context.Context, newAnnouncement Announcement) (Announcement, error)
}
