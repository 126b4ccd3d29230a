package announcement

import "context"

type AnnouncementService interface {
	List(ctx context.Context) ([]Announcement, error)
	Create(ctx context.Context, req CreateAnnouncementRequest) (Announcement, error)
}
