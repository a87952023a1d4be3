package services

import (
	"context"

	"github.com/megareality/estate/internal/models"
)

// NotificationService exposes the audit log. Records are appended by the
// other services; here they can only be read and marked read.
type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	MarkRead(ctx context.Context, id uint) (*models.Notification, error)
	MarkAllRead(ctx context.Context) error
	UnreadCount(ctx context.Context) (int64, error)
}

type notificationService struct {
	*core
}

var _ NotificationService = (*notificationService)(nil)

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.repos.Notifications.ListRecent(ctx)
}

func (s *notificationService) MarkRead(ctx context.Context, id uint) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n models.Notification
	if err := s.repos.Notifications.GetByID(ctx, id, &n); err != nil {
		return nil, err
	}
	if n.Read {
		return &n, nil
	}
	n.Read = true
	if err := s.repos.Notifications.Update(ctx, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repos.Notifications.MarkAllRead(ctx)
}

func (s *notificationService) UnreadCount(ctx context.Context) (int64, error) {
	return s.repos.Notifications.CountUnread(ctx)
}
