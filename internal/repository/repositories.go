package repository

import (
	"context"

	"github.com/megareality/estate/internal/models"
)

type AdminRepository interface {
	BaseRepository[models.Admin]
	GetByEmail(ctx context.Context, email string, dest *models.Admin) error
	Count(ctx context.Context) (int64, error)
}

type PropertyRepository interface {
	BaseRepository[models.Property]
	List(ctx context.Context, f PropertyFilter) ([]models.Property, error)
}

type AgentRepository interface {
	BaseRepository[models.Agent]
	List(ctx context.Context, f AgentFilter) ([]models.Agent, error)
}

type BuilderRepository interface {
	BaseRepository[models.Builder]
}

type ProjectRepository interface {
	BaseRepository[models.Project]
	List(ctx context.Context, f ProjectFilter) ([]models.Project, error)
}

type InquiryRepository interface {
	BaseRepository[models.Inquiry]
}

type NotificationRepository interface {
	BaseRepository[models.Notification]
	// ListRecent returns notifications newest first.
	ListRecent(ctx context.Context) ([]models.Notification, error)
	MarkAllRead(ctx context.Context) error
	CountUnread(ctx context.Context) (int64, error)
}

type HomeContentRepository interface {
	All(ctx context.Context) ([]models.HomeContentSection, error)
	Get(ctx context.Context, section string, dest *models.HomeContentSection) error
	// Upsert writes every section or none of them.
	Upsert(ctx context.Context, secs ...*models.HomeContentSection) error
}

// Repositories bundles every table of the store behind its interface so the
// backend (gorm or in-memory) can be swapped without touching services.
type Repositories struct {
	Admins        AdminRepository
	Properties    PropertyRepository
	Agents        AgentRepository
	Builders      BuilderRepository
	Projects      ProjectRepository
	Inquiries     InquiryRepository
	Notifications NotificationRepository
	HomeContent   HomeContentRepository

	// Ping reports backend health for readiness probes.
	Ping func(ctx context.Context) error
}
