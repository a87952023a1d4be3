package services

import (
	"context"
	"sync"
	"time"

	"github.com/megareality/estate/internal/models"
	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/pkg/logger"
	"go.uber.org/zap"
)

const defaultTokenTTL = 24 * time.Hour

// Options configures the service layer.
type Options struct {
	// JWTSecret signs access tokens issued on login.
	JWTSecret []byte
	TokenTTL  time.Duration
	// Now is overridable for tests.
	Now func() time.Time
}

// Services is the entity store with audit notifications.
type Services struct {
	Admins        AdminService
	Properties    PropertyService
	Agents        AgentService
	Builders      BuilderService
	Projects      ProjectService
	Inquiries     InquiryService
	Notifications NotificationService
	HomeContent   HomeContentService
}

// New wires every service over repos. All services share one writer lock so
// a mutation and its notification append are never interleaved with another write.
func New(repos *repository.Repositories, opts Options) *Services {
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.TokenTTL == 0 {
		opts.TokenTTL = defaultTokenTTL
	}
	c := &core{repos: repos, mu: &sync.Mutex{}, now: opts.Now}
	return &Services{
		Admins:        &adminService{core: c, secret: opts.JWTSecret, ttl: opts.TokenTTL},
		Properties:    &propertyService{core: c},
		Agents:        &agentService{core: c},
		Builders:      &builderService{core: c},
		Projects:      &projectService{core: c},
		Inquiries:     &inquiryService{core: c},
		Notifications: &notificationService{core: c},
		HomeContent:   &homeContentService{core: c},
	}
}

type core struct {
	repos *repository.Repositories
	mu    *sync.Mutex
	now   func() time.Time
}

// emit appends one audit notification. Callers hold c.mu. A failed append is
// logged and swallowed: the data change it describes has already been applied.
func (c *core) emit(ctx context.Context, kind, message string) {
	actor := ActorFrom(ctx)
	n := &models.Notification{
		Type:      kind,
		Message:   message,
		AdminID:   actor.ID,
		AdminName: actor.Name,
		CreatedAt: c.now(),
	}
	if err := c.repos.Notifications.Create(ctx, n); err != nil {
		logger.From(ctx).Error("append notification failed", zap.String("type", kind), zap.String("message", message), zap.Error(err))
		return
	}
	notificationsEmitted.WithLabelValues(kind).Inc()
}

// builderNames maps builder id to name for read-time resolution.
func (c *core) builderNames(ctx context.Context) (map[uint]string, error) {
	builders, err := c.repos.Builders.All(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(builders))
	for _, b := range builders {
		names[b.ID] = b.Name
	}
	return names, nil
}

// builderName looks up one builder; unknown or nil ids resolve to "".
func (c *core) builderName(ctx context.Context, id *uint) string {
	if id == nil {
		return ""
	}
	var b models.Builder
	if err := c.repos.Builders.GetByID(ctx, *id, &b); err != nil {
		return ""
	}
	return b.Name
}

func nameFor(names map[uint]string, id *uint) string {
	if id == nil {
		return ""
	}
	return names[*id]
}

func sameID(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func favoriteText(fav bool) string {
	if fav {
		return "added to"
	}
	return "removed from"
}
