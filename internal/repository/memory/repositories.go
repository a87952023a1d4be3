// Package memory is the process-local backend of the entity store. Nothing
// survives a restart; it backs tests and DB_DRIVER=memory.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/megareality/estate/internal/models"
	"github.com/megareality/estate/internal/repository"
	appErr "github.com/megareality/estate/pkg/errors"
	"gorm.io/datatypes"
)

// New returns an empty in-memory store.
func New() *repository.Repositories {
	return &repository.Repositories{
		Admins:        &adminRepository{table: newTable[models.Admin]("Admin", nil)},
		Properties:    &propertyRepository{table: newTable[models.Property]("Property", cloneProperty)},
		Agents:        &agentRepository{table: newTable[models.Agent]("Agent", nil)},
		Builders:      newTable[models.Builder]("Builder", nil),
		Projects:      &projectRepository{table: newTable[models.Project]("Project", cloneProject)},
		Inquiries:     newTable[models.Inquiry]("Inquiry", cloneInquiry),
		Notifications: &notificationRepository{table: newTable[models.Notification]("Notification", nil)},
		HomeContent:   &homeContentRepository{sections: map[string]models.HomeContentSection{}},
		Ping:          func(context.Context) error { return nil },
	}
}

func cloneImages(s datatypes.JSONSlice[string]) datatypes.JSONSlice[string] {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

func cloneID(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func cloneProperty(p models.Property) models.Property {
	p.Images = cloneImages(p.Images)
	p.BuilderID = cloneID(p.BuilderID)
	return p
}

func cloneProject(p models.Project) models.Project {
	p.Images = cloneImages(p.Images)
	p.BuilderID = cloneID(p.BuilderID)
	return p
}

func cloneInquiry(i models.Inquiry) models.Inquiry {
	i.PropertyID = cloneID(i.PropertyID)
	return i
}

type adminRepository struct {
	*table[models.Admin, *models.Admin]
}

func (r *adminRepository) GetByEmail(_ context.Context, email string, dest *models.Admin) error {
	found := r.filter(func(a *models.Admin) bool { return a.Email == email })
	if len(found) == 0 {
		return appErr.New(appErr.CodeNotFound, "Admin not found")
	}
	*dest = found[0]
	return nil
}

func (r *adminRepository) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), nil
}

type propertyRepository struct {
	*table[models.Property, *models.Property]
}

func (r *propertyRepository) List(_ context.Context, f repository.PropertyFilter) ([]models.Property, error) {
	return r.filter(f.Match), nil
}

type agentRepository struct {
	*table[models.Agent, *models.Agent]
}

func (r *agentRepository) List(_ context.Context, f repository.AgentFilter) ([]models.Agent, error) {
	return r.filter(f.Match), nil
}

type projectRepository struct {
	*table[models.Project, *models.Project]
}

func (r *projectRepository) List(_ context.Context, f repository.ProjectFilter) ([]models.Project, error) {
	return r.filter(f.Match), nil
}

type notificationRepository struct {
	*table[models.Notification, *models.Notification]
}

func (r *notificationRepository) ListRecent(ctx context.Context) ([]models.Notification, error) {
	out, _ := r.All(ctx)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *notificationRepository) MarkAllRead(context.Context) error {
	r.mutate(func(n *models.Notification) { n.Read = true })
	return nil
}

func (r *notificationRepository) CountUnread(context.Context) (int64, error) {
	return int64(len(r.filter(func(n *models.Notification) bool { return !n.Read }))), nil
}

type homeContentRepository struct {
	mu       sync.RWMutex
	sections map[string]models.HomeContentSection
}

func (r *homeContentRepository) All(context.Context) ([]models.HomeContentSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.HomeContentSection, 0, len(r.sections))
	for _, s := range r.sections {
		s.Content = slices.Clone(s.Content)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Section < out[j].Section })
	return out, nil
}

func (r *homeContentRepository) Get(_ context.Context, section string, dest *models.HomeContentSection) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sections[section]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "Section not found")
	}
	s.Content = slices.Clone(s.Content)
	*dest = s
	return nil
}

func (r *homeContentRepository) Upsert(_ context.Context, secs ...*models.HomeContentSection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sec := range secs {
		s := *sec
		s.Content = slices.Clone(sec.Content)
		r.sections[sec.Section] = s
	}
	return nil
}
