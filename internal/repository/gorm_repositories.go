package repository

import (
	"context"
	"errors"

	"github.com/megareality/estate/internal/models"
	appErr "github.com/megareality/estate/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewGormRepositories wires every table to db.
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Admins:        NewAdminRepository(db),
		Properties:    NewPropertyRepository(db),
		Agents:        NewAgentRepository(db),
		Builders:      NewBuilderRepository(db),
		Projects:      NewProjectRepository(db),
		Inquiries:     NewInquiryRepository(db),
		Notifications: NewNotificationRepository(db),
		HomeContent:   NewHomeContentRepository(db),
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}

type adminRepository struct {
	BaseRepository[models.Admin]
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{BaseRepository: NewBaseRepository[models.Admin](db, "Admin"), db: db}
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string, dest *models.Admin) error {
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "Admin not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get admin by email failed")
	}
	return nil
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Admin{}).Count(&n).Error; err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "count admins failed")
	}
	return n, nil
}

type propertyRepository struct {
	BaseRepository[models.Property]
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{BaseRepository: NewBaseRepository[models.Property](db, "Property"), db: db}
}

func (r *propertyRepository) List(ctx context.Context, f PropertyFilter) ([]models.Property, error) {
	q := r.db.WithContext(ctx).Model(&models.Property{})
	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	out := []models.Property{}
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list properties failed")
	}
	return keep(out, f.Match), nil
}

type agentRepository struct {
	BaseRepository[models.Agent]
	db *gorm.DB
}

func NewAgentRepository(db *gorm.DB) AgentRepository {
	return &agentRepository{BaseRepository: NewBaseRepository[models.Agent](db, "Agent"), db: db}
}

func (r *agentRepository) List(ctx context.Context, f AgentFilter) ([]models.Agent, error) {
	out := []models.Agent{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list agents failed")
	}
	return keep(out, f.Match), nil
}

func NewBuilderRepository(db *gorm.DB) BuilderRepository {
	return NewBaseRepository[models.Builder](db, "Builder")
}

type projectRepository struct {
	BaseRepository[models.Project]
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{BaseRepository: NewBaseRepository[models.Project](db, "Project"), db: db}
}

func (r *projectRepository) List(ctx context.Context, f ProjectFilter) ([]models.Project, error) {
	q := r.db.WithContext(ctx).Model(&models.Project{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Tag != "" {
		q = q.Where("tag = ?", f.Tag)
	}
	out := []models.Project{}
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list projects failed")
	}
	return keep(out, f.Match), nil
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return NewBaseRepository[models.Inquiry](db, "Inquiry")
}

type notificationRepository struct {
	BaseRepository[models.Notification]
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{BaseRepository: NewBaseRepository[models.Notification](db, "Notification"), db: db}
}

func (r *notificationRepository) ListRecent(ctx context.Context) ([]models.Notification, error) {
	out := []models.Notification{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list notifications failed")
	}
	return out, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&models.Notification{}).
		Update("read", true).Error
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "mark notifications read failed")
	}
	return nil
}

func (r *notificationRepository) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where(clause.Eq{Column: clause.Column{Name: "read"}, Value: false}).
		Count(&n).Error
	if err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "count unread notifications failed")
	}
	return n, nil
}

type homeContentRepository struct {
	db *gorm.DB
}

func NewHomeContentRepository(db *gorm.DB) HomeContentRepository {
	return &homeContentRepository{db: db}
}

func (r *homeContentRepository) All(ctx context.Context) ([]models.HomeContentSection, error) {
	out := []models.HomeContentSection{}
	if err := r.db.WithContext(ctx).Order("section ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list home content failed")
	}
	return out, nil
}

func (r *homeContentRepository) Get(ctx context.Context, section string, dest *models.HomeContentSection) error {
	if err := r.db.WithContext(ctx).First(dest, "section = ?", section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "Section not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get home content failed")
	}
	return nil
}

func (r *homeContentRepository) Upsert(ctx context.Context, secs ...*models.HomeContentSection) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sec := range secs {
			err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "section"}}, UpdateAll: true}).
				Create(sec).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "save home content failed")
	}
	return nil
}
