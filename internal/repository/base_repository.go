package repository

import (
	"context"
	"errors"

	"github.com/megareality/estate/internal/models"
	appErr "github.com/megareality/estate/pkg/errors"
	"gorm.io/gorm"
)

// EntityPtr constrains PT to *T where *T carries an integer id.
type EntityPtr[T any] interface {
	*T
	models.Entity
}

// BaseRepository defines common CRUD operations.
type BaseRepository[T any] interface {
	// Create assigns the next id (max existing id + 1) and inserts obj.
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id uint, dest *T) error
	Update(ctx context.Context, obj *T) error
	Delete(ctx context.Context, id uint) error
	// All returns every row in insertion (id) order.
	All(ctx context.Context) ([]T, error)
}

type baseRepository[T any, PT EntityPtr[T]] struct {
	db    *gorm.DB
	label string
}

// NewBaseRepository returns a gorm-backed BaseRepository. label names the
// entity in not-found messages, e.g. "Property".
func NewBaseRepository[T any, PT EntityPtr[T]](db *gorm.DB, label string) BaseRepository[T] {
	return &baseRepository[T, PT]{db: db, label: label}
}

func (r *baseRepository[T, PT]) Create(ctx context.Context, obj *T) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID uint
		if err := tx.Model(new(T)).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}
		PT(obj).SetID(maxID + 1)
		return tx.Create(obj).Error
	})
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "create "+r.label+" failed")
	}
	return nil
}

func (r *baseRepository[T, PT]) GetByID(ctx context.Context, id uint, dest *T) error {
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, r.label+" not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get "+r.label+" failed")
	}
	return nil
}

func (r *baseRepository[T, PT]) Update(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Save(obj).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "update "+r.label+" failed")
	}
	return nil
}

func (r *baseRepository[T, PT]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete "+r.label+" failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, r.label+" not found")
	}
	return nil
}

func (r *baseRepository[T, PT]) All(ctx context.Context) ([]T, error) {
	out := []T{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list "+r.label+" failed")
	}
	return out, nil
}
