package services

import (
	"context"

	"github.com/megareality/estate/internal/models"
	"github.com/megareality/estate/pkg/logger"
	"go.uber.org/zap"
)

// BuilderService manages builders. Deleting one leaves the properties and
// projects that reference it in place; their builder_name then reads as "".
type BuilderService interface {
	Create(ctx context.Context, in *BuilderInput) (*models.Builder, error)
	Get(ctx context.Context, id uint) (*models.Builder, error)
	List(ctx context.Context) ([]models.Builder, error)
	Update(ctx context.Context, id uint, in *BuilderInput) (*models.Builder, error)
	Delete(ctx context.Context, id uint) error
}

type builderService struct {
	*core
}

var _ BuilderService = (*builderService)(nil)

func (s *builderService) Create(ctx context.Context, in *BuilderInput) (*models.Builder, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b := &models.Builder{
		Name:          *in.Name,
		ProjectsCount: valueOr(in.ProjectsCount, 0),
		Image:         valueOr(in.Image, ""),
		Description:   valueOr(in.Description, ""),
		CreatedAt:     s.now(),
	}
	if err := s.repos.Builders.Create(ctx, b); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindBuilder, "Builder created: "+b.Name)
	logger.From(ctx).Info("builder created", zap.Uint("builder_id", b.ID))
	return b, nil
}

func (s *builderService) Get(ctx context.Context, id uint) (*models.Builder, error) {
	var b models.Builder
	if err := s.repos.Builders.GetByID(ctx, id, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *builderService) List(ctx context.Context) ([]models.Builder, error) {
	return s.repos.Builders.All(ctx)
}

func (s *builderService) Update(ctx context.Context, id uint, in *BuilderInput) (*models.Builder, error) {
	if err := validatePatch(in); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var b models.Builder
	if err := s.repos.Builders.GetByID(ctx, id, &b); err != nil {
		return nil, err
	}
	set(&b.Name, in.Name)
	set(&b.ProjectsCount, in.ProjectsCount)
	set(&b.Image, in.Image)
	set(&b.Description, in.Description)

	if err := s.repos.Builders.Update(ctx, &b); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindBuilder, "Builder updated: "+b.Name)
	logger.From(ctx).Info("builder updated", zap.Uint("builder_id", id))
	return &b, nil
}

func (s *builderService) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b models.Builder
	if err := s.repos.Builders.GetByID(ctx, id, &b); err != nil {
		return err
	}
	if err := s.repos.Builders.Delete(ctx, id); err != nil {
		return err
	}
	s.emit(ctx, models.KindBuilder, "Builder deleted: "+b.Name)
	logger.From(ctx).Info("builder deleted", zap.Uint("builder_id", id))
	return nil
}
