package services

import (
	"context"

	"github.com/megareality/estate/internal/models"
	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type ProjectService interface {
	Create(ctx context.Context, in *ProjectInput) (*models.Project, error)
	Get(ctx context.Context, id uint) (*models.Project, error)
	List(ctx context.Context, f repository.ProjectFilter) ([]models.Project, error)
	Update(ctx context.Context, id uint, in *ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id uint) error
	SetFavorite(ctx context.Context, id uint, favorite bool) (*models.Project, error)
}

type projectService struct {
	*core
}

// Ensure interfaces are satisfied at compile time
var _ ProjectService = (*projectService)(nil)

// Create stores a new project, caching the builder's name alongside its id.
func (s *projectService) Create(ctx context.Context, in *ProjectInput) (*models.Project, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &models.Project{
		Title:          *in.Title,
		Description:    valueOr(in.Description, ""),
		Location:       *in.Location,
		Status:         valueOr(in.Status, "Available"),
		CompletionDate: valueOr(in.CompletionDate, ""),
		TotalUnits:     valueOr(in.TotalUnits, 0),
		BuilderID:      in.BuilderID.Value(),
		Images:         datatypes.JSONSlice[string](cleanImages(in.Images)),
		Tag:            valueOr(in.Tag, "available"),
		IsFavorite:     valueOr(in.IsFavorite, false),
		Type:           valueOr(in.Type, ""),
		Area:           valueOr(in.Area, ""),
		PriceRange:     valueOr(in.PriceRange, ""),
		Address:        valueOr(in.Address, ""),
		City:           valueOr(in.City, ""),
		State:          valueOr(in.State, ""),
		Pincode:        valueOr(in.Pincode, ""),
		CreatedAt:      s.now(),
	}
	p.BuilderName = s.builderName(ctx, p.BuilderID)

	if err := s.repos.Projects.Create(ctx, p); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindProject, "Project created: "+p.Title)
	logger.From(ctx).Info("project created", zap.Uint("project_id", p.ID), zap.String("title", p.Title))
	return p, nil
}

func (s *projectService) Get(ctx context.Context, id uint) (*models.Project, error) {
	var p models.Project
	if err := s.repos.Projects.GetByID(ctx, id, &p); err != nil {
		return nil, err
	}
	p.BuilderName = s.builderName(ctx, p.BuilderID)
	return &p, nil
}

func (s *projectService) List(ctx context.Context, f repository.ProjectFilter) ([]models.Project, error) {
	items, err := s.repos.Projects.List(ctx, f)
	if err != nil {
		return nil, err
	}
	names, err := s.builderNames(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].BuilderName = nameFor(names, items[i].BuilderID)
	}
	return items, nil
}

func (s *projectService) Update(ctx context.Context, id uint, in *ProjectInput) (*models.Project, error) {
	if err := validatePatch(in); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var p models.Project
	if err := s.repos.Projects.GetByID(ctx, id, &p); err != nil {
		return nil, err
	}

	set(&p.Title, in.Title)
	set(&p.Description, in.Description)
	set(&p.Location, in.Location)
	set(&p.Status, in.Status)
	set(&p.CompletionDate, in.CompletionDate)
	set(&p.TotalUnits, in.TotalUnits)
	set(&p.Tag, in.Tag)
	set(&p.IsFavorite, in.IsFavorite)
	set(&p.Type, in.Type)
	set(&p.Area, in.Area)
	set(&p.PriceRange, in.PriceRange)
	set(&p.Address, in.Address)
	set(&p.City, in.City)
	set(&p.State, in.State)
	set(&p.Pincode, in.Pincode)
	if in.Images != nil {
		p.Images = cleanImages(in.Images)
	}
	if in.BuilderID.Set && !sameID(in.BuilderID.Value(), p.BuilderID) {
		p.BuilderID = in.BuilderID.Value()
		p.BuilderName = s.builderName(ctx, p.BuilderID)
	}

	if err := s.repos.Projects.Update(ctx, &p); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindProject, "Project updated: "+p.Title)
	logger.From(ctx).Info("project updated", zap.Uint("project_id", id))

	p.BuilderName = s.builderName(ctx, p.BuilderID)
	return &p, nil
}

func (s *projectService) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p models.Project
	if err := s.repos.Projects.GetByID(ctx, id, &p); err != nil {
		return err
	}
	if err := s.repos.Projects.Delete(ctx, id); err != nil {
		return err
	}
	s.emit(ctx, models.KindProject, "Project deleted: "+p.Title)
	logger.From(ctx).Info("project deleted", zap.Uint("project_id", id))
	return nil
}

func (s *projectService) SetFavorite(ctx context.Context, id uint, favorite bool) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p models.Project
	if err := s.repos.Projects.GetByID(ctx, id, &p); err != nil {
		return nil, err
	}
	p.IsFavorite = favorite
	if err := s.repos.Projects.Update(ctx, &p); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindProject, "Project "+favoriteText(favorite)+" favorites: "+p.Title)

	p.BuilderName = s.builderName(ctx, p.BuilderID)
	return &p, nil
}
