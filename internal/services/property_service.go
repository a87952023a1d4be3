package services

import (
	"context"

	"github.com/megareality/estate/internal/models"
	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type PropertyService interface {
	Create(ctx context.Context, in *PropertyInput) (*models.Property, error)
	Get(ctx context.Context, id uint) (*models.Property, error)
	List(ctx context.Context, f repository.PropertyFilter) ([]models.Property, error)
	Update(ctx context.Context, id uint, in *PropertyInput) (*models.Property, error)
	Delete(ctx context.Context, id uint) error
	SetFavorite(ctx context.Context, id uint, favorite bool) (*models.Property, error)
}

type propertyService struct {
	*core
}

var _ PropertyService = (*propertyService)(nil)

func (s *propertyService) Create(ctx context.Context, in *PropertyInput) (*models.Property, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &models.Property{
		Title:        *in.Title,
		Description:  valueOr(in.Description, ""),
		Price:        *in.Price,
		Location:     *in.Location,
		PropertyType: *in.PropertyType,
		Status:       valueOr(in.Status, "Available"),
		Bedrooms:     valueOr(in.Bedrooms, 0),
		Bathrooms:    valueOr(in.Bathrooms, 0),
		AreaSqft:     valueOr(in.AreaSqft, 0),
		BuilderID:    in.BuilderID.Value(),
		IsFavorite:   valueOr(in.IsFavorite, false),
		Images:       datatypes.JSONSlice[string](cleanImages(in.Images)),
		CreatedAt:    s.now(),
	}
	p.BuilderName = s.builderName(ctx, p.BuilderID)

	if err := s.repos.Properties.Create(ctx, p); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindProperty, "Property created: "+p.Title)
	logger.From(ctx).Info("property created", zap.Uint("property_id", p.ID), zap.String("title", p.Title))
	return p, nil
}

func (s *propertyService) Get(ctx context.Context, id uint) (*models.Property, error) {
	var p models.Property
	if err := s.repos.Properties.GetByID(ctx, id, &p); err != nil {
		return nil, err
	}
	p.BuilderName = s.builderName(ctx, p.BuilderID)
	return &p, nil
}

func (s *propertyService) List(ctx context.Context, f repository.PropertyFilter) ([]models.Property, error) {
	items, err := s.repos.Properties.List(ctx, f)
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

func (s *propertyService) Update(ctx context.Context, id uint, in *PropertyInput) (*models.Property, error) {
	if err := validatePatch(in); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var p models.Property
	if err := s.repos.Properties.GetByID(ctx, id, &p); err != nil {
		return nil, err
	}

	set(&p.Title, in.Title)
	set(&p.Description, in.Description)
	set(&p.Price, in.Price)
	set(&p.Location, in.Location)
	set(&p.PropertyType, in.PropertyType)
	set(&p.Status, in.Status)
	set(&p.Bedrooms, in.Bedrooms)
	set(&p.Bathrooms, in.Bathrooms)
	set(&p.AreaSqft, in.AreaSqft)
	set(&p.IsFavorite, in.IsFavorite)
	if in.Images != nil {
		p.Images = cleanImages(in.Images)
	}
	if in.BuilderID.Set && !sameID(in.BuilderID.Value(), p.BuilderID) {
		p.BuilderID = in.BuilderID.Value()
		p.BuilderName = s.builderName(ctx, p.BuilderID)
	}

	if err := s.repos.Properties.Update(ctx, &p); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindProperty, "Property updated: "+p.Title)
	logger.From(ctx).Info("property updated", zap.Uint("property_id", id))

	p.BuilderName = s.builderName(ctx, p.BuilderID)
	return &p, nil
}

func (s *propertyService) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p models.Property
	if err := s.repos.Properties.GetByID(ctx, id, &p); err != nil {
		return err
	}
	if err := s.repos.Properties.Delete(ctx, id); err != nil {
		return err
	}
	s.emit(ctx, models.KindProperty, "Property deleted: "+p.Title)
	logger.From(ctx).Info("property deleted", zap.Uint("property_id", id))
	return nil
}

func (s *propertyService) SetFavorite(ctx context.Context, id uint, favorite bool) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p models.Property
	if err := s.repos.Properties.GetByID(ctx, id, &p); err != nil {
		return nil, err
	}
	p.IsFavorite = favorite
	if err := s.repos.Properties.Update(ctx, &p); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindProperty, "Property "+favoriteText(favorite)+" favorites: "+p.Title)

	p.BuilderName = s.builderName(ctx, p.BuilderID)
	return &p, nil
}
