package services

import (
	"context"

	"github.com/megareality/estate/internal/models"
	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/pkg/logger"
	"go.uber.org/zap"
)

type AgentService interface {
	Create(ctx context.Context, in *AgentInput) (*models.Agent, error)
	Get(ctx context.Context, id uint) (*models.Agent, error)
	List(ctx context.Context, f repository.AgentFilter) ([]models.Agent, error)
	Update(ctx context.Context, id uint, in *AgentInput) (*models.Agent, error)
	Delete(ctx context.Context, id uint) error
	SetFavorite(ctx context.Context, id uint, favorite bool) (*models.Agent, error)
}

type agentService struct {
	*core
}

var _ AgentService = (*agentService)(nil)

func (s *agentService) Create(ctx context.Context, in *AgentInput) (*models.Agent, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a := &models.Agent{
		Name:           *in.Name,
		Email:          valueOr(in.Email, ""),
		Phone:          valueOr(in.Phone, ""),
		Position:       valueOr(in.Position, ""),
		Experience:     valueOr(in.Experience, ""),
		PropertiesSold: valueOr(in.PropertiesSold, 0),
		Image:          valueOr(in.Image, ""),
		Bio:            valueOr(in.Bio, ""),
		IsFavorite:     valueOr(in.IsFavorite, false),
		CreatedAt:      s.now(),
	}
	if err := s.repos.Agents.Create(ctx, a); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindAgent, "Agent created: "+a.Name)
	logger.From(ctx).Info("agent created", zap.Uint("agent_id", a.ID))
	return a, nil
}

func (s *agentService) Get(ctx context.Context, id uint) (*models.Agent, error) {
	var a models.Agent
	if err := s.repos.Agents.GetByID(ctx, id, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *agentService) List(ctx context.Context, f repository.AgentFilter) ([]models.Agent, error) {
	return s.repos.Agents.List(ctx, f)
}

func (s *agentService) Update(ctx context.Context, id uint, in *AgentInput) (*models.Agent, error) {
	if err := validatePatch(in); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var a models.Agent
	if err := s.repos.Agents.GetByID(ctx, id, &a); err != nil {
		return nil, err
	}
	set(&a.Name, in.Name)
	set(&a.Email, in.Email)
	set(&a.Phone, in.Phone)
	set(&a.Position, in.Position)
	set(&a.Experience, in.Experience)
	set(&a.PropertiesSold, in.PropertiesSold)
	set(&a.Image, in.Image)
	set(&a.Bio, in.Bio)
	set(&a.IsFavorite, in.IsFavorite)

	if err := s.repos.Agents.Update(ctx, &a); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindAgent, "Agent updated: "+a.Name)
	logger.From(ctx).Info("agent updated", zap.Uint("agent_id", id))
	return &a, nil
}

func (s *agentService) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var a models.Agent
	if err := s.repos.Agents.GetByID(ctx, id, &a); err != nil {
		return err
	}
	if err := s.repos.Agents.Delete(ctx, id); err != nil {
		return err
	}
	s.emit(ctx, models.KindAgent, "Agent deleted: "+a.Name)
	logger.From(ctx).Info("agent deleted", zap.Uint("agent_id", id))
	return nil
}

func (s *agentService) SetFavorite(ctx context.Context, id uint, favorite bool) (*models.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var a models.Agent
	if err := s.repos.Agents.GetByID(ctx, id, &a); err != nil {
		return nil, err
	}
	a.IsFavorite = favorite
	if err := s.repos.Agents.Update(ctx, &a); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindAgent, "Agent "+favoriteText(favorite)+" favorites: "+a.Name)
	return &a, nil
}
