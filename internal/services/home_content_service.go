package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/megareality/estate/internal/models"
	appErr "github.com/megareality/estate/pkg/errors"
	"github.com/megareality/estate/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// HomeContentService stores the editable blocks of the public home page.
type HomeContentService interface {
	// GetAll returns stored sections layered over the built-in defaults.
	GetAll(ctx context.Context) (map[string]any, error)
	// UpdateSection shallow-merges patch into an object section, or replaces
	// the section when either side is not an object. Returns the new value.
	UpdateSection(ctx context.Context, section string, patch any) (any, error)
	// ReplaceAll overwrites every section present in content in one write.
	// An empty content is rejected.
	ReplaceAll(ctx context.Context, content map[string]any) (map[string]any, error)
}

type homeContentService struct {
	*core
}

var _ HomeContentService = (*homeContentService)(nil)

func defaultSections() map[string]any {
	var out map[string]any
	if err := json.Unmarshal([]byte(defaultHomeContent), &out); err != nil {
		panic("home content defaults: " + err.Error())
	}
	return out
}

func (s *homeContentService) GetAll(ctx context.Context) (map[string]any, error) {
	out := defaultSections()
	stored, err := s.repos.HomeContent.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, sec := range stored {
		var v any
		if err := json.Unmarshal(sec.Content, &v); err != nil {
			return nil, appErr.Wrap(err, appErr.CodeInternal, "decode home content section "+sec.Section)
		}
		out[sec.Section] = v
	}
	return out, nil
}

func (s *homeContentService) UpdateSection(ctx context.Context, section string, patch any) (any, error) {
	section = strings.TrimSpace(section)
	if section == "" {
		return nil, appErr.New(appErr.CodeInvalid, "section is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx, section)
	if err != nil {
		return nil, err
	}
	next := mergeSection(current, patch)
	if err := s.save(ctx, section, next); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindContent, "Home content updated: "+section)
	logger.From(ctx).Info("home content section updated", zap.String("section", section))
	return next, nil
}

func (s *homeContentService) ReplaceAll(ctx context.Context, content map[string]any) (map[string]any, error) {
	if len(content) == 0 {
		return nil, appErr.New(appErr.CodeInvalid, "Content is required")
	}
	secs := make([]*models.HomeContentSection, 0, len(content))
	for section, value := range content {
		if strings.TrimSpace(section) == "" {
			return nil, appErr.New(appErr.CodeInvalid, "section is required")
		}
		sec, err := s.section(section, value)
		if err != nil {
			return nil, err
		}
		secs = append(secs, sec)
	}

	s.mu.Lock()
	if err := s.repos.HomeContent.Upsert(ctx, secs...); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.emit(ctx, models.KindContent, "Home content replaced")
	s.mu.Unlock()

	logger.From(ctx).Info("home content replaced", zap.Int("sections", len(content)))
	return s.GetAll(ctx)
}

// current returns the stored value of section, falling back to its default.
func (s *homeContentService) current(ctx context.Context, section string) (any, error) {
	var sec models.HomeContentSection
	err := s.repos.HomeContent.Get(ctx, section, &sec)
	switch {
	case err == nil:
		var v any
		if err := json.Unmarshal(sec.Content, &v); err != nil {
			return nil, appErr.Wrap(err, appErr.CodeInternal, "decode home content section "+section)
		}
		return v, nil
	case appErr.IsCode(err, appErr.CodeNotFound):
		return defaultSections()[section], nil
	default:
		return nil, err
	}
}

func (s *homeContentService) save(ctx context.Context, section string, value any) error {
	sec, err := s.section(section, value)
	if err != nil {
		return err
	}
	return s.repos.HomeContent.Upsert(ctx, sec)
}

func (s *homeContentService) section(section string, value any) (*models.HomeContentSection, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInvalid, "invalid content for section "+section)
	}
	return &models.HomeContentSection{
		Section:   section,
		Content:   datatypes.JSON(raw),
		UpdatedAt: s.now(),
	}, nil
}

func mergeSection(current, patch any) any {
	cur, ok1 := current.(map[string]any)
	p, ok2 := patch.(map[string]any)
	if !ok1 || !ok2 {
		return patch
	}
	merged := make(map[string]any, len(cur)+len(p))
	for k, v := range cur {
		merged[k] = v
	}
	for k, v := range p {
		merged[k] = v
	}
	return merged
}
