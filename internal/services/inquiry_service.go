package services

import (
	"context"

	"github.com/megareality/estate/internal/models"
	appErr "github.com/megareality/estate/pkg/errors"
	"github.com/megareality/estate/pkg/logger"
	"go.uber.org/zap"
)

// InquiryService handles contact requests. PropertyID is stored as given;
// it is never checked against the properties table.
type InquiryService interface {
	Create(ctx context.Context, in *InquiryInput) (*models.Inquiry, error)
	Get(ctx context.Context, id uint) (*models.Inquiry, error)
	List(ctx context.Context) ([]models.Inquiry, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*models.Inquiry, error)
	Delete(ctx context.Context, id uint) error
}

type inquiryService struct {
	*core
}

var _ InquiryService = (*inquiryService)(nil)

func (s *inquiryService) Create(ctx context.Context, in *InquiryInput) (*models.Inquiry, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	q := &models.Inquiry{
		UserName:   *in.UserName,
		Email:      *in.Email,
		Phone:      valueOr(in.Phone, ""),
		PropertyID: in.PropertyID,
		Message:    valueOr(in.Message, ""),
		Status:     models.InquiryPending,
		CreatedAt:  s.now(),
	}
	if err := s.repos.Inquiries.Create(ctx, q); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindInquiry, "New inquiry from "+q.UserName)
	logger.From(ctx).Info("inquiry created", zap.Uint("inquiry_id", q.ID))
	return q, nil
}

func (s *inquiryService) Get(ctx context.Context, id uint) (*models.Inquiry, error) {
	var q models.Inquiry
	if err := s.repos.Inquiries.GetByID(ctx, id, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *inquiryService) List(ctx context.Context) ([]models.Inquiry, error) {
	return s.repos.Inquiries.All(ctx)
}

func (s *inquiryService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Inquiry, error) {
	if status != models.InquiryPending && status != models.InquirySolved {
		return nil, appErr.New(appErr.CodeInvalid, "Invalid status. Must be 'pending' or 'solved'")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var q models.Inquiry
	if err := s.repos.Inquiries.GetByID(ctx, id, &q); err != nil {
		return nil, err
	}
	q.Status = status
	if err := s.repos.Inquiries.Update(ctx, &q); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindInquiry, "Inquiry status changed to "+status+": "+q.UserName)
	return &q, nil
}

func (s *inquiryService) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var q models.Inquiry
	if err := s.repos.Inquiries.GetByID(ctx, id, &q); err != nil {
		return err
	}
	if err := s.repos.Inquiries.Delete(ctx, id); err != nil {
		return err
	}
	s.emit(ctx, models.KindInquiry, "Inquiry deleted: "+q.UserName)
	return nil
}
