package services

import (
	"context"
	"strings"
	"time"

	"github.com/megareality/estate/internal/models"
	appErr "github.com/megareality/estate/pkg/errors"
	"github.com/megareality/estate/pkg/logger"
	"github.com/megareality/estate/pkg/utils"
	"go.uber.org/zap"
)

type AdminService interface {
	Register(ctx context.Context, in *AdminInput) (*models.Admin, error)
	Get(ctx context.Context, id uint) (*models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
	Update(ctx context.Context, id uint, in *AdminInput) (*models.Admin, error)
	// Delete refuses to remove the last remaining admin.
	Delete(ctx context.Context, id uint) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Admin       *models.Admin
}

type adminService struct {
	*core
	secret []byte
	ttl    time.Duration
}

var _ AdminService = (*adminService)(nil)

func (s *adminService) Register(ctx context.Context, in *AdminInput) (*models.Admin, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.TrimSpace(*in.Email)
	if err := s.ensureEmailFree(ctx, email, 0); err != nil {
		return nil, err
	}
	a := &models.Admin{
		Name:         *in.Name,
		Email:        email,
		PasswordHash: utils.HashPassword(*in.Password),
		Role:         valueOr(in.Role, "admin"),
		CreatedAt:    s.now(),
	}
	if err := s.repos.Admins.Create(ctx, a); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindAdmin, "Admin created: "+a.Name)
	logger.From(ctx).Info("admin registered", zap.Uint("admin_id", a.ID), zap.String("email", a.Email))
	return a, nil
}

func (s *adminService) Get(ctx context.Context, id uint) (*models.Admin, error) {
	var a models.Admin
	if err := s.repos.Admins.GetByID(ctx, id, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *adminService) List(ctx context.Context) ([]models.Admin, error) {
	return s.repos.Admins.All(ctx)
}

func (s *adminService) Update(ctx context.Context, id uint, in *AdminInput) (*models.Admin, error) {
	// A blank password keeps the current one.
	if in.Password != nil && *in.Password == "" {
		in.Password = nil
	}
	if err := validatePatch(in); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var a models.Admin
	if err := s.repos.Admins.GetByID(ctx, id, &a); err != nil {
		return nil, err
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email != a.Email {
			if err := s.ensureEmailFree(ctx, email, id); err != nil {
				return nil, err
			}
		}
		a.Email = email
	}
	set(&a.Name, in.Name)
	set(&a.Role, in.Role)
	if in.Password != nil {
		a.PasswordHash = utils.HashPassword(*in.Password)
	}

	if err := s.repos.Admins.Update(ctx, &a); err != nil {
		return nil, err
	}
	s.emit(ctx, models.KindAdmin, "Admin updated: "+a.Name)
	logger.From(ctx).Info("admin updated", zap.Uint("admin_id", id))
	return &a, nil
}

func (s *adminService) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var a models.Admin
	if err := s.repos.Admins.GetByID(ctx, id, &a); err != nil {
		return err
	}
	n, err := s.repos.Admins.Count(ctx)
	if err != nil {
		return err
	}
	if n <= 1 {
		return appErr.New(appErr.CodeInvariant, "Cannot delete the last admin")
	}
	if err := s.repos.Admins.Delete(ctx, id); err != nil {
		return err
	}
	s.emit(ctx, models.KindAdmin, "Admin deleted: "+a.Name)
	logger.From(ctx).Info("admin deleted", zap.Uint("admin_id", id))
	return nil
}

func (s *adminService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, appErr.New(appErr.CodeInvalid, "Email and password are required")
	}
	var a models.Admin
	if err := s.repos.Admins.GetByEmail(ctx, strings.TrimSpace(email), &a); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeUnauthorized, "Invalid credentials")
		}
		return nil, err
	}
	if !utils.CheckPassword(a.PasswordHash, password) {
		logger.From(ctx).Warn("admin login rejected", zap.String("email", a.Email))
		return nil, appErr.New(appErr.CodeUnauthorized, "Invalid credentials")
	}

	exp := s.now().Add(s.ttl)
	token, err := IssueToken(s.secret, Actor{ID: a.ID, Name: a.Name}, a.Role, exp)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "sign token failed")
	}
	return &LoginResult{AccessToken: token, ExpiresAt: exp, Admin: &a}, nil
}

// ensureEmailFree fails with CodeConflict when another admin (not self) holds email.
func (s *adminService) ensureEmailFree(ctx context.Context, email string, self uint) error {
	var other models.Admin
	err := s.repos.Admins.GetByEmail(ctx, email, &other)
	switch {
	case err == nil && other.ID != self:
		return appErr.New(appErr.CodeConflict, "Admin with this email already exists")
	case err == nil, appErr.IsCode(err, appErr.CodeNotFound):
		return nil
	default:
		return err
	}
}
