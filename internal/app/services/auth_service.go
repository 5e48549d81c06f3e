package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/repositories"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/auth"
	"github.com/yigit/schooladmin/internal/pkg/validation"
)

// AuthService handles authentication operations
type AuthService struct {
	repos      *repositories.Repositories
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		repos:      repos,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a non-admin employee and signs them in.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := employee.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repos.Employees.Create(ctx, employee)
	})
	if err != nil {
		return nil, conflictError(err)
	}

	s.logger.Info().Int64("employeeId", employee.ID).Msg("Employee registered")
	return s.issue(employee)
}

// Login verifies credentials and returns an access token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	employee, err := s.repos.Employees.FindBy(ctx, "email", strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error finding employee: %w", err)
	}
	if !employee.CheckPassword(req.Password) {
		s.logger.Warn().Int64("employeeId", employee.ID).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(employee)
}

// Me returns the employee behind an authenticated request.
func (s *AuthService) Me(ctx context.Context, employeeID int64) (*models.Employee, error) {
	return s.repos.Employees.Get(ctx, employeeID)
}

func (s *AuthService) issue(employee *models.Employee) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateAccessToken(employee.ID, employee.Email, employee.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		Employee: employee,
	}, nil
}
