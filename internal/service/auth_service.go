package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskmanager/internal/auth"
	apperrors "taskmanager/internal/errors"
	"taskmanager/internal/model"
	"taskmanager/internal/repository"
)

// AuthService handles registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	bcryptCost int
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, bcryptCost int) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailAlreadyRegistered
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration; the unique index caught it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues an access token.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !auth.ComparePassword(user.Password, password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// Logout revokes the presented token for the rest of its validity.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.tokenStore.BlacklistAccessToken(ctx, claims.ID, claims.RemainingValidity()); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
