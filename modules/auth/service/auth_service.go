package service

import (
	"context"
	"strings"
	"time"

	"gig-planner/core/cache"
	"gig-planner/core/constants"
	"gig-planner/core/errors"
	"gig-planner/core/logger"
	"gig-planner/core/utils"
	"gig-planner/modules/auth/dto"
	"gig-planner/modules/auth/entity"
	"gig-planner/modules/auth/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	repo  *repository.AuthRepository
	cache cache.Cache
}

func NewAuthService(repo *repository.AuthRepository, cache cache.Cache) *AuthService {
	return &AuthService{repo: repo, cache: cache}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "email, name and password are required", nil)
	}
	if len(req.Password) < 8 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "password must be at least 8 characters", nil)
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "an account with this email already exists", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user, err := s.repo.CreateUser(ctx, &entity.User{
		Email:    email,
		Name:     req.Name,
		Password: hashed,
		IsActive: true,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to create user", err)
	}

	logger.Info("AuthService:Register:Created", "user_id", user.ID, "email", user.Email)
	return s.authResponse(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to load user", err)
	}
	if user == nil || !utils.CheckPassword(user.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}
	if !user.IsActive {
		return nil, errors.NewAppError(errors.ErrForbidden, "account is disabled", nil)
	}

	logger.Info("AuthService:Login:Success", "user_id", user.ID)
	return s.authResponse(user)
}

// Logout blacklists the presented access token for the remainder of its
// lifetime.
func (s *AuthService) Logout(ctx context.Context, rawToken string, claims *utils.TokenClaims) error {
	ttl := constants.AccessTokenTTL
	if claims != nil && claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}
	if err := s.cache.BlacklistToken(ctx, rawToken, ttl); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}
	return nil
}

// RefreshToken exchanges a valid refresh token for a new pair. The used
// refresh token is blacklisted so it cannot be replayed.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := utils.ValidateAndParseToken(refreshToken)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrTokenExpired, "invalid or expired refresh token", err)
	}
	if claims.Scope != constants.ScopeTokenRefresh {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "not a refresh token", nil)
	}

	blacklisted, err := s.cache.IsTokenBlacklisted(ctx, refreshToken)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check token", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "refresh token has been revoked", nil)
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to load user", err)
	}
	if user == nil || !user.IsActive {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "account not available", nil)
	}

	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			_ = s.cache.BlacklistToken(ctx, refreshToken, remaining)
		}
	}

	pair, err := s.tokenPair(user)
	if err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPersistence, "failed to load user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *AuthService) authResponse(user *entity.User) (*dto.AuthResponse, error) {
	pair, err := s.tokenPair(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User:   toUserResponse(user),
		Tokens: *pair,
	}, nil
}

func (s *AuthService) tokenPair(user *entity.User) (*dto.TokenPairResponse, error) {
	access, err := utils.GenerateToken(user.ID, user.Email, constants.ScopeTokenAccess)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate access token", err)
	}
	refresh, err := utils.GenerateToken(user.ID, user.Email, constants.ScopeTokenRefresh)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate refresh token", err)
	}
	return &dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
	}
}
