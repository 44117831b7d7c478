package services

import (
	"context"
	"errors"
	"time"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/pkg/apperrors"
	"github.com/sandesh/institutecrm/internal/pkg/auth"
	"github.com/sandesh/institutecrm/internal/pkg/logger"
)

// userReader is the user lookup surface the auth service needs.
type userReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// tokenStore is the refresh token surface the auth service needs.
type tokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, time.Time, bool, error)
	RevokeToken(ctx context.Context, token string) error
}

// AuthService handles credential checks and token issuance
type AuthService struct {
	userRepo   userReader
	tokenRepo  tokenStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo userReader, tokenRepo tokenStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues an access/refresh token pair.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken exchanges a live refresh token for a new pair. The used
// token is revoked so each refresh token works exactly once.
func (s *AuthService) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	userID, expiryDate, isRevoked, err := s.tokenRepo.GetTokenByValue(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if isRevoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(expiryDate) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeToken(ctx, req.RefreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, _, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token pair")
		return nil, err
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(expiresIn),
		TokenType:    "Bearer",
	}, nil
}
