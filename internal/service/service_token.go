package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-admin/internal/config"
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/utils"
	"github.com/MKhiriev/go-user-admin/models"
)

// tokenService is the HS256 implementation of TokenService.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenDuration is added to iat to produce exp.
	tokenDuration time.Duration

	// now is the clock used for iat, exp and the expiry check.
	now func() time.Time

	logger *logger.Logger
}

// TokenServiceOption customises a TokenService built by NewTokenService.
type TokenServiceOption func(*tokenService)

// WithClock replaces the wall clock used to stamp and check tokens.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewTokenService constructs a TokenService from the token settings in cfg.
func NewTokenService(cfg config.ServerApp, logger *logger.Logger, opts ...TokenServiceOption) TokenService {
	s := &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue signs a token for username that expires after the configured
// duration.
func (s *tokenService) Issue(ctx context.Context, username string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(username, s.tokenDuration, s.tokenSignKey, s.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify validates tokenString. Any failure (bad signature, non-HMAC
// algorithm, malformed input, expired) is normalised to
// ErrInvalidOrExpiredToken.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrInvalidOrExpiredToken
	}

	return token, nil
}
