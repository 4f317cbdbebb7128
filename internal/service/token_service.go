package service

import (
	"context"
	"time"

	"go-catalog-api/internal/core/auth"
	"go-catalog-api/internal/core/cache"
	"go-catalog-api/internal/domain"
)

// TokenService issues access/refresh pairs and rotates refresh tokens.
type TokenService struct {
	jwter   *auth.JWTer
	revoked *cache.RevocationList // nil when redis is not configured
}

func NewTokenService(jwter *auth.JWTer, revoked *cache.RevocationList) *TokenService {
	return &TokenService{jwter: jwter, revoked: revoked}
}

func (s *TokenService) Issue(uid string) (auth.TokenPair, error) {
	return s.jwter.IssuePair(uid)
}

// Refresh exchanges a valid refresh token for a fresh pair. The used token
// is revoked for its remaining lifetime so it cannot be replayed.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	claims, err := s.jwter.Parse(refreshToken, auth.TypeRefresh)
	if err != nil {
		return auth.TokenPair{}, domain.ErrInvalidCredentials
	}
	if used, err := s.revoked.IsRevoked(ctx, claims.ID); err != nil {
		return auth.TokenPair{}, err
	} else if used {
		return auth.TokenPair{}, domain.ErrInvalidCredentials
	}

	pair, err := s.jwter.IssuePair(claims.UID)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if claims.ExpiresAt != nil {
		_ = s.revoked.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
	}
	return pair, nil
}
