package services

import (
	"context"
	"fmt"
	"time"

	"github.com/workmapr/employer_directory_app/internal/core/domain"
	portssvc "github.com/workmapr/employer_directory_app/internal/core/ports/services"
	"github.com/workmapr/employer_directory_app/internal/utils"
	"github.com/workmapr/employer_directory_app/pkg/config"
)

// tokenService implements the TokenSvcFacade interface
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new token service
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// Ensure tokenService implements the TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken issues a signed JWT whose subject is the user's ID.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiresAt, nil
}
