package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/socialhub/socialhub-api/internal/core/domain"
	"github.com/socialhub/socialhub-api/internal/core/ports"
)

// AccountService manages linked social accounts. Linking simulates OAuth by
// recording the platform and username only; no real token exchange happens.
type AccountService struct {
	repo   ports.SocialAccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.SocialAccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

func (s *AccountService) Link(ctx context.Context, user *domain.User, in ports.LinkAccountInput) (*domain.SocialAccount, error) {
	account := &domain.SocialAccount{
		UserID:    user.ID,
		Platform:  in.Platform,
		Username:  in.Username,
		Followers: 0,
		Status:    "connected",
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, account)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to link account")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("platform", created.Platform).
		Msg("social account linked")
	return created, nil
}

func (s *AccountService) List(ctx context.Context, user *domain.User) ([]domain.SocialAccount, error) {
	return s.repo.ListByUser(ctx, user.ID)
}
