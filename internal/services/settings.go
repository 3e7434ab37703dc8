package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"alertroster/internal/domain"
)

type settingsService struct {
	repo     domain.SettingsRepository
	password string
}

// NewSettingsService creates a SettingsService gated by the given shared
// mutation password.
func NewSettingsService(repo domain.SettingsRepository, password string) domain.SettingsService {
	return &settingsService{repo: repo, password: password}
}

func (s *settingsService) GetSettings(ctx context.Context) (*domain.Recipient, error) {
	rec, err := s.repo.Get(ctx)
	if err != nil {
		// An absent settings row is a valid initial state, not a failure.
		if errors.Is(err, domain.ErrRecipientNotFound) {
			return &domain.Recipient{}, nil
		}
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return rec, nil
}

func (s *settingsService) UpsertSettings(ctx context.Context, password, email, phone string) (*domain.Recipient, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return nil, domain.ErrUnauthorized
	}
	rec := &domain.Recipient{
		ID:    domain.SettingsID,
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
	if err := s.repo.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return rec, nil
}
