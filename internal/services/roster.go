package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"alertroster/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type rosterService struct {
	repo domain.RecipientRepository
}

// NewRosterService creates a RosterService over the given repository.
func NewRosterService(repo domain.RecipientRepository) domain.RosterService {
	return &rosterService{repo: repo}
}

func (s *rosterService) ListRecipients(ctx context.Context) ([]*domain.Recipient, error) {
	recipients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}
	return recipients, nil
}

func (s *rosterService) AddRecipient(ctx context.Context, firstName, lastName, email, phone string) (*domain.Recipient, error) {
	// Emails are matched exactly as given (case-sensitive); only surrounding
	// whitespace is stripped.
	email = strings.TrimSpace(email)
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("invalid email format")
	}

	// Advisory pre-check for a friendly error on the common path. The unique
	// index enforced on insert below is what actually guarantees uniqueness
	// under concurrent adds.
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrDuplicateRecipient
	}
	if !errors.Is(err, domain.ErrRecipientNotFound) {
		return nil, fmt.Errorf("failed to check existing recipient: %w", err)
	}

	rec := domain.NewRecipient(strings.TrimSpace(firstName), strings.TrimSpace(lastName), email, strings.TrimSpace(phone))
	if err := s.repo.Create(ctx, rec); err != nil {
		if errors.Is(err, domain.ErrDuplicateRecipient) {
			return nil, domain.ErrDuplicateRecipient
		}
		return nil, fmt.Errorf("failed to create recipient: %w", err)
	}
	return rec, nil
}
