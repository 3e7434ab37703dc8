package domain

import (
	"context"
	"errors"
)

// Sentinel errors for registry operations.
var (
	// ErrUnauthorized is returned when the shared mutation password does not match.
	ErrUnauthorized = errors.New("invalid settings password")
	// ErrDuplicateRecipient is returned when a recipient email is already registered.
	ErrDuplicateRecipient = errors.New("recipient email already registered")
	// ErrRecipientNotFound is the normalized "no row" result from a point lookup.
	// It is never surfaced to API callers; services turn it into an empty result
	// or a proceed-with-insert decision.
	ErrRecipientNotFound = errors.New("recipient not found")
)

// SettingsID is the fixed row id of the singleton settings record.
const SettingsID = 1

// Recipient represents a stored contact entry eligible to receive alerts.
// Field names on the wire match the store columns. All fields are omitted
// when empty so an absent settings record serializes as {}.
// swagger:model Recipient
type Recipient struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"recipient_email,omitempty"`
	Phone     string `json:"alert_phone_number,omitempty"`
}

// NewRecipient returns a new Recipient with the given fields. ID is set by the
// repository on create.
func NewRecipient(firstName, lastName, email, phone string) *Recipient {
	return &Recipient{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
	}
}

// SettingsRepository defines storage operations for the singleton settings
// record (row id = SettingsID).
type SettingsRepository interface {
	// Get returns the settings record, or ErrRecipientNotFound if the row is absent.
	Get(ctx context.Context) (*Recipient, error)
	// Upsert creates the settings row or replaces its mutable fields.
	Upsert(ctx context.Context, rec *Recipient) error
}

// RecipientRepository defines storage operations for the multi-row recipient roster.
type RecipientRepository interface {
	// Create inserts a new recipient and sets rec.ID from the store.
	// Returns ErrDuplicateRecipient if the email is already registered.
	Create(ctx context.Context, rec *Recipient) error
	// GetByEmail returns the recipient with the given email, or ErrRecipientNotFound.
	GetByEmail(ctx context.Context, email string) (*Recipient, error)
	List(ctx context.Context) ([]*Recipient, error)
}

// SettingsService defines the legacy single-record registry capability.
type SettingsService interface {
	// GetSettings returns the current settings record, or an empty record if
	// none exists yet.
	GetSettings(ctx context.Context) (*Recipient, error)
	// UpsertSettings replaces the settings record's email and phone after
	// checking the shared mutation password. Returns ErrUnauthorized on
	// mismatch without touching the store.
	UpsertSettings(ctx context.Context, password, email, phone string) (*Recipient, error)
}

// RosterService defines the current multi-record registry capability.
type RosterService interface {
	ListRecipients(ctx context.Context) ([]*Recipient, error)
	// AddRecipient registers a new recipient. Returns ErrDuplicateRecipient if
	// a recipient with the same email already exists; the existing record is
	// left untouched.
	AddRecipient(ctx context.Context, firstName, lastName, email, phone string) (*Recipient, error)
}
