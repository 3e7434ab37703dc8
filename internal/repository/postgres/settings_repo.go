package postgres

import (
	"context"
	"database/sql"
	"errors"

	"alertroster/internal/domain"
)

type settingsRepository struct {
	DB *sql.DB
}

// NewSettingsRepository returns a domain.SettingsRepository backed by the
// recipients table, treating row id = domain.SettingsID as the singleton.
func NewSettingsRepository(db *sql.DB) domain.SettingsRepository {
	return &settingsRepository{DB: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.Recipient, error) {
	query := `
		SELECT id, COALESCE(first_name, ''), COALESCE(last_name, ''),
		       recipient_email, COALESCE(alert_phone_number, '')
		FROM recipients
		WHERE id = $1
	`
	rec := &domain.Recipient{}
	err := r.DB.QueryRowContext(ctx, query, domain.SettingsID).
		Scan(&rec.ID, &rec.FirstName, &rec.LastName, &rec.Email, &rec.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecipientNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, rec *domain.Recipient) error {
	query := `
		INSERT INTO recipients (id, recipient_email, alert_phone_number)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET recipient_email = EXCLUDED.recipient_email,
		    alert_phone_number = EXCLUDED.alert_phone_number
	`
	_, err := r.DB.ExecContext(ctx, query, domain.SettingsID, rec.Email, rec.Phone)
	return err
}
