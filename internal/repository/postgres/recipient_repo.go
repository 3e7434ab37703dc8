package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"alertroster/internal/domain"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type recipientRepository struct {
	DB *sql.DB
}

// NewRecipientRepository returns a domain.RecipientRepository implemented with Postgres.
func NewRecipientRepository(db *sql.DB) domain.RecipientRepository {
	return &recipientRepository{DB: db}
}

func (r *recipientRepository) Create(ctx context.Context, rec *domain.Recipient) error {
	query := `
		INSERT INTO recipients (first_name, last_name, recipient_email, alert_phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, rec.FirstName, rec.LastName, rec.Email, rec.Phone).Scan(&rec.ID)
	if err != nil {
		// The unique index on recipient_email is the authoritative duplicate
		// check; a concurrent insert that raced past the advisory lookup
		// lands here.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateRecipient
		}
		return err
	}
	return nil
}

func (r *recipientRepository) GetByEmail(ctx context.Context, email string) (*domain.Recipient, error) {
	query := `
		SELECT id, COALESCE(first_name, ''), COALESCE(last_name, ''),
		       recipient_email, COALESCE(alert_phone_number, '')
		FROM recipients
		WHERE recipient_email = $1
	`
	rec := &domain.Recipient{}
	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&rec.ID, &rec.FirstName, &rec.LastName, &rec.Email, &rec.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecipientNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *recipientRepository) List(ctx context.Context) ([]*domain.Recipient, error) {
	query := `
		SELECT id, COALESCE(first_name, ''), COALESCE(last_name, ''),
		       recipient_email, COALESCE(alert_phone_number, '')
		FROM recipients
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipients []*domain.Recipient
	for rows.Next() {
		rec := &domain.Recipient{}
		if err := rows.Scan(&rec.ID, &rec.FirstName, &rec.LastName, &rec.Email, &rec.Phone); err != nil {
			return nil, err
		}
		recipients = append(recipients, rec)
	}
	return recipients, rows.Err()
}
