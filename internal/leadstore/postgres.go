package leadstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stoneworks/lead-intake/internal/intake"
)

// pgxDB is the slice of the pgx pool API the store needs. Kept narrow so
// pgxmock's pool satisfies it in tests.
type pgxDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore stores leads in the relational database.
type PostgresStore struct {
	db pgxDB
}

// NewPostgresStore initializes a store backed by a pgx pool.
func NewPostgresStore(db pgxDB) *PostgresStore {
	if db == nil {
		panic("leadstore: pgx pool required")
	}
	return &PostgresStore{db: db}
}

// Save inserts a new lead row and returns its generated ID.
func (s *PostgresStore) Save(ctx context.Context, payload *intake.LeadPayload) (intake.SaveResult, error) {
	if payload == nil {
		return intake.SaveResult{}, errors.New("leadstore: payload cannot be nil")
	}

	id := uuid.New()
	query := `
		INSERT INTO leads (
			id, full_name, phone, email, postal_code, city, address,
			preferred_contact, service, service_name, message,
			project_details, photo_urls, submitted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := s.db.QueryRow(ctx, query,
		id,
		payload.FullName,
		payload.Phone,
		payload.Email,
		payload.PostalCode,
		payload.City,
		payload.Address,
		payload.PreferredContact,
		payload.Service,
		payload.ServiceName,
		payload.Message,
		payload.ProjectDetails,
		payload.PhotoURLs,
		payload.SubmittedAt,
	).Scan(&createdAt); err != nil {
		return intake.SaveResult{}, fmt.Errorf("leadstore: insert failed: %w", err)
	}

	return intake.SaveResult{OK: true, ID: id.String()}, nil
}

var _ intake.LeadStore = (*PostgresStore)(nil)
