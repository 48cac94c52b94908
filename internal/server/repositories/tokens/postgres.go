// Package tokens provides a PostgreSQL-backed repository for the refresh-token
// records issued by the token service.
package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avlearn/authkeeper/internal/common"
	"github.com/avlearn/authkeeper/internal/dbx"
	"github.com/avlearn/authkeeper/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GenerateID returns a new random UUID string for use as a token id.
func (r *PostgresRepository) GenerateID() string {
	return uuid.NewString()
}

// Create inserts a new token record.
func (r *PostgresRepository) Create(ctx context.Context, record *models.TokenRecord) error {
	query := `
		INSERT INTO tokens (id, session_id, user_id, user_type, type, token_expire_on, version, created_by, last_modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := r.db.ExecContext(ctx, query,
		record.ID, record.SessionID, record.UserID, string(record.UserType), string(record.Type),
		record.ExpireOn, record.Version, record.CreatedBy, record.LastModifiedBy); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// Find returns the token record with the given id.
// If not found, it returns common.ErrorNotFound.
func (r *PostgresRepository) Find(ctx context.Context, id string) (*models.TokenRecord, error) {
	query := `
		SELECT session_id, user_id, user_type, type, token_expire_on, version, created_by, last_modified_by
		FROM tokens
		WHERE id = $1
	`
	record := &models.TokenRecord{ID: id}
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&record.SessionID, &record.UserID, &record.UserType, &record.Type,
		&record.ExpireOn, &record.Version, &record.CreatedBy, &record.LastModifiedBy); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return record, nil
}

// Delete removes a token record by its id.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM tokens
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
