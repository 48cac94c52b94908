// Package instructors provides the PostgreSQL lookup from instructor ids to
// account ids, used when binding tokens to an instructor session.
package instructors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avlearn/authkeeper/internal/common"
	"github.com/avlearn/authkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ResolveAccountID returns the account id behind the given instructor id.
func (r *PostgresRepository) ResolveAccountID(ctx context.Context, instructorID string) (string, error) {
	query := `
		SELECT user_id FROM instructors
		WHERE id = $1
	`
	var userID string
	if err := r.db.QueryRowContext(ctx, query, instructorID).Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return userID, nil
}
