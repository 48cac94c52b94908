// Package tokens declares the persistence contract for refresh-token records.
package tokens

import (
	"context"

	"github.com/avlearn/authkeeper/internal/server/models"
)

// Repository is the append-only store for refresh-token records. Ids come
// from the store itself (GenerateID), never from callers, so ids minted here
// cannot collide with those of other writers sharing the same backend.
type Repository interface {
	// GenerateID returns a new globally unique token id. The id is the
	// refresh token's public value.
	GenerateID() string

	// Create appends a new token record. It never updates existing rows;
	// any backend failure is returned as-is with no retry.
	Create(ctx context.Context, record *models.TokenRecord) error

	// Find looks up a token record by id. Returns common.ErrorNotFound when
	// the record is absent.
	Find(ctx context.Context, id string) (*models.TokenRecord, error)

	// Delete removes a token record by id. Deleting a non-existent record is
	// not an error.
	Delete(ctx context.Context, id string) error
}
