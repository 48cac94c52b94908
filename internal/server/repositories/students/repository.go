package students

import "context"

// Repository resolves student identities to their underlying account ids.
type Repository interface {
	// ResolveAccountID maps a student aggregate id to the account id the
	// student record points at. Returns common.ErrorNotFound when no such
	// student exists.
	ResolveAccountID(ctx context.Context, studentID string) (string, error)
}
