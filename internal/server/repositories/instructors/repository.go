package instructors

import "context"

// Repository resolves instructor identities to their underlying account ids.
type Repository interface {
	// ResolveAccountID maps an instructor aggregate id to the account id the
	// instructor record points at. Returns common.ErrorNotFound when no such
	// instructor exists.
	ResolveAccountID(ctx context.Context, instructorID string) (string, error)
}
