package models

import "time"

// TokenType distinguishes token records in storage. The schema supports other
// kinds; this service only ever writes refresh rows.
type TokenType string

const TokenTypeRefresh TokenType = "refresh"

// TokenRecord is a persisted refresh-token row. ID doubles as the opaque
// token value handed to the caller; it is generated by the token store, never
// by the service.
type TokenRecord struct {
	ID             string
	SessionID      string
	UserID         string
	UserType       PrincipalKind
	Type           TokenType
	ExpireOn       time.Time
	Version        int
	CreatedBy      string
	LastModifiedBy string
}

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
