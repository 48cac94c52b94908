// Package services contains server-side business logic. This file implements
// TokenService, which issues JWT access tokens and server-stored refresh
// tokens bound to a login session and a principal (student or instructor).
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avlearn/authkeeper/internal/common"
	"github.com/avlearn/authkeeper/internal/dbx"
	"github.com/avlearn/authkeeper/internal/server/auth"
	"github.com/avlearn/authkeeper/internal/server/config"
	"github.com/avlearn/authkeeper/internal/server/models"
	"github.com/avlearn/authkeeper/internal/server/repositories/repomanager"
)

// accountResolver maps a domain-level principal id to its account id.
// Each principal kind has its own repository implementing it.
type accountResolver interface {
	ResolveAccountID(ctx context.Context, domainID string) (string, error)
}

// TokenService issues and rotates tokens:
//   - CreateAccessToken: stateless signed JWT, never persisted
//   - CreateRefreshToken: opaque id, persisted before it is returned
//   - CreatePair: both of the above for one session
//   - Rotate: exchange a stored refresh token for a fresh pair
//
// The storage handle and configuration are fixed at construction and never
// reassigned, so concurrent calls share no mutable state.
type TokenService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	now                          func() time.Time
}

// NewTokenService constructs a TokenService using repositories and server config.
func NewTokenService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TokenService {
	return &TokenService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		now:                          time.Now,
	}
}

// CreateAccessToken resolves the principal's account id and returns a signed
// access token binding it to sessionID. Nothing is written to storage.
func (s *TokenService) CreateAccessToken(ctx context.Context, sessionID string, principal models.Principal) (string, error) {
	if s.db == nil {
		return "", common.ErrRepositoryNotConfigured
	}

	accountID, err := s.resolveAccountID(ctx, principal, s.db)
	if err != nil {
		return "", err
	}

	return auth.GenerateToken(accountID, principal.Kind, sessionID, s.jwtSecret, s.accessTokenValidityDuration, s.now())
}

// CreateRefreshToken persists a new refresh-token record for the principal's
// session and returns its id. The id is handed out only after the record is
// durably written; on any persistence failure no id escapes.
func (s *TokenService) CreateRefreshToken(ctx context.Context, sessionID string, principal models.Principal) (string, error) {
	if s.db == nil {
		return "", common.ErrRepositoryNotConfigured
	}

	accountID, err := s.resolveAccountID(ctx, principal, s.db)
	if err != nil {
		return "", err
	}

	return s.appendRefreshRecord(ctx, sessionID, principal.Kind, accountID, s.db)
}

// CreatePair issues an access token and a refresh token for the same session
// in one call, as the sign-in flow needs.
func (s *TokenService) CreatePair(ctx context.Context, sessionID string, principal models.Principal) (*models.TokenPair, error) {
	if s.db == nil {
		return nil, common.ErrRepositoryNotConfigured
	}

	accountID, err := s.resolveAccountID(ctx, principal, s.db)
	if err != nil {
		return nil, err
	}

	return s.generatePair(ctx, sessionID, principal.Kind, accountID, s.db)
}

// Rotate validates a stored refresh token, rotates it transactionally, and
// returns a fresh TokenPair bound to the same session and principal. Expired
// tokens yield common.ErrRefreshTokenExpired.
func (s *TokenService) Rotate(ctx context.Context, refreshTokenID string) (*models.TokenPair, error) {
	if s.db == nil {
		return nil, common.ErrRepositoryNotConfigured
	}

	record, err := s.repomanager.Tokens(s.db).Find(ctx, refreshTokenID)
	if err != nil {
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if record.ExpireOn.Before(s.now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *models.TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Tokens(tx).Delete(ctx, refreshTokenID); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generatePair(ctx, record.SessionID, record.UserType, record.UserID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Verify checks an access token's signature and expiry and returns its claims.
func (s *TokenService) Verify(tokenString string) (*auth.Claims, error) {
	return auth.ParseToken(tokenString, s.jwtSecret)
}

// --- helpers below ---

// resolver selects the per-kind lookup repository. The switch is exhaustive
// over models.PrincipalKind.
func (s *TokenService) resolver(kind models.PrincipalKind, db dbx.DBTX) (accountResolver, error) {
	switch kind {
	case models.KindStudent:
		return s.repomanager.Students(db), nil
	case models.KindInstructor:
		return s.repomanager.Instructors(db), nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownPrincipalKind, kind)
	}
}

func (s *TokenService) resolveAccountID(ctx context.Context, principal models.Principal, db dbx.DBTX) (string, error) {
	r, err := s.resolver(principal.Kind, db)
	if err != nil {
		return "", err
	}
	accountID, err := r.ResolveAccountID(ctx, principal.DomainID)
	if err != nil {
		return "", fmt.Errorf("error resolving %s account: %w", principal.Kind, err)
	}
	return accountID, nil
}

func (s *TokenService) appendRefreshRecord(ctx context.Context, sessionID string, kind models.PrincipalKind, accountID string, db dbx.DBTX) (string, error) {
	repo := s.repomanager.Tokens(db)

	record := &models.TokenRecord{
		ID:             repo.GenerateID(),
		SessionID:      sessionID,
		UserID:         accountID,
		UserType:       kind,
		Type:           models.TokenTypeRefresh,
		ExpireOn:       s.now().Add(s.refreshTokenValidityDuration),
		Version:        1,
		CreatedBy:      accountID,
		LastModifiedBy: accountID,
	}
	if err := repo.Create(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

func (s *TokenService) generatePair(ctx context.Context, sessionID string, kind models.PrincipalKind, accountID string, db dbx.DBTX) (*models.TokenPair, error) {
	access, err := auth.GenerateToken(accountID, kind, sessionID, s.jwtSecret, s.accessTokenValidityDuration, s.now())
	if err != nil {
		return nil, err
	}
	refresh, err := s.appendRefreshRecord(ctx, sessionID, kind, accountID, db)
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
