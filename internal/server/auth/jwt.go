// Package auth implements the stateless signing and verification of access
// tokens. Access tokens are HS256 JWTs binding a session id to a resolved
// account id and principal kind; they are never persisted, so their validity
// is entirely determined by signature and embedded expiry.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/avlearn/authkeeper/internal/common"
	"github.com/avlearn/authkeeper/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the access-token payload: registered claims plus the
// session-binding triple.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string               `json:"user"`
	UserType  models.PrincipalKind `json:"type"`
	SessionID string               `json:"sessionId"`
}

// GenerateToken signs a Claims payload valid for the given duration starting
// at issuedAt. The caller supplies issuedAt so token lifetimes stay
// deterministic under an injected clock. An empty secret yields
// common.ErrSigningKeyMissing.
func GenerateToken(userID string, kind models.PrincipalKind, sessionID string, secretKey []byte, validity time.Duration, issuedAt time.Time) (string, error) {
	if len(secretKey) == 0 {
		return "", common.ErrSigningKeyMissing
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(validity)),
		},
		UserID:    userID,
		UserType:  kind,
		SessionID: sessionID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of an access token and returns
// its claims. Expired tokens yield common.ErrTokenExpired; any other defect
// (bad signature, wrong algorithm, malformed string) yields an error matching
// common.ErrInvalidToken, so callers can distinguish the two with errors.Is.
//
// Extra parser options (e.g. jwt.WithTimeFunc in tests) are passed through.
func ParseToken(tokenString string, secretKey []byte, opts ...jwt.ParserOption) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secretKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
