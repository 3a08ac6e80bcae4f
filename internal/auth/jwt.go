package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is fixed: every token expires one hour after issuance.
const SessionTTL = time.Hour

var ErrInvalidToken = errors.New("invalid token")

type TokenMaker struct {
	secret []byte
}

func NewTokenMaker(secret string) *TokenMaker {
	return &TokenMaker{secret: []byte(secret)}
}

// SessionClaims carries a password-stripped user snapshot captured at
// issuance time. The snapshot goes stale if the profile changes later;
// only the username is read back out of it.
type SessionClaims struct {
	User map[string]any `json:"user,omitempty"`
	jwt.RegisteredClaims
}

// Principal returns the authenticated username. A structurally valid
// token whose payload carries no user object is not a session.
func (c *SessionClaims) Principal() (string, bool) {
	if c.User == nil {
		return "", false
	}
	name, _ := c.User["username"].(string)
	return name, name != ""
}

func (t *TokenMaker) Issue(snapshot map[string]any) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		User: snapshot,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenMaker) Parse(tokenStr string) (SessionClaims, error) {
	var c SessionClaims

	token, err := jwt.ParseWithClaims(tokenStr, &c, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return SessionClaims{}, ErrInvalidToken
	}

	return c, nil
}
