package stubrgs

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidSession = errors.New("invalid session token")

// SessionStore issues and verifies session identifiers. A session ID is a
// signed JWT carrying an internal session key, so the stub can reject
// tampered or expired IDs without a lookup.
type SessionStore struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionStore creates a session store signing with the given secret.
func NewSessionStore(secret string, ttl time.Duration) *SessionStore {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{secret: []byte(secret), ttl: ttl}
}

// Issue creates a new session and returns the wire session ID along with the
// internal session key.
func (s *SessionStore) Issue() (string, string, error) {
	sid := uuid.New().String()
	now := time.Now().UTC()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, sid, nil
}

// Verify validates a wire session ID and returns the internal session key.
func (s *SessionStore) Verify(sessionID string) (string, error) {
	token, err := jwt.Parse(sessionID, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidSession
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidSession
	}
	return sid, nil
}
