package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("auth: no session token")
	ErrInvalidToken = errors.New("auth: invalid or expired token")
)

// Identity is the decoded session payload attached to a request.
type Identity struct {
	Email  string
	Claims jwt.MapClaims
}

// Manager signs and verifies session tokens with a process-wide HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("auth: signing secret is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs the user payload as-is, adding only the expiry claim.
func (m *Manager) Issue(user map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range user {
		claims[k] = v
	}
	claims["exp"] = jwt.NewNumericDate(time.Now().Add(m.ttl))
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// Only HMAC signing methods are accepted.
func (m *Manager) Verify(tokenStr string) (Identity, error) {
	if tokenStr == "" {
		return Identity{}, ErrNoToken
	}
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	id := Identity{Claims: claims}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	return id, nil
}
