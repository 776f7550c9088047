package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie carrying the session token.
const CookieName = "auth_token"

var ErrInvalidToken = errors.New("session: invalid token")

// Claims identifies the authenticated user for the lifetime of a session.
type Claims struct {
	UserID   string
	Username string
	Role     string
}

// Manager mints and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a session token for the given user identity.
func (m *Manager) Issue(userID, username, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(m.ttl).Unix(),
	})
	return token.SignedString(m.secret)
}

// Parse verifies a session token and extracts its claims.
// Expired or tampered tokens return ErrInvalidToken.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: sub, Username: username, Role: role}, nil
}
