package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"postshare/pkg/user"
)

type (
	sessionKey string

	// Manager signs and verifies HS256 bearer tokens.
	Manager struct {
		secret []byte
	}

	jwtClaims struct {
		User user.User `json:"user"`
		jwt.StandardClaims
	}
)

const SessionKey sessionKey = "authenticatedUser"

var (
	ErrNoAuth       = errors.New("sessions: no session found")
	ErrNoToken      = errors.New("sessions: bearer token not found")
	ErrInvalidToken = errors.New("sessions: token is not valid")
)

func NewSessionManager(secret string) *Manager {
	return &Manager{
		secret: []byte(secret),
	}
}

// UserFromToken returns the identity from an `Authorization: Bearer <token>` header value
// if the token signature and expiry are valid.
func (sm *Manager) UserFromToken(authHeader string) (*user.User, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		return nil, ErrNoToken
	}
	if len(sm.secret) == 0 {
		return nil, fmt.Errorf("%w: signing secret is not configured", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return sm.secret, nil
		})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &claims.User, nil
}

// CreateToken signs a token for u that expires after ttl.
func (sm *Manager) CreateToken(u *user.User, ttl time.Duration) (string, error) {
	if len(sm.secret) == 0 {
		return "", errors.New("sessions: signing secret is not configured")
	}
	now := time.Now()
	data := jwtClaims{
		User: *u,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(ttl).Unix(),
			IssuedAt:  now.Unix(),
			Subject:   u.Id,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, data).SignedString(sm.secret)
	if err != nil {
		return "", fmt.Errorf("sessions: failed signing token: %w", err)
	}
	return token, nil
}

func WithAuthUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, SessionKey, u)
}

func GetAuthUser(ctx context.Context) (*user.User, error) {
	user, ok := ctx.Value(SessionKey).(*user.User)
	if !ok || user == nil {
		return nil, ErrNoAuth
	}
	return user, nil
}
