package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Identity is the verified claim set of a session token.
type Identity struct {
	UserID uint
	Email  string
}

// Claims carries the registered JWT claims plus the user's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenService issues and verifies HMAC-SHA256 signed session tokens.
// The secret is fixed for the process lifetime; rotating it invalidates
// every outstanding token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret and
// token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token for the given user, valid from now until now + ttl.
func (s *TokenService) Issue(userID uint, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Email: email,
	})

	return token.SignedString(s.secret)
}

// Verify parses and validates a token, returning the identity it carries.
// Expired tokens fail with ErrTokenExpired; any structural or signature
// failure fails with ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID: uint(userID),
		Email:  claims.Email,
	}, nil
}
