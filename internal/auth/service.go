package auth

import (
	"errors"
	"fmt"
	"time"

	"tasting-contest-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims are the claims of an access token. The subject is the user id.
type AuthClaims struct {
	Handle string `json:"handle,omitempty"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserID returns the subject as a user id
func (c *AuthClaims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("subject is not a user id")
	}
	return id, nil
}

// AuthService signs and validates access tokens. Token issuance for real
// sessions happens upstream; GenerateJWT serves tooling and tests.
type AuthService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewAuthService creates an auth service from the application config
func NewAuthService(cfg *config.Config) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT secret is required")
	}
	ttl := cfg.JWTTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{secret: []byte(cfg.JWTSecret), issuer: cfg.JWTIssuer, ttl: ttl}, nil
}

// GenerateJWT signs an access token for a user
func (s *AuthService) GenerateJWT(userID uuid.UUID, handle string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Handle: handle,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT parses a token and checks its signature, lifetime and issuer
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}
	return claims, nil
}
