package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"portfolio/internal/config"
	apperrors "portfolio/internal/errors"
)

// TokenExpiry is the duration for which issued tokens are valid.
const TokenExpiry = 7 * 24 * time.Hour

var (
	errUnexpectedSigningMethod = errors.New("unexpected signing method")
	errInvalidToken            = errors.New("invalid token")
)

// Claims represents JWT claims.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret.
// A weak secret is accepted here; every signing and verification then fails.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Configured reports whether the secret is strong enough to be used.
func (s *JWTService) Configured() bool {
	return config.SecretLongEnough(string(s.secret))
}

// GenerateToken issues an HS256 token for the admin that expires after TokenExpiry.
func (s *JWTService) GenerateToken(userID, email string) (string, error) {
	if !s.Configured() {
		return "", apperrors.ErrSecretMisconfigured
	}

	now := s.now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a JWT token and returns the claims.
// Only HS256 is accepted and the token must carry an expiry.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if !s.Configured() {
		return nil, apperrors.ErrSecretMisconfigured
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errUnexpectedSigningMethod
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ExpiresAt == nil {
		return nil, errInvalidToken
	}

	return claims, nil
}
