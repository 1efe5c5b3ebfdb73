package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// DefaultTokenExpiry is the validity window used when none is configured.
const DefaultTokenExpiry = 60 * time.Minute

var (
	// ErrTokenExpired is returned for a well-formed token past its expiry.
	ErrTokenExpired = errors.New("Token expired")
	// ErrTokenInvalid is returned for bad signatures, malformed tokens or missing claims.
	ErrTokenInvalid = errors.New("Invalid token")
	// ErrTokenRevoked is returned for a token that was logged out.
	ErrTokenRevoked = errors.New("Token revoked")
)

// Claims represents JWT claims.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a new JWT service. A zero ttl means DefaultTokenExpiry.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl == 0 {
		ttl = DefaultTokenExpiry
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken issues an HS256 token for the user, valid for the configured window.
func (s *JWTService) GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies signature and expiry and returns the decoded claims.
// Failures are ErrTokenExpired or ErrTokenInvalid.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		// Claims are checked before the signature, so an expired forgery reports both.
		if errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
