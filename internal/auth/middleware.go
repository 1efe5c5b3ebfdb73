package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperrors "taskmanager/internal/errors"
)

const (
	claimsContextKey = "auth_claims"
	bearerPrefix     = "Bearer "
)

var errMissingToken = errors.New("Missing token")

// NewMiddleware returns the echo middleware guarding protected routes. It reads the
// Authorization header, strips a leading "Bearer " when present, verifies the token and
// rejects revoked ones. Every failure is a 401.
func NewMiddleware(jwtService *JWTService, tokenStore TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:       claimsContextKey,
		TokenLookupFuncs: []middleware.ValuesExtractor{authorizationHeader},
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			revoked, _ := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
			if revoked {
				return nil, ErrTokenRevoked
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			detail := ErrTokenInvalid.Error()
			switch {
			case errors.Is(err, errMissingToken), errors.Is(err, echojwt.ErrJWTMissing):
				detail = errMissingToken.Error()
			case errors.Is(err, ErrTokenExpired):
				detail = ErrTokenExpired.Error()
			case errors.Is(err, ErrTokenRevoked):
				detail = ErrTokenRevoked.Error()
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Detail: detail,
				Code:   "UNAUTHORIZED",
			})
		},
	})
}

// authorizationHeader extracts the token without insisting on the Bearer scheme: a raw
// header value is passed through as-is and left to verification.
func authorizationHeader(c echo.Context) ([]string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, errMissingToken
	}
	return []string{strings.TrimPrefix(header, bearerPrefix)}, nil
}

// ClaimsFromContext returns the verified claims stored by the middleware.
func ClaimsFromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	return claims, ok
}

// UserIDFromContext returns the authenticated user's id.
func UserIDFromContext(c echo.Context) (uint, bool) {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// RemainingValidity is how long the claims stay valid from now. Zero when already expired.
func (c *Claims) RemainingValidity() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	if d := time.Until(c.ExpiresAt.Time); d > 0 {
		return d
	}
	return 0
}
