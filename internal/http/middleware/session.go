package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"personacast/internal/domain/user"
	apperrors "personacast/pkg/errors"
)

const (
	// ContextKeyRole holds the session role, or "" for anonymous callers.
	ContextKeyRole = "session_role"
	// ContextKeyUserID holds the session user id.
	ContextKeyUserID = "session_user_id"

	bearerPrefix = "Bearer "
)

// SessionClaims is what the auth provider puts into a session token.
// Only verification and claim extraction happen here; issuing tokens is
// the provider's job.
type SessionClaims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Session struct {
	secret []byte
}

func NewSession(secret string) *Session {
	return &Session{secret: []byte(secret)}
}

// Middleware extracts the session from the Authorization header when
// present. An absent or invalid token leaves the request anonymous;
// rejection is left to the per-route role guards.
func (s *Session) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return next(c)
			}

			claims, err := s.parse(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return next(c)
			}

			c.Set(ContextKeyRole, claims.Role)
			c.Set(ContextKeyUserID, claims.Subject)
			return next(c)
		}
	}
}

// RequireRole rejects requests whose session role is not one of the
// given roles. Admins pass every guard.
func (s *Session) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := Role(c)
			if role == "" {
				return apperrors.Unauthorized("authentication required")
			}
			if role == user.RoleAdmin {
				return next(c)
			}
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return apperrors.Forbidden("insufficient role")
		}
	}
}

func (s *Session) parse(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("invalid session token")
	}
	return claims, nil
}

// Role returns the session role set by Middleware, or "".
func Role(c echo.Context) string {
	if role, ok := c.Get(ContextKeyRole).(string); ok {
		return role
	}
	return ""
}

// UserID returns the session user id set by Middleware, or "".
func UserID(c echo.Context) string {
	if id, ok := c.Get(ContextKeyUserID).(string); ok {
		return id
	}
	return ""
}
