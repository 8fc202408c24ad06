package middleware

import (
	"net/http"
	"strings"

	"vidstream/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	JWT              *utils.TokenManager
	AccessCookieName string
}

// RequireAuth accepts the access token from the Authorization header or,
// failing that, the access-token cookie.
func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, username, ok := m.resolve(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		SetAuthContext(c, userID, username)
		return next(c)
	}
}

// OptionalAuth sets the auth context when a valid token is present and
// lets the request through either way.
func (m AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if userID, username, ok := m.resolve(c); ok {
			SetAuthContext(c, userID, username)
		}
		return next(c)
	}
}

// RequireGuest rejects requests that already carry a valid access token,
// keeping logged-in clients off login/signup.
func (m AuthMiddleware) RequireGuest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, _, ok := m.resolve(c); ok {
			return echo.NewHTTPError(http.StatusForbidden, "already authenticated")
		}
		return next(c)
	}
}

func (m AuthMiddleware) resolve(c echo.Context) (uuid.UUID, string, bool) {
	if m.JWT == nil {
		return uuid.Nil, "", false
	}
	token := extractBearerToken(c.Request())
	if token == "" {
		token = m.readAccessCookie(c)
	}
	if token == "" {
		return uuid.Nil, "", false
	}
	claims, err := m.JWT.ParseAccessToken(token)
	if err != nil {
		return uuid.Nil, "", false
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", false
	}
	return userID, claims.Username, true
}

func (m AuthMiddleware) readAccessCookie(c echo.Context) string {
	name := m.AccessCookieName
	if name == "" {
		name = "access_token"
	}
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func extractBearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
