package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidstream/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenManager() *utils.TokenManager {
	return &utils.TokenManager{
		AccessSecret:    []byte("access-secret"),
		RefreshSecret:   []byte("refresh-secret"),
		Issuer:          "test",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}
}

func okHandler(c echo.Context) error {
	userID, _ := UserIDFromContext(c)
	return c.String(http.StatusOK, userID.String())
}

func performRequest(t *testing.T, mw echo.MiddlewareFunc, decorate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(okHandler)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRequireAuthAcceptsBearerToken(t *testing.T) {
	manager := testTokenManager()
	mw := AuthMiddleware{JWT: manager}
	userID := uuid.New()
	token, _, err := manager.IssueAccessToken(userID.String(), "alice", "alice@example.com")
	require.NoError(t, err)

	rec := performRequest(t, mw.RequireAuth, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestRequireAuthAcceptsCookie(t *testing.T) {
	manager := testTokenManager()
	mw := AuthMiddleware{JWT: manager, AccessCookieName: "access_token"}
	userID := uuid.New()
	token, _, err := manager.IssueAccessToken(userID.String(), "alice", "alice@example.com")
	require.NoError(t, err)

	rec := performRequest(t, mw.RequireAuth, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthRejectsMissingAndBadTokens(t *testing.T) {
	mw := AuthMiddleware{JWT: testTokenManager()}

	rec := performRequest(t, mw.RequireAuth, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = performRequest(t, mw.RequireAuth, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer garbage")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthRejectsRefreshToken(t *testing.T) {
	manager := testTokenManager()
	mw := AuthMiddleware{JWT: manager}
	token, _, err := manager.IssueRefreshToken(uuid.New().String())
	require.NoError(t, err)

	rec := performRequest(t, mw.RequireAuth, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthPassesThroughAnonymous(t *testing.T) {
	mw := AuthMiddleware{JWT: testTokenManager()}
	rec := performRequest(t, mw.OptionalAuth, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uuid.Nil.String(), rec.Body.String())
}

func TestRequireGuestRejectsAuthenticated(t *testing.T) {
	manager := testTokenManager()
	mw := AuthMiddleware{JWT: manager}
	token, _, err := manager.IssueAccessToken(uuid.New().String(), "alice", "alice@example.com")
	require.NoError(t, err)

	rec := performRequest(t, mw.RequireGuest, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = performRequest(t, mw.RequireGuest, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
