package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/danielasalgadov/zona-de-riego/internal/config"
	"github.com/danielasalgadov/zona-de-riego/internal/middleware"
)

const testSecret = "test_secret"

func signToken(t *testing.T, sub int64, role string) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(15 * time.Minute).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runProtected(t *testing.T, authz string, mws ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func testConfig() config.Config {
	return config.Config{JWTSecret: testSecret}
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec := runProtected(t, "", middleware.AuthJWT(testConfig()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_MalformedHeader(t *testing.T) {
	rec := runProtected(t, "Token abc", middleware.AuthJWT(testConfig()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_BadSignature(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": int64(1), "role": "USER",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, _ := tok.SignedString([]byte("other_secret"))

	rec := runProtected(t, "Bearer "+signed, middleware.AuthJWT(testConfig()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ValidToken(t *testing.T) {
	rec := runProtected(t, "Bearer "+signToken(t, 7, "USER"), middleware.AuthJWT(testConfig()))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoleGuard_RejectsUser(t *testing.T) {
	rec := runProtected(t, "Bearer "+signToken(t, 7, "USER"),
		middleware.AuthJWT(testConfig()), middleware.AdminRoleGuard())
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoleGuard_AllowsAdmin(t *testing.T) {
	rec := runProtected(t, "Bearer "+signToken(t, 7, "ADMIN"),
		middleware.AuthJWT(testConfig()), middleware.AdminRoleGuard())
	assert.Equal(t, http.StatusOK, rec.Code)
}
