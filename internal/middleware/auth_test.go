package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lshigami/pesomatch/config"
)

const testSecret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func claimsFor(sub string, adminRole string) Claims {
	return Claims{
		AppMetadata: AppMetadata{Role: adminRole},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := NewAuthenticator(&config.Config{Auth: config.Auth{JWTSecret: secret}})
	r := gin.New()
	api := r.Group("/api", auth.RequireAuth())
	api.GET("/me", func(ctx *gin.Context) {
		id, _ := CandidateID(ctx)
		ctx.String(http.StatusOK, id.String())
	})
	api.GET("/admin", RequireAdmin(), func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})
	return r
}

func do(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := newRouter(testSecret)
	sub := uuid.New()

	expired := claimsFor(sub.String(), "")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"valid", sign(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(sub.String(), "")), http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong secret", sign(t, jwt.SigningMethodHS256, []byte("other"), claimsFor(sub.String(), "")), http.StatusUnauthorized},
		{"wrong algorithm", sign(t, jwt.SigningMethodHS512, []byte(testSecret), claimsFor(sub.String(), "")), http.StatusUnauthorized},
		{"expired", sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired), http.StatusUnauthorized},
		{"subject not a uuid", sign(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor("juan", "")), http.StatusUnauthorized},
		{"garbage", "not-a-token", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "/api/me", tt.token)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.status, w.Body.String())
			}
			if tt.status == http.StatusOK && w.Body.String() != sub.String() {
				t.Errorf("candidate id = %s, want %s", w.Body.String(), sub)
			}
		})
	}
}

func TestRequireAuthWithoutSecret(t *testing.T) {
	r := newRouter("")
	tok := sign(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(uuid.NewString(), ""))
	if w := do(r, "/api/me", tok); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 when no secret is configured", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	r := newRouter(testSecret)
	sub := uuid.NewString()

	topLevel := claimsFor(sub, "")
	topLevel.Role = "admin"

	tests := []struct {
		name   string
		claims Claims
		status int
	}{
		{"app metadata role", claimsFor(sub, "admin"), http.StatusNoContent},
		{"top-level role", topLevel, http.StatusNoContent},
		{"jobseeker", claimsFor(sub, "jobseeker"), http.StatusForbidden},
		{"no role", claimsFor(sub, ""), http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := sign(t, jwt.SigningMethodHS256, []byte(testSecret), tt.claims)
			if w := do(r, "/api/admin", tok); w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}
