package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if strings.TrimSpace(w2.Header().Get(requestIDHeader)) == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

func signTestToken(t *testing.T, secret string, userID uint, role string) string {
	t.Helper()
	claims := AuthClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	return token
}

func decodeStatusCode(t *testing.T, body []byte) int {
	t.Helper()
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp.StatusCode
}

func TestUserJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const secret = "test-secret"

	r := gin.New()
	r.Use(UserJWTAuthMiddleware(secret))
	r.GET("/me", func(c *gin.Context) {
		uid, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"status_code": 0, "user_id": uid})
	})

	// no header
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	if code := decodeStatusCode(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("missing header status_code want 401 got %d", code)
	}

	// malformed header
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)
	if code := decodeStatusCode(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("malformed header status_code want 401 got %d", code)
	}

	// wrong secret
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "other-secret", 7, ""))
	r.ServeHTTP(w, req)
	if code := decodeStatusCode(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("bad signature status_code want 401 got %d", code)
	}

	// valid token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, secret, 7, ""))
	r.ServeHTTP(w, req)
	if code := decodeStatusCode(t, w.Body.Bytes()); code != 0 {
		t.Fatalf("valid token status_code want 0 got %d", code)
	}
}

func TestAdminJWTAuthMiddlewareRequiresRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const secret = "admin-secret"

	r := gin.New()
	r.Use(AdminJWTAuthMiddleware(secret))
	r.GET("/admin/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0})
	})

	// user token without the admin role
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, secret, 7, ""))
	r.ServeHTTP(w, req)
	if code := decodeStatusCode(t, w.Body.Bytes()); code != 403 {
		t.Fatalf("non-admin status_code want 403 got %d", code)
	}

	// admin token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, secret, 7, adminRole))
	r.ServeHTTP(w, req)
	if code := decodeStatusCode(t, w.Body.Bytes()); code != 0 {
		t.Fatalf("admin status_code want 0 got %d", code)
	}
}

func TestRateLimitMiddlewarePassThroughWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	rule := RateLimitRule{Prefix: "test", WindowSeconds: 60, MaxRequests: 1}
	r.Use(RateLimitMiddleware(nil, rule, KeyByUserID))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if code := decodeStatusCode(t, w.Body.Bytes()); code != 0 {
			t.Fatalf("pass-through status_code want 0 got %d", code)
		}
	}
}
