package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/scentlab/scentlab/internal/constants"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://scentlab.vn", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://scentlab.vn", []string{"*"}, true)
	if got != "https://scentlab.vn" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://admin.scentlab.vn", []string{"https://scentlab.vn", "https://admin.scentlab.vn"}, false)
	if got != "https://admin.scentlab.vn" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://evil.example.com", []string{"https://scentlab.vn"}, false)
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
	req.Header.Set(requestIDHeader, "req-abc")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-abc" {
		t.Fatalf("response request id want req-abc got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-abc" {
		t.Fatalf("context request id want req-abc got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if w2.Header().Get(requestIDHeader) == "" {
		t.Fatalf("generated request id should not be empty")
	}
}

func TestJWTAuthMiddlewareMissingSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(JWTAuthMiddleware("", nil))
	r.GET("/admin/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("status_code want 401 got %d", resp.StatusCode)
	}
}

func TestUserJWTAuthMiddlewareRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(UserJWTAuthMiddleware("test-secret-test-secret-test-secret", nil))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("status_code want 401 got %d", resp.StatusCode)
	}
}

func TestIsIssuedAfterInvalidBefore(t *testing.T) {
	now := time.Now()

	if !isIssuedAfterInvalidBefore(jwt.NewNumericDate(now), nil) {
		t.Fatalf("nil invalid-before should accept any token")
	}
	if isIssuedAfterInvalidBefore(nil, &now) {
		t.Fatalf("token without issued-at should be rejected when invalid-before is set")
	}

	earlier := now.Add(-time.Minute)
	if isIssuedAfterInvalidBefore(jwt.NewNumericDate(earlier), &now) {
		t.Fatalf("token issued before the cutoff should be rejected")
	}
	later := now.Add(time.Minute)
	if !isIssuedAfterInvalidBefore(jwt.NewNumericDate(later), &now) {
		t.Fatalf("token issued after the cutoff should be accepted")
	}
}

func TestIsActiveUserStatus(t *testing.T) {
	if !isActiveUserStatus(constants.UserStatusActive) {
		t.Fatalf("active status should pass")
	}
	if !isActiveUserStatus(" Active ") {
		t.Fatalf("status check should ignore case and whitespace")
	}
	if isActiveUserStatus("") {
		t.Fatalf("empty status should fail")
	}
	if isActiveUserStatus(constants.UserStatusDisabled) {
		t.Fatalf("disabled status should fail")
	}
}
