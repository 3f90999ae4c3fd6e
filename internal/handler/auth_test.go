package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/franchise-api/backend/internal/model"
	"github.com/franchise-api/backend/internal/service"
)

func TestLoginValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var auth *service.AuthService
	var reset *service.PasswordResetService
	r.POST("/api/v1/auth/login", NewAuthHandler(auth, reset).Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{"username":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body model.APIError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error envelope: %v", err)
	}
	if body.Status != http.StatusBadRequest || body.Path != "/api/v1/auth/login" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestChangePasswordRequiresPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var auth *service.AuthService
	var reset *service.PasswordResetService
	r.POST("/api/v1/auth/change-password", NewAuthHandler(auth, reset).ChangePassword)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/change-password",
		bytes.NewBufferString(`{"currentPassword":"old","newPassword":"NewPass123!"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func newCodec(t *testing.T) *service.TokenCodec {
	t.Helper()
	codec, err := service.NewTokenCodec("handler-test-secret!", time.Hour)
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	return codec
}

func protectedRouter(codec *service.TokenCodec, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(codec)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		principal := GetAuthUser(c)
		c.JSON(http.StatusOK, gin.H{"username": principal.Username, "roles": model.RoleNames(principal.Roles)})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	codec := newCodec(t)
	r := protectedRouter(codec)

	token, err := codec.Issue("alice", []string{"ROLE_USER"}, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, w.Code)
		}
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	codec := newCodec(t)
	r := protectedRouter(codec)

	token, err := codec.Issue("alice", []string{"ROLE_USER"}, time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareStripsAuthorityPrefix(t *testing.T) {
	codec := newCodec(t)
	r := protectedRouter(codec)

	token, err := codec.Issue("alice", []string{"ROLE_ADMIN", "ROLE_USER"}, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	var body struct {
		Username string   `json:"username"`
		Roles    []string `json:"roles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Username != "alice" || len(body.Roles) != 2 || body.Roles[0] != "ADMIN" {
		t.Fatalf("unexpected principal: %+v", body)
	}
}

func TestRequireRole(t *testing.T) {
	codec := newCodec(t)
	r := protectedRouter(codec, RequireRole(model.RoleAdmin))

	userToken, err := codec.Issue("alice", []string{"ROLE_USER"}, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	adminToken, err := codec.Issue("boss", []string{"ROLE_ADMIN"}, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for USER, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for ADMIN, got %d", w.Code)
	}
}
