package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"topreceit/backend/internal/config"
	"topreceit/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/whoami", AuthMiddleware(), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestAuthMiddlewareAcceptsIssuedToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", EnableTokenValidation: true}
	router := newAuthRouter()

	token, err := jwt.GenerateToken("u1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", EnableTokenValidation: true}
	router := newAuthRouter()

	for _, header := range []string{"", "Bearer not-a-token", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestAuthMiddlewareDisabledPassesThrough(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", EnableTokenValidation: false}
	router := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status with validation disabled = %d, want 200", rec.Code)
	}
}
