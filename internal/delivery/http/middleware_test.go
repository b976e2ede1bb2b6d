package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORSMiddleware())
	router.POST("/generate", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("sets permissive headers on POST", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Allow-Origin = %q, want *", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); got != "POST, OPTIONS" {
			t.Errorf("Allow-Methods = %q, want POST, OPTIONS", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
			t.Errorf("Allow-Headers = %q, want Content-Type", got)
		}
	})

	t.Run("answers preflight with 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/generate", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("preflight status = %d, want 200", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("preflight Allow-Origin = %q, want *", got)
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	// One request allowed, effectively no refill within the test.
	router.Use(RateLimitMiddleware(0.001, 1))
	router.POST("/generate", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/generate", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/generate", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}

func TestRateLimitTracksClientsSeparately(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimitMiddleware(0.001, 1))
	router.POST("/generate", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	reqA := httptest.NewRequest(http.MethodPost, "/generate", nil)
	reqA.RemoteAddr = "10.0.0.1:1234"
	wA := httptest.NewRecorder()
	router.ServeHTTP(wA, reqA)

	reqB := httptest.NewRequest(http.MethodPost, "/generate", nil)
	reqB.RemoteAddr = "10.0.0.2:1234"
	wB := httptest.NewRecorder()
	router.ServeHTTP(wB, reqB)

	if wA.Code != http.StatusOK || wB.Code != http.StatusOK {
		t.Errorf("statuses = %d, %d, want 200 for both distinct clients", wA.Code, wB.Code)
	}
}
