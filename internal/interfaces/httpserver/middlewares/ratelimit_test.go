package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterCeiling(t *testing.T) {
	// ceiling of 10 per minute: the 11th call in the window is rejected
	rl := NewRateLimiter(10, 10)

	for i := 0; i < 10; i++ {
		if !rl.Allow("client-a") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("client-a") {
		t.Fatalf("11th request within the window should be rejected")
	}

	// other clients have their own window
	if !rl.Allow("client-b") {
		t.Fatalf("a different client must not share the exhausted window")
	}
}

func TestRateLimitMiddlewareRejectsBeforeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(1, 1)
	invoked := 0

	router := gin.New()
	router.POST("/refresh", rl.Middleware(), func(c *gin.Context) {
		invoked++
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		router.ServeHTTP(w, req)
		return w.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request expected 200, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("second request expected 429, got %d", code)
	}
	if invoked != 1 {
		t.Fatalf("handler must not run for rejected requests, ran %d times", invoked)
	}
}
