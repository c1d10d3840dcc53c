package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRateLimitBlocksOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/signup", RateLimit(2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/signup", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		require.Equal(t, http.StatusOK, resp.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusTooManyRequests, resp.Code)
}

func TestRateLimitSteadyClientNeverBlocked(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/signup", RateLimit(3, 200*time.Millisecond), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// One request every 150ms keeps at most two requests in any window,
	// so every single one must pass.
	for i := 0; i < 6; i++ {
		if i > 0 {
			time.Sleep(150 * time.Millisecond)
		}
		req := httptest.NewRequest(http.MethodPost, "/signup", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		require.Equal(t, http.StatusOK, resp.Code, "request %d", i+1)
	}
}

func TestRateLimitResetsAfterWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/signup", RateLimit(2, 100*time.Millisecond), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/signup", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp.Code
	}

	require.Equal(t, http.StatusOK, send())
	require.Equal(t, http.StatusOK, send())
	require.Equal(t, http.StatusTooManyRequests, send())

	time.Sleep(120 * time.Millisecond)
	require.Equal(t, http.StatusOK, send())
}
