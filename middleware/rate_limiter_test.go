package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(perMin))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func hit(router *gin.Engine, forwardedFor string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware_LimitsPerIP(t *testing.T) {
	router := newLimitedRouter(2)

	assert.Equal(t, http.StatusOK, hit(router, "203.0.113.7"))
	assert.Equal(t, http.StatusOK, hit(router, "203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, hit(router, "203.0.113.7"))

	// A different caller has its own budget.
	assert.Equal(t, http.StatusOK, hit(router, "203.0.113.8"))
}

func TestClientIP_PrefersForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "single hop", header: "203.0.113.9", want: "203.0.113.9"},
		{name: "multiple hops", header: "203.0.113.9, 10.0.0.1", want: "203.0.113.9"},
		{name: "padded", header: "  203.0.113.9  ", want: "203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("X-Forwarded-For", tt.header)
			assert.Equal(t, tt.want, clientIP(c))
		})
	}
}

func TestClientIP_FallsBackToRemoteAddr(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.4:51234"
	assert.Equal(t, "192.0.2.4", clientIP(c))
}
