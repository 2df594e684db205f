package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(max int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(WriteRateLimit(max, window))
	router.GET("/expenses", func(c *gin.Context) { c.String(200, "ok") })
	router.POST("/expenses", func(c *gin.Context) { c.String(201, "ok") })
	router.DELETE("/expenses/:id", func(c *gin.Context) { c.Status(204) })
	return router
}

func doReq(router *gin.Engine, method, path, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWriteRateLimit(t *testing.T) {
	router := newLimitedRouter(2, time.Minute)

	// 同一 IP 连续 3 次写入，第 3 次应返回 429
	w1 := doReq(router, "POST", "/expenses", "192.168.1.1")
	w2 := doReq(router, "DELETE", "/expenses/1", "192.168.1.1")
	w3 := doReq(router, "POST", "/expenses", "192.168.1.1")

	assert.Equal(t, 201, w1.Code)
	assert.Equal(t, 204, w2.Code)
	assert.Equal(t, http.StatusTooManyRequests, w3.Code)
	assert.Contains(t, w3.Body.String(), "Rate limit exceeded")
	assert.NotEmpty(t, w3.Header().Get("Retry-After"))

	// 读请求不受影响
	assert.Equal(t, 200, doReq(router, "GET", "/expenses", "192.168.1.1").Code)

	// 不同 IP 互不影响
	assert.Equal(t, 201, doReq(router, "POST", "/expenses", "192.168.1.2").Code)
	assert.Equal(t, 201, doReq(router, "POST", "/expenses", "192.168.1.2").Code)
}

func TestWriteRateLimit_WindowExpires(t *testing.T) {
	router := newLimitedRouter(1, 100*time.Millisecond)

	assert.Equal(t, 201, doReq(router, "POST", "/expenses", "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doReq(router, "POST", "/expenses", "10.0.0.1").Code)

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 201, doReq(router, "POST", "/expenses", "10.0.0.1").Code)
}

func TestWriteRateLimit_Disabled(t *testing.T) {
	router := newLimitedRouter(0, time.Minute)

	for i := 0; i < 5; i++ {
		assert.Equal(t, 201, doReq(router, "POST", "/expenses", "10.0.0.2").Code)
	}
}

func TestWriteLimiter_SweepsIdleClients(t *testing.T) {
	l := newWriteLimiter(2, time.Minute)
	t0 := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)

	ok, _ := l.allow("10.0.0.1", t0)
	assert.True(t, ok)
	ok, _ = l.allow("10.0.0.2", t0.Add(10*time.Second))
	assert.True(t, ok)
	assert.Len(t, l.store, 2)

	// 一个窗口后再有请求时，空闲 IP 被清理
	ok, _ = l.allow("10.0.0.3", t0.Add(2*time.Minute))
	assert.True(t, ok)
	assert.Len(t, l.store, 1)
	assert.Contains(t, l.store, "10.0.0.3")
}

func TestWriteLimiter_RetryAfter(t *testing.T) {
	l := newWriteLimiter(1, time.Minute)
	t0 := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)

	ok, _ := l.allow("10.0.0.1", t0)
	assert.True(t, ok)
	ok, retry := l.allow("10.0.0.1", t0.Add(20*time.Second))
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, retry)

	ok, _ = l.allow("10.0.0.1", t0.Add(61*time.Second))
	assert.True(t, ok)
}
