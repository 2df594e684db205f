package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// WriteRateLimit 写接口限流中间件
// 每 IP 在 window 内最多 maxWrites 次 POST/PUT/PATCH/DELETE，超过返回 429；读请求不计数
// maxWrites <= 0 时不限流
func WriteRateLimit(maxWrites int, window time.Duration) gin.HandlerFunc {
	if maxWrites <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := newWriteLimiter(maxWrites, window)
	return func(c *gin.Context) {
		if !isWrite(c.Request.Method) {
			c.Next()
			return
		}

		ok, retry := limiter.allow(c.ClientIP(), time.Now())
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"errors": []string{"Rate limit exceeded, try again later"},
			})
			return
		}
		c.Next()
	}
}

// writeLimiter 滑动窗口计数，不启动后台协程
// 每过一个 window 在请求路径上顺带清理空闲 IP
type writeLimiter struct {
	max       int
	window    time.Duration
	mu        sync.Mutex
	store     map[string][]time.Time
	lastSweep time.Time
}

func newWriteLimiter(max int, window time.Duration) *writeLimiter {
	return &writeLimiter{
		max:    max,
		window: window,
		store:  make(map[string][]time.Time),
	}
}

// allow 记录一次写请求；超限时返回 false 和需要等待的时间
func (l *writeLimiter) allow(ip string, now time.Time) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(now)
	}

	ts := prune(l.store[ip], now.Add(-l.window))
	if len(ts) >= l.max {
		l.store[ip] = ts
		return false, ts[0].Add(l.window).Sub(now)
	}
	l.store[ip] = append(ts, now)
	return true, 0
}

// sweep 删除窗口内没有记录的 IP，调用方持有锁
func (l *writeLimiter) sweep(now time.Time) {
	cutoff := now.Add(-l.window)
	for ip, ts := range l.store {
		if ts = prune(ts, cutoff); len(ts) == 0 {
			delete(l.store, ip)
		} else {
			l.store[ip] = ts
		}
	}
	l.lastSweep = now
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// prune 移除窗口外的记录
func prune(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
