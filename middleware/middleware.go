package middleware

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// ErrorHandler turns errors attached with c.Error into a generic 500 when
// the handler did not write a response itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		log.Printf("Request error [%s]: %v", c.GetString(RequestIDKey), err.Err)

		if c.Writer.Written() {
			return
		}

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal server error",
			Message: "An unexpected error occurred",
			Code:    http.StatusInternalServerError,
		})
	}
}

// RateLimiter keeps one token bucket per client key.
type RateLimiter struct {
	limiters    map[string]*visitor
	mutex       sync.Mutex
	rate        rate.Limit
	burst       int
	idleTTL     time.Duration
	lastCleanup time.Time
	now         func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(requestsPerMinute int, burst int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters:    make(map[string]*visitor),
		rate:        rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:       burst,
		idleTTL:     10 * time.Minute,
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

// GetLimiter returns the rate limiter for a given key (IP address)
func (rl *RateLimiter) GetLimiter(key string) *rate.Limiter {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	if now.Sub(rl.lastCleanup) > rl.idleTTL {
		rl.cleanupLocked(now)
	}

	v, exists := rl.limiters[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = v
	}
	v.lastSeen = now

	return v.limiter
}

// cleanupLocked drops limiters idle for longer than idleTTL.
func (rl *RateLimiter) cleanupLocked(now time.Time) {
	for key, v := range rl.limiters {
		if now.Sub(v.lastSeen) > rl.idleTTL {
			delete(rl.limiters, key)
		}
	}
	rl.lastCleanup = now
}

// Len reports how many client keys are tracked.
func (rl *RateLimiter) Len() int {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	return len(rl.limiters)
}

// RateLimit middleware
func RateLimit(rateLimiter *RateLimiter, requestsPerMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rateLimiter.GetLimiter(c.ClientIP())

		if !limiter.Allow() {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))

			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error:   "Rate limit exceeded",
				Message: fmt.Sprintf("Too many requests. Limit: %d requests per minute", requestsPerMinute),
				Code:    http.StatusTooManyRequests,
			})
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
		c.Next()
	}
}

// ValidateJSON rejects write requests whose body is not declared as JSON.
func ValidateJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodDelete, http.MethodOptions, http.MethodHead:
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if !strings.Contains(contentType, "application/json") {
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid content type",
				Message: "Content-Type must be application/json",
				Code:    http.StatusBadRequest,
			})
			return
		}

		c.Next()
	}
}

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestID reuses the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger middleware for detailed request logging
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		// Log format: [IP] REQUEST_ID METHOD PATH STATUS LATENCY
		log.Printf("[%s] %s %s %s %d %v",
			c.ClientIP(),
			c.GetString(RequestIDKey),
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}

// SecurityHeaders middleware adds security headers
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
