package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authorizationPayloadKey = "authorization_payload"
	requestIDHeader         = "X-Request-ID"
)

// Verdict is the outcome of a Guard.
type Verdict struct {
	Allow  bool
	Status int
	Reason string
}

func Allow() Verdict {
	return Verdict{Allow: true}
}

func Deny(status int, reason string) Verdict {
	return Verdict{Status: status, Reason: reason}
}

// Guard decides whether a request may reach its handler. Guards may store
// values on the context for later guards and the handler.
type Guard func(c *gin.Context) Verdict

// Authenticate requires "Authorization: Bearer <token>". A missing header is
// a 401, anything that does not verify is a 403.
func Authenticate(tokenService ports.TokenService) Guard {
	return func(c *gin.Context) Verdict {
		header := c.GetHeader("Authorization")
		if header == "" {
			return Deny(http.StatusUnauthorized, msgUnauthorized)
		}

		fields := strings.Fields(header)
		if len(fields) != 2 || !strings.EqualFold(fields[0], "bearer") {
			return Deny(http.StatusForbidden, msgForbidden)
		}

		payload, err := tokenService.VerifyToken(fields[1])
		if err != nil {
			return Deny(http.StatusForbidden, msgForbidden)
		}

		c.Set(authorizationPayloadKey, payload)
		return Allow()
	}
}

// SelfQuery only lets a caller read resources for their own email. It must
// run after Authenticate. An absent query parameter is allowed; the handler
// then falls back to the caller's email.
func SelfQuery(param string) Guard {
	return func(c *gin.Context) Verdict {
		payload, ok := getAuthPayload(c, authorizationPayloadKey)
		if !ok {
			return Deny(http.StatusUnauthorized, msgUnauthorized)
		}
		if email := c.Query(param); email != "" && email != payload.Email {
			return Deny(http.StatusForbidden, msgForbidden)
		}
		return Allow()
	}
}

// Guarded evaluates guards in order and aborts on the first denial.
func Guarded(logger ports.LoggerPort, guards ...Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, guard := range guards {
			verdict := guard(c)
			if verdict.Allow {
				continue
			}
			logger.Warn("Request denied", map[string]interface{}{
				"path":   c.FullPath(),
				"method": c.Request.Method,
				"status": verdict.Status,
				"reason": verdict.Reason,
				"ip":     c.ClientIP(),
			})
			newErrorResponse(c, verdict.Status, verdict.Reason)
			return
		}
		c.Next()
	}
}

func AuthMiddleware(tokenService ports.TokenService, logger ports.LoggerPort) gin.HandlerFunc {
	return Guarded(logger, Authenticate(tokenService))
}

func getAuthPayload(c *gin.Context, key string) (*domain.TokenPayload, bool) {
	value, exists := c.Get(key)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.TokenPayload)
	return payload, ok && payload != nil
}

// RequestLogger tags each request with an id and logs it once it completes.
func RequestLogger(logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()

		logger.Info("HTTP request", map[string]interface{}{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
	}
}
