package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phuchoang/InteriorHub/internal/util"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	if !m.rateLimiter.Enabled() {
		ctx.Next()
		return
	}

	allow, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allow {
		ctx.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Too many requests", util.GenerateErrorMessages(errors.New("rate limit exceeded, retry later")))
		ctx.Abort()
		return
	}

	ctx.Next()
}
