package middleware

import (
	"errors"
	"net/http"

	appcontext "github.com/Sovanra/DesignDeck/internal/app_context"
	ratelimiter "github.com/Sovanra/DesignDeck/internal/rate_limiter"
	"github.com/Sovanra/DesignDeck/internal/util"
	"github.com/gin-gonic/gin"
)

type Middleware struct {
	rateLimiter *ratelimiter.FixedWindowRateLimiter
	app         *appcontext.Application
}

func NewMiddleware(app *appcontext.Application,
	rateLimiter *ratelimiter.FixedWindowRateLimiter,
) *Middleware {
	return &Middleware{app: app, rateLimiter: rateLimiter}
}

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	allow, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allow {
		ctx.Header("Retry-After", retryAfter.String())
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Too many requests", util.GenerateErrorMessages(errors.New("rate limit exceeded")), nil)
		return
	}

	ctx.Next()
}

// BodySizeLimitMiddleware enforces the global request body ceiling.
// Oversized requests with a declared length are rejected up front,
// chunked ones fail inside the handler via MaxBytesReader.
func (m Middleware) BodySizeLimitMiddleware(ctx *gin.Context) {
	maxBytes := m.app.Config.Upload.MaxBytes

	if ctx.Request.ContentLength > maxBytes {
		util.ResponseFailed(ctx, http.StatusRequestEntityTooLarge,
			"File is larger than the maximum allowed size (50MB)",
			util.GenerateErrorMessages(errors.New("request body too large")), nil)
		return
	}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
	ctx.Next()
}
