package v1

import (
	"net/http"

	"episolve-backend/internal/delivery/http/middleware"
	"episolve-backend/internal/delivery/http/response"
	"episolve-backend/internal/domain"
	"episolve-backend/pkg/apperror"
	"episolve-backend/pkg/logger"
	"episolve-backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC    domain.ContactUsecase
	BookingUC    domain.BookingUsecase
	NewsletterUC domain.NewsletterUsecase
	// HealthUC is optional; without it /v1/health only reports liveness.
	HealthUC domain.HealthUsecase

	SecurityLogger *security.SecurityLogger
	// RateLimiter is optional; form routes are unlimited when nil.
	RateLimiter *middleware.RateLimiter
	FormLimit   middleware.RateLimitConfig

	// TrustedProxies lists peers whose X-Forwarded-For is believed; nil
	// trusts none, so the client IP is the TCP peer address.
	TrustedProxies []string
	// TrustedPlatform names an edge header carrying the client IP (e.g. gin.PlatformCloudflare).
	TrustedPlatform string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(deps.TrustedProxies); err != nil {
		logger.Log.Error("invalid trusted proxies, trusting none", "error", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.TrustedPlatform = deps.TrustedPlatform

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("panic recovered", "path", c.FullPath(), "panic", recovered)
		response.Error(c, http.StatusInternalServerError, apperror.GenericMessage, nil)
		c.Abort()
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		if deps.HealthUC != nil {
			if status, healthy := deps.HealthUC.Check(c.Request.Context()); !healthy {
				response.Error(c, http.StatusServiceUnavailable, "Service unavailable", status)
				return
			}
		}
		response.Success(c, http.StatusOK, "System operational")
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The site posts to the bare paths; /v1 mirrors them for versioned clients.
	for _, group := range []*gin.RouterGroup{&r.RouterGroup, v1} {
		forms := group.Group("")
		if deps.RateLimiter != nil {
			forms.Use(deps.RateLimiter.Middleware(deps.FormLimit))
		}
		NewContactHandler(forms, deps.ContactUC, deps.SecurityLogger)
		NewBookingHandler(forms, deps.BookingUC, deps.SecurityLogger)
		NewNewsletterHandler(forms, deps.NewsletterUC, deps.SecurityLogger)
	}

	return r
}
