package v1

import (
	"net/http"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	PortfolioUC domain.PortfolioUsecase
	ProfileUC   domain.ProfileUsecase
	AuthUC      domain.AuthUsecase
	ContactUC   domain.ContactUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	globalLimit := middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window))
	loginLimit := middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	v1 := r.Group("/v1")
	v1.Use(globalLimit)

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewAuthHandler(v1, deps.AuthUC, loginLimit)
	NewPortfolioHandler(v1, deps.PortfolioUC)
	NewProfileHandler(v1, deps.ProfileUC)
	NewContactHandler(v1, deps.ContactUC)

	return r
}
