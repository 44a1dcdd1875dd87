package v1

import (
	"net/http"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ProjectUC domain.ProjectUsecase
	Config    *config.Config
}

var startTime = time.Now()

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(middleware.APIRateLimitConfig(
		cfg.RateLimitThreshold,
		time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
	)))

	// Health Check
	api.GET("/health", healthCheck)

	// Contact form gets a much stricter per-IP limit than the rest of the API
	contactLimiter := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(
		cfg.ContactLimitThreshold,
		time.Duration(cfg.ContactLimitWindowHours)*time.Hour,
	))
	NewContactHandler(api, deps.ContactUC, contactLimiter)
	NewProjectHandler(api, deps.ProjectUC)

	// Swagger
	r.GET("/api/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Static frontend
	registerStatic(r, cfg)

	return r
}

// healthCheck godoc
// @Summary      Health Check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(startTime).Seconds(),
	})
}
