package handlers

import (
	"log/slog"
	"net/http"

	"github.com/soyjefu/theprepared-PFM/cmd/docs"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/middleware"
	"github.com/soyjefu/theprepared-PFM/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api/v1")

	// Public authentication routes
	loginLimiter, err := middleware.NewMemoryRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		slog.Warn("Invalid LOGIN_RATE_LIMIT, login is not rate limited", slog.String("value", cfg.LoginRateLimit), slog.String("error", err.Error()))
		loginLimiter = nil
	}
	registerAuthRoutes(api, services, loginLimiter)

	// Everything else requires a valid access token
	setupAPIV1Routes(api, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes delegates to the per-entity route registrations behind the auth middleware
func setupAPIV1Routes(
	api *gin.RouterGroup,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, service.User)
	RegisterAccountRoutes(v1, service.Account, service.Preset)
	RegisterTransactionRoutes(v1, service.Transaction)
	registerPresetRoutes(v1, service.Preset)
	registerBudgetRoutes(v1, service.Budget)
	registerReportingRoutes(v1, service.Reporting)
	registerImportRoutes(v1, service.Import)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
