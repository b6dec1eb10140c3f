package handlers

import (
	"github.com/denimfab/denim_factory_app/cmd/docs"
	portssvc "github.com/denimfab/denim_factory_app/internal/core/ports/services"
	"github.com/denimfab/denim_factory_app/internal/dto"
	"github.com/denimfab/denim_factory_app/internal/middleware"
	"github.com/denimfab/denim_factory_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Everything under /api except /api/auth requires a valid token.
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))

	registerLedgerRoutes(api, "/bulk-inputs", "bulk-inputs", services.BulkInput, dto.CreateBulkInputRequest.ToDomain)
	registerLedgerRoutes(api, "/dry-process", "dry-process", services.DryProcess, dto.CreateDryProcessRequest.ToDomain)
	registerLedgerRoutes(api, "/washing", "washing", services.Washing, dto.CreateWashingRequest.ToDomain)
	registerLedgerRoutes(api, "/sub-contracts", "sub-contracts", services.SubContract, dto.CreateSubContractRequest.ToDomain)
	registerLedgerRoutes(api, "/gate-pass", "gate-pass", services.GatePass, dto.CreateGatePassRequest.ToDomain)

	registerSpecialNoteRoutes(api, services.SpecialNote)
	registerDashboardRoutes(api, services.Dashboard)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
