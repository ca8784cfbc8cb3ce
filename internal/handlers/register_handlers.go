package handlers

import (
	"github.com/SscSPs/procurement_accounting_app/cmd/docs"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/SscSPs/procurement_accounting_app/internal/platform/config"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

const apiBasePath = "/api/v1"

// Role groups guarding the API.
var (
	writeRoles     = []domain.Role{domain.RoleAdmin, domain.RoleManager}
	readRoles      = []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleMember}
	userAdminRoles = []domain.Role{domain.RoleOwner, domain.RoleAdmin}
	dashboardRoles = []domain.Role{domain.RoleOwner, domain.RoleAdmin, domain.RoleManager, domain.RoleMember}
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.GET("/health", getHealth)

	if cfg.UploadsDir != "" {
		r.Static("/uploads", cfg.UploadsDir)
	}

	setupAPIV1Routes(r, services, loginLimiter, posthogClient)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group(apiBasePath, middleware.PosthogMiddleware(posthogClient))

	// Login, registration and token refresh carry their own guards.
	registerAuthRoutes(v1, services.Auth, loginLimiter, posthogClient)

	protected := v1.Group("", middleware.AuthGuard(services.Auth))
	registerUserRoutes(protected, services.User)
	registerJournalEntryRoutes(protected, services.JournalEntry)
	registerGeneralLedgerRoutes(protected, services.GeneralLedger)
	registerChartOfAccountsRoutes(protected, services.ChartOfAccounts)
	registerPurchaseRequestRoutes(protected, services.PurchaseRequest)
	registerPurchaseOrderRoutes(protected, services.PurchaseOrder)
	registerReceivingRoutes(protected, services.Receiving)
	registerInvoiceRoutes(protected, services.Invoice)
	registerPaymentVoucherRoutes(protected, services.PaymentVoucher)
	registerDashboardRoutes(protected, services.Dashboard)
	registerFileUploadRoutes(protected, services.File)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = apiBasePath

	swagger := r.Group("/swagger")
	if cfg.SwaggerUsername != "" && cfg.SwaggerPassword != "" {
		swagger.Use(gin.BasicAuth(gin.Accounts{cfg.SwaggerUsername: cfg.SwaggerPassword}))
	}
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
