package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bburrets/mdf-contract-management/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator) {
	// Probes (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Every ledger route requires a caller identity
	v1 := router.Group("/api/v1", middleware.Auth(auth))
	{
		// Static segments are registered next to :id; gin prefers them
		v1.POST("/contracts", handler.CreateContract)
		v1.GET("/contracts", handler.ListContracts)
		v1.POST("/contracts/validate", handler.ValidateContract)
		v1.GET("/contracts/export", handler.ExportContracts)
		v1.GET("/contracts/:id", handler.GetContract)
		v1.PATCH("/contracts/:id", handler.UpdateContract)
		v1.DELETE("/contracts/:id", handler.DeleteContract)
		v1.GET("/contracts/:id/validation", handler.GetContractValidation)
		v1.GET("/contracts/:id/audit", handler.GetContractAudit)

		v1.POST("/allocations", handler.CreateAllocation)
		v1.GET("/allocations", handler.ListAllocations)
		v1.GET("/allocations/utilization", handler.GetUtilization)
		v1.GET("/allocations/nearing-limit", handler.GetNearingLimit)
		v1.GET("/allocations/summary", handler.GetChannelSummary)
		v1.GET("/allocations/presets", handler.ListPresets)
		v1.POST("/allocations/reconcile", handler.ReconcileSplit)
		v1.GET("/allocations/:id", handler.GetAllocation)
		v1.PATCH("/allocations/:id", handler.UpdateAllocation)
		v1.DELETE("/allocations/:id", handler.DeleteAllocation)

		v1.GET("/audit", handler.QueryAudit)

		v1.POST("/drafts", handler.SaveDraft)
		v1.GET("/drafts/latest", handler.ResumeDraft)
		v1.POST("/drafts/cleanup", handler.CleanupDrafts)
		v1.DELETE("/drafts/:id", handler.DeleteDraft)

		v1.GET("/admin/migrations", handler.GetMigrationStatus)
		v1.POST("/admin/migrations/run", handler.RunMigrations)
	}
}
