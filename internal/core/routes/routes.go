package routes

import (
	"os"

	"avrental/internal/core/container"
	"avrental/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func RegisterRoutes(router *gin.Engine, container *container.Container) {
	container.CatalogHandler.RegisterRoutes(router)
	container.AssetHandler.RegisterRoutes(router)
	container.QuoteHandler.RegisterRoutes(router)
	container.PrepHandler.RegisterRoutes(router)
	container.ClientHandler.RegisterRoutes(router)
	container.VenueHandler.RegisterRoutes(router)
	container.VendorHandler.RegisterRoutes(router)
	container.SubrentalHandler.RegisterRoutes(router)
	container.CostHandler.RegisterRoutes(router)
	container.AuditLogHandler.RegisterRoutes(router)
}

func RegisterUtilityRoutes(router *gin.Engine, health *middleware.Health, gatherer prometheus.Gatherer, log *zap.Logger) {
	router.GET("/health", health.Handler())
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	openapiFilePath := "./docs/index.html"
	if _, err := os.Stat(openapiFilePath); err == nil {
		router.GET("/openapi.html", func(c *gin.Context) {
			c.File(openapiFilePath)
		})
		log.Info("route registered", zap.String("path", "/openapi.html"))
	} else {
		log.Warn("openapi document not found, route not registered", zap.String("file", openapiFilePath))
	}
}
