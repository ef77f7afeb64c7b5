package routers

import (
	"cfs-service/internal/app/config"
	"cfs-service/internal/app/delivery/http/controllers"
	"cfs-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

const resourceExportPublish = "export-publish"

func attachExportRoutes(router chi.Router, internalConfig *config.InternalConfig, m *middlewares.Middlewares, exportController *controllers.ExportController) {
	exportConfig := internalConfig.Export

	perDownload := time.Minute
	if exportConfig.DownloadsPerMinute > 0 {
		perDownload = time.Minute / time.Duration(exportConfig.DownloadsPerMinute)
	}
	burst := exportConfig.DownloadBurst
	if burst <= 0 {
		burst = 1
	}
	downloadLimiter := middlewares.NewRateLimiter(m.Log, burst, perDownload, time.Duration(exportConfig.BlockTimeInSeconds)*time.Second)

	router.With(downloadLimiter.Limit).Get("/export", exportController.Download)
	router.With(
		m.RequireAPIKey,
		m.ResourceQuota(resourceExportPublish, exportConfig.PublishQuotaPerHour, time.Hour),
	).Post("/export", exportController.Publish)
}
