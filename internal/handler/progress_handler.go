package handler

import (
	"net/http"

	mid "edutrack-service/internal/middleware"
	"edutrack-service/internal/model"
	"edutrack-service/internal/store"
	"edutrack-service/pkg/logger"
	"edutrack-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListProgress handles retrieving the tenant's progress records
func ListProgress(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	limit := limitParam(c, 50)
	log.Info("Listing progress records",
		zap.String("tenant_id", tenantID),
		zap.Int64("limit", limit))

	docs, err := store.Get().Find(c.Request().Context(), model.CollProgress,
		store.Document{"tenant_id": tenantID}, limit)
	if err != nil {
		return storeUnavailable(c, log, model.CollProgress, err)
	}
	prometheus.IncDocumentOperation(model.CollProgress, "find")

	log.Info("Progress records retrieved", zap.Int("count", len(docs)))
	return c.JSON(http.StatusOK, shapeDocs(docs))
}

// CreateProgress handles recording a progress entry for a student
func CreateProgress(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	var req model.ProgressRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid progress payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Progress payload failed validation", zap.Error(err))
		return schemaViolation(c, err)
	}

	log.Info("Recording progress",
		zap.String("tenant_id", tenantID),
		zap.String("student_id", req.StudentID),
		zap.String("metric", defaultMetric(req.Metric)))

	id, err := store.Get().InsertOne(c.Request().Context(), model.CollProgress, req.Document(tenantID))
	if err != nil {
		return storeUnavailable(c, log, model.CollProgress, err)
	}
	prometheus.IncDocumentOperation(model.CollProgress, "insert")

	log.Info("Progress recorded",
		zap.String("progress_id", id),
		zap.String("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{"id": id, "message": "Progress recorded"})
}

func defaultMetric(metric string) string {
	if metric == "" {
		return "assignment"
	}
	return metric
}
