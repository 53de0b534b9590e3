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

// ListAnnouncements handles retrieving the tenant's announcements
func ListAnnouncements(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	limit := limitParam(c, 20)
	log.Info("Listing announcements",
		zap.String("tenant_id", tenantID),
		zap.Int64("limit", limit))

	docs, err := store.Get().Find(c.Request().Context(), model.CollAnnouncement,
		store.Document{"tenant_id": tenantID}, limit)
	if err != nil {
		return storeUnavailable(c, log, model.CollAnnouncement, err)
	}
	prometheus.IncDocumentOperation(model.CollAnnouncement, "find")

	log.Info("Announcements retrieved", zap.Int("count", len(docs)))
	return c.JSON(http.StatusOK, shapeDocs(docs))
}

// CreateAnnouncement handles creating a new announcement
func CreateAnnouncement(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	var req model.AnnouncementRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid announcement payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Announcement payload failed validation", zap.Error(err))
		return schemaViolation(c, err)
	}

	log.Info("Creating announcement",
		zap.String("tenant_id", tenantID),
		zap.String("title", req.Title),
		zap.String("audience", req.Audience))

	id, err := store.Get().InsertOne(c.Request().Context(), model.CollAnnouncement, req.Document(tenantID))
	if err != nil {
		return storeUnavailable(c, log, model.CollAnnouncement, err)
	}
	prometheus.IncDocumentOperation(model.CollAnnouncement, "insert")

	log.Info("Announcement created",
		zap.String("announcement_id", id),
		zap.String("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{"id": id, "message": "Announcement created"})
}
