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

// ListParents handles retrieving the tenant's parents
func ListParents(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	limit := limitParam(c, 50)
	log.Info("Listing parents",
		zap.String("tenant_id", tenantID),
		zap.Int64("limit", limit))

	docs, err := store.Get().Find(c.Request().Context(), model.CollParent,
		store.Document{"tenant_id": tenantID}, limit)
	if err != nil {
		return storeUnavailable(c, log, model.CollParent, err)
	}
	prometheus.IncDocumentOperation(model.CollParent, "find")

	log.Info("Parents retrieved", zap.Int("count", len(docs)))
	return c.JSON(http.StatusOK, shapeDocs(docs))
}

// CreateParent handles creating a new parent
func CreateParent(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	var req model.ParentRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid parent payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Parent payload failed validation", zap.Error(err))
		return schemaViolation(c, err)
	}

	log.Info("Creating parent",
		zap.String("tenant_id", tenantID),
		zap.String("email", req.Email))

	id, err := store.Get().InsertOne(c.Request().Context(), model.CollParent, req.Document(tenantID))
	if err != nil {
		return storeUnavailable(c, log, model.CollParent, err)
	}
	prometheus.IncDocumentOperation(model.CollParent, "insert")

	log.Info("Parent created",
		zap.String("parent_id", id),
		zap.String("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{"id": id, "message": "Parent created"})
}
