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

// ListClasses handles retrieving the tenant's classes
func ListClasses(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	limit := limitParam(c, 50)
	log.Info("Listing classes",
		zap.String("tenant_id", tenantID),
		zap.Int64("limit", limit))

	docs, err := store.Get().Find(c.Request().Context(), model.CollClass,
		store.Document{"tenant_id": tenantID}, limit)
	if err != nil {
		return storeUnavailable(c, log, model.CollClass, err)
	}
	prometheus.IncDocumentOperation(model.CollClass, "find")

	log.Info("Classes retrieved", zap.Int("count", len(docs)))
	return c.JSON(http.StatusOK, shapeDocs(docs))
}

// CreateClass handles creating a new class
func CreateClass(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	var req model.ClassRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid class payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Class payload failed validation", zap.Error(err))
		return schemaViolation(c, err)
	}

	log.Info("Creating class",
		zap.String("tenant_id", tenantID),
		zap.String("name", req.Name),
		zap.String("code", req.Code))

	id, err := store.Get().InsertOne(c.Request().Context(), model.CollClass, req.Document(tenantID))
	if err != nil {
		return storeUnavailable(c, log, model.CollClass, err)
	}
	prometheus.IncDocumentOperation(model.CollClass, "insert")

	log.Info("Class created",
		zap.String("class_id", id),
		zap.String("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{"id": id, "message": "Class created"})
}

// UpdateClass handles partial updates of an existing class
func UpdateClass(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	rawID := c.Param("id")
	oid, err := store.ParseID(rawID)
	if err != nil {
		log.Warn("Invalid class id", zap.String("class_id", rawID), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid class id"})
	}

	var req model.ClassUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid class update payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Class update failed validation", zap.Error(err))
		return schemaViolation(c, err)
	}

	fields := req.Fields()
	if len(fields) == 0 {
		log.Warn("Class update carries no fields", zap.String("class_id", rawID))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no updatable fields provided"})
	}

	log.Info("Updating class",
		zap.String("class_id", rawID),
		zap.String("tenant_id", tenantID),
		zap.Int("fields", len(fields)))

	matched, err := store.Get().UpdateOne(c.Request().Context(), model.CollClass,
		store.Document{"_id": oid, "tenant_id": tenantID},
		store.Document{"$set": fields})
	if err != nil {
		return storeUnavailable(c, log, model.CollClass, err)
	}
	prometheus.IncDocumentOperation(model.CollClass, "update")

	if matched == 0 {
		log.Warn("Class not found for update",
			zap.String("class_id", rawID),
			zap.String("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "class not found"})
	}

	log.Info("Class updated", zap.String("class_id", rawID))
	return c.JSON(http.StatusOK, echo.Map{"id": rawID, "updated": true})
}
