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

// ListTeachers handles retrieving the tenant's teachers
func ListTeachers(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	limit := limitParam(c, 50)
	log.Info("Listing teachers",
		zap.String("tenant_id", tenantID),
		zap.Int64("limit", limit))

	docs, err := store.Get().Find(c.Request().Context(), model.CollTeacher,
		store.Document{"tenant_id": tenantID}, limit)
	if err != nil {
		return storeUnavailable(c, log, model.CollTeacher, err)
	}
	prometheus.IncDocumentOperation(model.CollTeacher, "find")

	log.Info("Teachers retrieved", zap.Int("count", len(docs)))
	return c.JSON(http.StatusOK, shapeDocs(docs))
}

// CreateTeacher handles creating a new teacher
func CreateTeacher(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	var req model.TeacherRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid teacher payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Teacher payload failed validation", zap.Error(err))
		return schemaViolation(c, err)
	}

	log.Info("Creating teacher",
		zap.String("tenant_id", tenantID),
		zap.String("email", req.Email),
		zap.Bool("is_admin", req.IsAdmin))

	id, err := store.Get().InsertOne(c.Request().Context(), model.CollTeacher, req.Document(tenantID))
	if err != nil {
		return storeUnavailable(c, log, model.CollTeacher, err)
	}
	prometheus.IncDocumentOperation(model.CollTeacher, "insert")

	log.Info("Teacher created",
		zap.String("teacher_id", id),
		zap.String("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{"id": id, "message": "Teacher created"})
}

// UpdateTeacher handles partial updates of an existing teacher
func UpdateTeacher(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	rawID := c.Param("id")
	oid, err := store.ParseID(rawID)
	if err != nil {
		log.Warn("Invalid teacher id", zap.String("teacher_id", rawID), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid teacher id"})
	}

	var req model.TeacherUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid teacher update payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Teacher update failed validation", zap.Error(err))
		return schemaViolation(c, err)
	}

	fields := req.Fields()
	if len(fields) == 0 {
		log.Warn("Teacher update carries no fields", zap.String("teacher_id", rawID))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no updatable fields provided"})
	}

	log.Info("Updating teacher",
		zap.String("teacher_id", rawID),
		zap.String("tenant_id", tenantID),
		zap.Int("fields", len(fields)))

	matched, err := store.Get().UpdateOne(c.Request().Context(), model.CollTeacher,
		store.Document{"_id": oid, "tenant_id": tenantID},
		store.Document{"$set": fields})
	if err != nil {
		return storeUnavailable(c, log, model.CollTeacher, err)
	}
	prometheus.IncDocumentOperation(model.CollTeacher, "update")

	if matched == 0 {
		log.Warn("Teacher not found for update",
			zap.String("teacher_id", rawID),
			zap.String("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "teacher not found"})
	}

	log.Info("Teacher updated", zap.String("teacher_id", rawID))
	return c.JSON(http.StatusOK, echo.Map{"id": rawID, "updated": true})
}
