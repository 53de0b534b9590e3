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

// ListEnrollments handles retrieving the tenant's enrollments
func ListEnrollments(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	limit := limitParam(c, 50)
	log.Info("Listing enrollments",
		zap.String("tenant_id", tenantID),
		zap.Int64("limit", limit))

	docs, err := store.Get().Find(c.Request().Context(), model.CollEnrollment,
		store.Document{"tenant_id": tenantID}, limit)
	if err != nil {
		return storeUnavailable(c, log, model.CollEnrollment, err)
	}
	prometheus.IncDocumentOperation(model.CollEnrollment, "find")

	log.Info("Enrollments retrieved", zap.Int("count", len(docs)))
	return c.JSON(http.StatusOK, shapeDocs(docs))
}

// CreateEnrollment handles enrolling a student into a class
func CreateEnrollment(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	var req model.EnrollmentRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid enrollment payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Enrollment payload failed validation", zap.Error(err))
		return schemaViolation(c, err)
	}

	log.Info("Creating enrollment",
		zap.String("tenant_id", tenantID),
		zap.String("student_id", req.StudentID),
		zap.String("class_id", req.ClassID))

	id, err := store.Get().InsertOne(c.Request().Context(), model.CollEnrollment, req.Document(tenantID))
	if err != nil {
		return storeUnavailable(c, log, model.CollEnrollment, err)
	}
	prometheus.IncDocumentOperation(model.CollEnrollment, "insert")

	log.Info("Enrollment created",
		zap.String("enrollment_id", id),
		zap.String("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{"id": id, "message": "Enrollment created"})
}
