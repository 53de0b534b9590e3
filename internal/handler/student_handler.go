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

// ListStudents handles retrieving the tenant's students
func ListStudents(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	limit := limitParam(c, 50)
	log.Info("Listing students",
		zap.String("tenant_id", tenantID),
		zap.Int64("limit", limit))

	docs, err := store.Get().Find(c.Request().Context(), model.CollStudent,
		store.Document{"tenant_id": tenantID}, limit)
	if err != nil {
		return storeUnavailable(c, log, model.CollStudent, err)
	}
	prometheus.IncDocumentOperation(model.CollStudent, "find")

	log.Info("Students retrieved", zap.Int("count", len(docs)))
	return c.JSON(http.StatusOK, shapeDocs(docs))
}

// CreateStudent handles creating a new student
func CreateStudent(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	var req model.StudentRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid student payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Student payload failed validation", zap.Error(err))
		return schemaViolation(c, err)
	}

	log.Info("Creating student",
		zap.String("tenant_id", tenantID),
		zap.String("first_name", req.FirstName),
		zap.String("last_name", req.LastName))

	id, err := store.Get().InsertOne(c.Request().Context(), model.CollStudent, req.Document(tenantID))
	if err != nil {
		return storeUnavailable(c, log, model.CollStudent, err)
	}
	prometheus.IncDocumentOperation(model.CollStudent, "insert")

	log.Info("Student created",
		zap.String("student_id", id),
		zap.String("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{"id": id, "message": "Student created"})
}

// UpdateStudent handles partial updates of an existing student
func UpdateStudent(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	rawID := c.Param("id")
	oid, err := store.ParseID(rawID)
	if err != nil {
		log.Warn("Invalid student id", zap.String("student_id", rawID), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid student id"})
	}

	var req model.StudentUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid student update payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Student update failed validation", zap.Error(err))
		return schemaViolation(c, err)
	}

	fields := req.Fields()
	if len(fields) == 0 {
		log.Warn("Student update carries no fields", zap.String("student_id", rawID))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no updatable fields provided"})
	}

	log.Info("Updating student",
		zap.String("student_id", rawID),
		zap.String("tenant_id", tenantID),
		zap.Int("fields", len(fields)))

	// Scoped by id and tenant: a valid id belonging to another tenant
	// matches nothing and reads as not found.
	matched, err := store.Get().UpdateOne(c.Request().Context(), model.CollStudent,
		store.Document{"_id": oid, "tenant_id": tenantID},
		store.Document{"$set": fields})
	if err != nil {
		return storeUnavailable(c, log, model.CollStudent, err)
	}
	prometheus.IncDocumentOperation(model.CollStudent, "update")

	if matched == 0 {
		log.Warn("Student not found for update",
			zap.String("student_id", rawID),
			zap.String("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "student not found"})
	}

	log.Info("Student updated", zap.String("student_id", rawID))
	return c.JSON(http.StatusOK, echo.Map{"id": rawID, "updated": true})
}

// DeleteStudent handles permanently deleting a student
func DeleteStudent(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	rawID := c.Param("id")
	oid, err := store.ParseID(rawID)
	if err != nil {
		log.Warn("Invalid student id", zap.String("student_id", rawID), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid student id"})
	}

	log.Info("Deleting student",
		zap.String("student_id", rawID),
		zap.String("tenant_id", tenantID))

	deleted, err := store.Get().DeleteOne(c.Request().Context(), model.CollStudent,
		store.Document{"_id": oid, "tenant_id": tenantID})
	if err != nil {
		return storeUnavailable(c, log, model.CollStudent, err)
	}
	prometheus.IncDocumentOperation(model.CollStudent, "delete")

	if deleted == 0 {
		log.Warn("Student not found for deletion",
			zap.String("student_id", rawID),
			zap.String("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "student not found"})
	}

	log.Info("Student deleted", zap.String("student_id", rawID))
	return c.JSON(http.StatusOK, echo.Map{"id": rawID, "deleted": true})
}
