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

// ListInvoices handles retrieving the tenant's fee invoices
func ListInvoices(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	limit := limitParam(c, 50)
	log.Info("Listing invoices",
		zap.String("tenant_id", tenantID),
		zap.Int64("limit", limit))

	docs, err := store.Get().Find(c.Request().Context(), model.CollInvoice,
		store.Document{"tenant_id": tenantID}, limit)
	if err != nil {
		return storeUnavailable(c, log, model.CollInvoice, err)
	}
	prometheus.IncDocumentOperation(model.CollInvoice, "find")

	log.Info("Invoices retrieved", zap.Int("count", len(docs)))
	return c.JSON(http.StatusOK, shapeDocs(docs))
}

// CreateInvoice handles creating a new fee invoice
func CreateInvoice(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	var req model.InvoiceRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid invoice payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Invoice payload failed validation", zap.Error(err))
		return schemaViolation(c, err)
	}

	log.Info("Creating invoice",
		zap.String("tenant_id", tenantID),
		zap.String("student_id", req.StudentID),
		zap.Float64("amount", req.Amount),
		zap.String("currency", req.Currency))

	id, err := store.Get().InsertOne(c.Request().Context(), model.CollInvoice, req.Document(tenantID))
	if err != nil {
		return storeUnavailable(c, log, model.CollInvoice, err)
	}
	prometheus.IncDocumentOperation(model.CollInvoice, "insert")

	log.Info("Invoice created",
		zap.String("invoice_id", id),
		zap.String("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{"id": id, "message": "Invoice created"})
}
