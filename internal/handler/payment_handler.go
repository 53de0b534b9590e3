package handler

import (
	"context"
	"net/http"

	mid "edutrack-service/internal/middleware"
	"edutrack-service/internal/model"
	"edutrack-service/internal/store"
	"edutrack-service/pkg/logger"
	"edutrack-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListPayments handles retrieving the tenant's payments
func ListPayments(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	limit := limitParam(c, 50)
	log.Info("Listing payments",
		zap.String("tenant_id", tenantID),
		zap.Int64("limit", limit))

	docs, err := store.Get().Find(c.Request().Context(), model.CollPayment,
		store.Document{"tenant_id": tenantID}, limit)
	if err != nil {
		return storeUnavailable(c, log, model.CollPayment, err)
	}
	prometheus.IncDocumentOperation(model.CollPayment, "find")

	log.Info("Payments retrieved", zap.Int("count", len(docs)))
	return c.JSON(http.StatusOK, shapeDocs(docs))
}

// CreatePayment handles recording a new payment. After the payment is
// stored, the referenced invoice is nudged to "paid" on a best-effort
// basis; recording the payment never fails because of an invoice-side
// problem.
func CreatePayment(c echo.Context) error {
	log := logger.FromEcho(c)

	tenantID, ok := mid.TenantFromContext(c)
	if !ok {
		log.Error("Tenant id missing from request context")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant context required"})
	}

	var req model.PaymentRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid payment payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Payment payload failed validation", zap.Error(err))
		return schemaViolation(c, err)
	}

	log.Info("Recording payment",
		zap.String("tenant_id", tenantID),
		zap.String("invoice_id", req.InvoiceID),
		zap.Float64("amount", req.Amount),
		zap.String("method", req.Method))

	id, err := store.Get().InsertOne(c.Request().Context(), model.CollPayment, req.Document(tenantID))
	if err != nil {
		return storeUnavailable(c, log, model.CollPayment, err)
	}
	prometheus.IncDocumentOperation(model.CollPayment, "insert")

	markInvoicePaidBestEffort(c.Request().Context(), log, req.InvoiceID)

	log.Info("Payment recorded",
		zap.String("payment_id", id),
		zap.String("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{"id": id, "message": "Payment recorded"})
}

// markInvoicePaidBestEffort sets the referenced invoice's status to "paid".
// Every failure here is deliberately swallowed: an unresolvable or malformed
// invoice reference must not fail the payment that was already recorded.
// The lookup is by id alone, with no tenant or amount check.
func markInvoicePaidBestEffort(ctx context.Context, log *zap.Logger, invoiceID string) {
	oid, err := store.ParseID(invoiceID)
	if err != nil {
		log.Warn("Skipping invoice status update, malformed invoice id",
			zap.String("invoice_id", invoiceID))
		prometheus.IncInvoiceMarkPaid("malformed_id")
		return
	}

	matched, err := store.Get().UpdateOne(ctx, model.CollInvoice,
		store.Document{"_id": oid},
		store.Document{"$set": store.Document{"status": "paid"}})
	if err != nil {
		log.Warn("Invoice status update failed",
			zap.String("invoice_id", invoiceID),
			zap.Error(err))
		prometheus.IncInvoiceMarkPaid("store_error")
		return
	}
	if matched == 0 {
		log.Warn("Invoice not found for status update",
			zap.String("invoice_id", invoiceID))
		prometheus.IncInvoiceMarkPaid("not_found")
		return
	}

	log.Info("Invoice marked paid", zap.String("invoice_id", invoiceID))
	prometheus.IncInvoiceMarkPaid("ok")
}
