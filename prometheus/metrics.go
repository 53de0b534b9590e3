package prometheus

import (
	"edutrack-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Tenant context metrics
	TenantContextMissingCounter prometheus.Counter

	// Document store operation metrics
	DocumentOperationsCounter *prometheus.CounterVec
	StoreErrorsCounter        *prometheus.CounterVec

	// Best-effort invoice update metrics
	InvoiceMarkPaidCounter *prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Tenant context metrics
	TenantContextMissingCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_tenant_context_missing_total",
			Help: "Total number of requests rejected for a missing tenant id",
		},
	)

	// Document store operation metrics
	DocumentOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_document_operations_total",
			Help: "Total number of document store operations by collection and operation",
		},
		[]string{"collection", "operation"},
	)

	StoreErrorsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_store_errors_total",
			Help: "Total number of document store errors by collection",
		},
		[]string{"collection"},
	)

	// Best-effort invoice update metrics
	InvoiceMarkPaidCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_invoice_mark_paid_total",
			Help: "Outcomes of the best-effort invoice status update after payment creation",
		},
		[]string{"outcome"},
	)
}

// IncDocumentOperation records a store operation. No-op before InitMetrics,
// so handlers stay usable under test without metric registration.
func IncDocumentOperation(collection, operation string) {
	if DocumentOperationsCounter != nil {
		DocumentOperationsCounter.WithLabelValues(collection, operation).Inc()
	}
}

// IncStoreError records a store-layer failure for a collection.
func IncStoreError(collection string) {
	if StoreErrorsCounter != nil {
		StoreErrorsCounter.WithLabelValues(collection).Inc()
	}
}

// IncInvoiceMarkPaid records the outcome of the best-effort invoice update.
func IncInvoiceMarkPaid(outcome string) {
	if InvoiceMarkPaidCounter != nil {
		InvoiceMarkPaidCounter.WithLabelValues(outcome).Inc()
	}
}
