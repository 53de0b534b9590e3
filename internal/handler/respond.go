package handler

import (
	"net/http"
	"strconv"

	"edutrack-service/internal/store"
	"edutrack-service/pkg/validate"
	"edutrack-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// maxErrDetail caps how much of a store error leaks into a response body.
const maxErrDetail = 120

// shapeDoc normalizes a stored document for a response: the internal
// identifier field becomes a public string `id`, and the tenant scope field
// is stripped. Nil in, nil out; already-shaped documents pass unchanged.
func shapeDoc(doc store.Document) store.Document {
	if doc == nil {
		return nil
	}
	shaped := make(store.Document, len(doc))
	for k, v := range doc {
		switch k {
		case "_id":
			shaped["id"] = store.FormatID(v)
		case "tenant_id":
			// never exposed
		default:
			shaped[k] = v
		}
	}
	return shaped
}

// shapeDocs shapes a list result. An empty result stays an empty array.
func shapeDocs(docs []store.Document) []store.Document {
	shaped := make([]store.Document, 0, len(docs))
	for _, doc := range docs {
		shaped = append(shaped, shapeDoc(doc))
	}
	return shaped
}

// limitParam reads the result-count limit from the query string.
func limitParam(c echo.Context, fallback int64) int64 {
	raw := c.QueryParam("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}

// storeUnavailable maps any unexpected store-layer error to a uniform 503.
// The original error type is discarded; only a truncated message survives.
func storeUnavailable(c echo.Context, log *zap.Logger, collection string, err error) error {
	log.Error("Document store unavailable",
		zap.String("collection", collection),
		zap.Error(err))
	prometheus.IncStoreError(collection)
	return c.JSON(http.StatusServiceUnavailable, echo.Map{
		"error": "Database unavailable: " + truncated(err),
	})
}

func truncated(err error) string {
	msg := err.Error()
	if len(msg) > maxErrDetail {
		return msg[:maxErrDetail]
	}
	return msg
}

// schemaViolation maps a validation failure to a 422 response. Bind errors
// stay 400; this path is for payloads that parsed but violate the schema.
func schemaViolation(c echo.Context, err error) error {
	if validate.IsValidationErrors(err) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
}
