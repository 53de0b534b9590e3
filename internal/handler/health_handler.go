package handler

import (
	"net/http"

	"edutrack-service/internal/store"
	"edutrack-service/pkg/config"
	"edutrack-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Root is the liveness endpoint
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "EduTrack backend is running",
	})
}

// Health handles the health check endpoint
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"service": "edutrack-service",
	})
}

// TestStore reports document store connectivity. It degrades gracefully and
// never returns an error status: every failure mode is folded into the body.
func TestStore(c echo.Context) error {
	log := logger.FromEcho(c)

	response := echo.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}
	if config.DatabaseURLSet() {
		response["database_url"] = "✅ Set"
	}
	if config.DatabaseNameSet() {
		response["database_name"] = "✅ Set"
	}

	if !store.Connected() {
		return c.JSON(http.StatusOK, response)
	}
	s := store.Get()

	ctx := c.Request().Context()
	if err := s.Ping(ctx); err != nil {
		log.Warn("Store ping failed", zap.Error(err))
		response["database"] = "❌ Error: " + truncated(err)
		return c.JSON(http.StatusOK, response)
	}
	response["database"] = "✅ Available"
	response["connection_status"] = "Connected"

	collections, err := s.ListCollectionNames(ctx)
	if err != nil {
		log.Warn("Listing collections failed", zap.Error(err))
		response["database"] = "⚠️ Connected but Error: " + truncated(err)
		return c.JSON(http.StatusOK, response)
	}
	if len(collections) > 10 {
		collections = collections[:10]
	}
	response["collections"] = collections
	response["database"] = "✅ Connected & Working"

	return c.JSON(http.StatusOK, response)
}
