package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func tenantEcho() *echo.Echo {
	e := echo.New()
	e.GET("/scoped", func(c echo.Context) error {
		tenantID, _ := TenantFromContext(c)
		return c.String(http.StatusOK, tenantID)
	}, TenantMiddleware)
	return e
}

func request(e *echo.Echo, path string, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set(TenantHeader, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func Test_tenantMiddleware_header(t *testing.T) {
	rec := request(tenantEcho(), "/scoped", "t1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "t1", rec.Body.String())
}

func Test_tenantMiddleware_queryParam(t *testing.T) {
	rec := request(tenantEcho(), "/scoped?tenant_id=t2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "t2", rec.Body.String())
}

func Test_tenantMiddleware_headerWins(t *testing.T) {
	rec := request(tenantEcho(), "/scoped?tenant_id=t2", "t1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "t1", rec.Body.String())
}

func Test_tenantMiddleware_failsClosed(t *testing.T) {
	rec := request(tenantEcho(), "/scoped", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "tenant context required")
}

func Test_tenantFromContext_absent(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, ok := TenantFromContext(c)
	assert.False(t, ok)
}
