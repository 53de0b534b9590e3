package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	mid "edutrack-service/internal/middleware"
	"edutrack-service/internal/store"
	"edutrack-service/pkg/validate"

	"github.com/labstack/echo/v4"
)

// newTestServer wires the entity routes against a fresh in-memory store,
// mirroring the route layout of cmd/main.go.
func newTestServer(t *testing.T) (*echo.Echo, *store.MemoryStore) {
	t.Helper()

	mem := store.NewMemoryStore()
	store.Set(mem)
	t.Cleanup(func() { store.Set(nil) })

	e := echo.New()
	e.Validator = validate.New()

	e.GET("/", Root)
	e.GET("/health", Health)
	e.GET("/test", TestStore)

	api := e.Group("", mid.TenantMiddleware)
	api.GET("/students", ListStudents)
	api.POST("/students", CreateStudent)
	api.PUT("/students/:id", UpdateStudent)
	api.DELETE("/students/:id", DeleteStudent)
	api.GET("/teachers", ListTeachers)
	api.POST("/teachers", CreateTeacher)
	api.PUT("/teachers/:id", UpdateTeacher)
	api.GET("/classes", ListClasses)
	api.POST("/classes", CreateClass)
	api.PUT("/classes/:id", UpdateClass)
	api.GET("/announcements", ListAnnouncements)
	api.POST("/announcements", CreateAnnouncement)
	api.GET("/invoices", ListInvoices)
	api.POST("/invoices", CreateInvoice)
	api.GET("/payments", ListPayments)
	api.POST("/payments", CreatePayment)
	api.GET("/parents", ListParents)
	api.POST("/parents", CreateParent)
	api.GET("/enrollments", ListEnrollments)
	api.POST("/enrollments", CreateEnrollment)
	api.GET("/progress", ListProgress)
	api.POST("/progress", CreateProgress)

	return e, mem
}

// doRequest performs a request against the test server. An empty tenant
// leaves the tenant header off entirely.
func doRequest(e *echo.Echo, method, path, tenant string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if tenant != "" {
		req.Header.Set("x-tenant-id", tenant)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return out
}

// createEntity posts a payload and returns the assigned id.
func createEntity(t *testing.T, e *echo.Echo, path, tenant string, body interface{}) string {
	t.Helper()
	rec := doRequest(e, http.MethodPost, path, tenant, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("creating entity at %s: got status %d, body %s", path, rec.Code, rec.Body.String())
	}
	id, _ := decodeMap(t, rec)["id"].(string)
	if id == "" {
		t.Fatalf("creating entity at %s: no id in response %s", path, rec.Body.String())
	}
	return id
}
