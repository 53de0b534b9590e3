package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func Test_parentAPI_createAndList(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/parents", "t1", map[string]interface{}{
		"first_name":  "Rita",
		"last_name":   "Lee",
		"email":       "rita@example.com",
		"student_ids": []string{"s1"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Parent created", decodeMap(t, rec)["message"])

	rec = doRequest(e, http.MethodGet, "/parents", "t1", nil)
	parents := decodeList(t, rec)
	if assert.Len(t, parents, 1) {
		assert.Equal(t, []interface{}{"s1"}, parents[0]["student_ids"])
		assert.NotContains(t, parents[0], "tenant_id")
	}
}

func Test_parentAPI_emailRequired(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/parents", "t1", map[string]interface{}{
		"first_name": "Rita",
		"last_name":  "Lee",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func Test_enrollmentAPI_createDefaultsStatus(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/enrollments", "t1", map[string]interface{}{
		"student_id": primitive.NewObjectID().Hex(),
		"class_id":   primitive.NewObjectID().Hex(),
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/enrollments", "t1", nil)
	enrollments := decodeList(t, rec)
	if assert.Len(t, enrollments, 1) {
		assert.Equal(t, "enrolled", enrollments[0]["status"])
	}
}

func Test_enrollmentAPI_requiresClassID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/enrollments", "t1", map[string]interface{}{
		"student_id": primitive.NewObjectID().Hex(),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func Test_progressAPI_createAndList(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/progress", "t1", map[string]interface{}{
		"student_id": primitive.NewObjectID().Hex(),
		"metric":     "quiz",
		"score":      87.5,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/progress", "t1", nil)
	records := decodeList(t, rec)
	if assert.Len(t, records, 1) {
		assert.Equal(t, "quiz", records[0]["metric"])
		assert.Equal(t, 87.5, records[0]["score"])
	}
}

func Test_progressAPI_scoreRange(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/progress", "t1", map[string]interface{}{
		"student_id": primitive.NewObjectID().Hex(),
		"score":      120.0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func Test_progressAPI_defaultMetric(t *testing.T) {
	e, _ := newTestServer(t)

	createEntity(t, e, "/progress", "t1", map[string]interface{}{
		"student_id": primitive.NewObjectID().Hex(),
	})

	rec := doRequest(e, http.MethodGet, "/progress", "t1", nil)
	records := decodeList(t, rec)
	if assert.Len(t, records, 1) {
		assert.Equal(t, "assignment", records[0]["metric"])
	}
}
