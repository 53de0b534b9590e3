package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_teacherAPI_createAndList(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/teachers", "t1", map[string]interface{}{
		"first_name": "Maya",
		"last_name":  "Osei",
		"email":      "maya@school.example",
		"subject":    "Math",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Teacher created", decodeMap(t, rec)["message"])

	rec = doRequest(e, http.MethodGet, "/teachers", "t1", nil)
	teachers := decodeList(t, rec)
	if assert.Len(t, teachers, 1) {
		assert.Equal(t, "Math", teachers[0]["subject"])
		assert.Equal(t, false, teachers[0]["is_admin"])
		assert.NotContains(t, teachers[0], "tenant_id")
	}
}

func Test_teacherAPI_emailRequired(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/teachers", "t1", map[string]interface{}{
		"first_name": "Maya",
		"last_name":  "Osei",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doRequest(e, http.MethodPost, "/teachers", "t1", map[string]interface{}{
		"first_name": "Maya",
		"last_name":  "Osei",
		"email":      "not-an-email",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func Test_teacherAPI_partialUpdate(t *testing.T) {
	e, _ := newTestServer(t)

	id := createEntity(t, e, "/teachers", "t1", map[string]interface{}{
		"first_name": "Maya",
		"last_name":  "Osei",
		"email":      "maya@school.example",
		"subject":    "Math",
	})

	rec := doRequest(e, http.MethodPut, "/teachers/"+id, "t1", map[string]interface{}{
		"subject":  "Physics",
		"is_admin": true,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/teachers", "t1", nil)
	teachers := decodeList(t, rec)
	if assert.Len(t, teachers, 1) {
		assert.Equal(t, "Physics", teachers[0]["subject"])
		assert.Equal(t, true, teachers[0]["is_admin"])
		assert.Equal(t, "maya@school.example", teachers[0]["email"])
	}
}

func Test_teacherAPI_updateCrossTenant(t *testing.T) {
	e, _ := newTestServer(t)

	id := createEntity(t, e, "/teachers", "t1", map[string]interface{}{
		"first_name": "Maya",
		"last_name":  "Osei",
		"email":      "maya@school.example",
	})

	rec := doRequest(e, http.MethodPut, "/teachers/"+id, "t2", map[string]interface{}{
		"subject": "Physics",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
