package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_classAPI_createAndList(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/classes", "t1", map[string]interface{}{
		"name": "Algebra I",
		"code": "ALG1",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Class created", decodeMap(t, rec)["message"])

	rec = doRequest(e, http.MethodGet, "/classes", "t1", nil)
	classes := decodeList(t, rec)
	if assert.Len(t, classes, 1) {
		assert.Equal(t, "ALG1", classes[0]["code"])
		assert.Equal(t, []interface{}{}, classes[0]["student_ids"])
	}
}

func Test_classAPI_codeRequired(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/classes", "t1", map[string]interface{}{
		"name": "Algebra I",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func Test_classAPI_partialUpdate(t *testing.T) {
	e, _ := newTestServer(t)

	id := createEntity(t, e, "/classes", "t1", map[string]interface{}{
		"name": "Algebra I",
		"code": "ALG1",
	})

	rec := doRequest(e, http.MethodPut, "/classes/"+id, "t1", map[string]interface{}{
		"teacher_id":  "abc123",
		"student_ids": []string{"s1", "s2"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/classes", "t1", nil)
	classes := decodeList(t, rec)
	if assert.Len(t, classes, 1) {
		assert.Equal(t, "abc123", classes[0]["teacher_id"])
		assert.Equal(t, []interface{}{"s1", "s2"}, classes[0]["student_ids"])
		assert.Equal(t, "Algebra I", classes[0]["name"])
	}
}

func Test_classAPI_updateBadID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPut, "/classes/bogus", "t1", map[string]interface{}{
		"name": "Algebra II",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
