package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSuccess(t *testing.T) {
	w := httptest.NewRecorder()

	JSONSuccess(w, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"key":"value"}}`, w.Body.String())
}

func TestJSONSuccessPage_EmptyDataIsArray(t *testing.T) {
	w := httptest.NewRecorder()

	JSONSuccessPage(w, []string{}, map[string]int{"page": 1, "limit": 10, "total": 0, "pages": 0})

	assert.JSONEq(t,
		`{"success":true,"data":[],"pagination":{"page":1,"limit":10,"total":0,"pages":0}}`,
		w.Body.String())
}

func TestJSONSuccessMessage(t *testing.T) {
	w := httptest.NewRecorder()

	JSONSuccessMessage(w, http.StatusOK, nil, "Place deleted successfully")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Place deleted successfully"}`, w.Body.String())
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	details := []ErrorDetail{
		{Field: "phone", Message: "phone is required"},
	}

	JSONError(w, http.StatusBadRequest, "Missing required fields: phone", details)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.False(t, response.Success)
	assert.Equal(t, "Missing required fields: phone", response.Error)
	assert.Nil(t, response.Data)
	assert.Len(t, response.Details, 1)
}
