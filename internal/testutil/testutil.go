package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewRequest creates a new HTTP request for testing. A string body is sent
// verbatim; anything else is JSON encoded.
func NewRequest(method, path string, body interface{}) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		bodyBytes, _ := json.Marshal(b)
		reader = bytes.NewReader(bodyBytes)
	}

	r := httptest.NewRequest(method, path, reader)
	if reader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

// RecordResponse is a decoded HTTP response.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes the recorded response body as a JSON object.
func RecordHTTPResponse(t testing.TB, w *httptest.ResponseRecorder) RecordResponse {
	t.Helper()

	result := w.Result()
	defer result.Body.Close()

	bodyBytes, err := io.ReadAll(result.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, &bodyMap); err != nil {
			t.Fatalf("decode response body %q: %v", bodyBytes, err)
		}
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// DecodeData re-decodes the envelope's data field into dst.
func (rr RecordResponse) DecodeData(t testing.TB, dst interface{}) {
	t.Helper()

	raw, err := json.Marshal(rr.Body["data"])
	if err != nil {
		t.Fatalf("encode data: %v", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t testing.TB, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertResponseBody checks if the response body contains expected field
func AssertResponseBody(t testing.TB, body map[string]interface{}, key string, expectedValue interface{}) {
	t.Helper()
	value, ok := body[key]
	if !ok {
		t.Errorf("response body missing key %q", key)
		return
	}
	if value != expectedValue {
		t.Errorf("got %v for key %q, want %v", value, key, expectedValue)
	}
}
