package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name  string `json:"name"`
	Count *int   `json:"count"`
}

func TestDecodeJSON(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"name":"Номин","count":2}`, ""},
		{"unknown field", `{"name":"x","color":"red"}`, `unknown field "color"`},
		{"mistyped field", `{"name":5}`, "field name must be of type string"},
		{"not an object", `[1,2]`, "request body must be a JSON object"},
		{"malformed", `{"name":`, "malformed JSON"},
		{"empty", ``, "request body is empty"},
		{"trailing data", `{"name":"x"}{"name":"y"}`, "single JSON object"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/places", strings.NewReader(tc.body))

			var dst decodeTarget
			err := DecodeJSON(r, &dst)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Номин", dst.Name)
				require.NotNil(t, dst.Count)
				assert.Equal(t, 2, *dst.Count)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/places", strings.NewReader(`{"name":"`+strings.Repeat("a", 100)+`"}`))
	r.ContentLength = -1
	r.Body = http.MaxBytesReader(w, r.Body, 16)

	var dst decodeTarget
	err := DecodeJSON(r, &dst)

	assert.ErrorIs(t, err, ErrBodyTooLarge)
}
