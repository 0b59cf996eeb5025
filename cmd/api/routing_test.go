package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"yellowbooks/internal/place"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newTestRouter(t *testing.T, db pinger) (*http.ServeMux, *place.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := place.NewMockRepository(ctrl)
	return newRouter(db, place.NewHTTPHandler(place.NewService(repo))), repo
}

func TestRouting_PlacesUnderBothPrefixes(t *testing.T) {
	for _, path := range []string{"/places", "/api/places"} {
		t.Run(path, func(t *testing.T) {
			router, repo := newTestRouter(t, fakePinger{})
			repo.EXPECT().Find(gomock.Any(), place.MatchAll{}, gomock.Any()).Return([]place.Place{}, nil)
			repo.EXPECT().Count(gomock.Any(), place.MatchAll{}).Return(0, nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"success":true`)
		})
	}
}

func TestRouting_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t, fakePinger{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/places", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouting_UnknownPath(t *testing.T) {
	router, _ := newTestRouter(t, fakePinger{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouting_Health(t *testing.T) {
	router, _ := newTestRouter(t, fakePinger{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRouting_Ready(t *testing.T) {
	t.Run("db up", func(t *testing.T) {
		router, _ := newTestRouter(t, fakePinger{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("db down", func(t *testing.T) {
		router, _ := newTestRouter(t, fakePinger{err: errors.New("connection refused")})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
