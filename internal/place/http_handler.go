package place

import (
	"errors"
	"log"
	"net/http"

	"yellowbooks/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the place routes on mux under prefix ("" or "/api").
func (h *HTTPHandler) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("GET "+prefix+"/places", h.List)
	mux.HandleFunc("POST "+prefix+"/places", h.Create)
	mux.HandleFunc("GET "+prefix+"/places/{id}", h.Get)
	mux.HandleFunc("PUT "+prefix+"/places/{id}", h.Update)
	mux.HandleFunc("DELETE "+prefix+"/places/{id}", h.Delete)
}

// List handles GET /places
// @Summary Search places
// @Description Search listings by free text and category, newest first
// @Tags places
// @Produce json
// @Param q query string false "Text matched against name and description"
// @Param type query string false "Place type or 'all'"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Router /places [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := ParsePage(query.Get("page"), query.Get("limit"))

	result, err := h.service.Search(r.Context(), SearchParams{
		Query:    query.Get("q"),
		Category: query.Get("type"),
		Page:     page.Number,
		Limit:    page.Limit,
	})
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch places")
		return
	}

	httpx.JSONSuccessPage(w, result.Items, result.Pagination)
}

// Get handles GET /places/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch place")
		return
	}
	httpx.JSONSuccess(w, p)
}

// Create handles POST /places
// @Summary Add a place
// @Tags places
// @Accept json
// @Produce json
// @Success 201 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Router /places [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.writeDecodeError(w, err)
		return
	}

	p, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err, "Failed to create place")
		return
	}
	httpx.JSONSuccessMessage(w, http.StatusCreated, p, "Place created successfully")
}

// Update handles PUT /places/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch Patch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		h.writeDecodeError(w, err)
		return
	}

	p, err := h.service.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		h.writeError(w, r, err, "Failed to update place")
		return
	}
	httpx.JSONSuccessMessage(w, http.StatusOK, p, "Place updated successfully")
}

// Delete handles DELETE /places/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err, "Failed to delete place")
		return
	}
	httpx.JSONSuccessMessage(w, http.StatusOK, nil, "Place deleted successfully")
}

func (h *HTTPHandler) writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, httpx.ErrBodyTooLarge) {
		httpx.JSONError(w, http.StatusRequestEntityTooLarge, "Request body too large", nil)
		return
	}
	httpx.JSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		validationErr *ValidationError
		storeErr      *StoreError
	)

	switch {
	case errors.As(err, &validationErr):
		details := make([]httpx.ErrorDetail, 0, len(validationErr.Details))
		for _, d := range validationErr.Details {
			details = append(details, httpx.ErrorDetail{Field: d.Field, Message: d.Message})
		}
		httpx.JSONError(w, http.StatusBadRequest, validationErr.Message, details)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "Place not found", nil)
	default:
		log.Printf("place request failed: method=%s path=%s request_id=%s error=%v",
			r.Method, r.URL.Path, httpx.RequestIDFrom(r), err)

		message := fallback
		if errors.As(err, &storeErr) {
			if safe := storeErr.SafeMessage(); safe != "" {
				message = safe
			}
		}
		httpx.JSONError(w, http.StatusInternalServerError, message, nil)
	}
}

