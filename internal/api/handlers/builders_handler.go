package handlers

import (
	"net/http"

	"github.com/megareality/estate/internal/services"
)

type BuildersHandler struct {
	svc services.BuilderService
}

func NewBuildersHandler(svc services.BuilderService) *BuildersHandler {
	return &BuildersHandler{svc: svc}
}

func (h *BuildersHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *BuildersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Builder")
	if !ok {
		return
	}
	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BuildersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.BuilderInput
	if !decodeJSON(w, r, &in) {
		return
	}
	b, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *BuildersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Builder")
	if !ok {
		return
	}
	var in services.BuilderInput
	if !decodeJSON(w, r, &in) {
		return
	}
	b, err := h.svc.Update(r.Context(), id, &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// Delete leaves properties and projects pointing at the builder untouched;
// their builder_name reads back empty afterwards.
func (h *BuildersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Builder")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Builder deleted successfully")
}
