package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/megareality/estate/internal/services"
)

type HomeContentHandler struct {
	svc services.HomeContentService
}

func NewHomeContentHandler(svc services.HomeContentService) *HomeContentHandler {
	return &HomeContentHandler{svc: svc}
}

func (h *HomeContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

// UpdateSection accepts any JSON value; objects are merged into the section.
func (h *HomeContentHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	var patch any
	if !decodeJSON(w, r, &patch) {
		return
	}
	section := chi.URLParam(r, "section")
	v, err := h.svc.UpdateSection(r.Context(), section, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Section updated successfully",
		"section": section,
		"content": v,
	})
}

func (h *HomeContentHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var content map[string]any
	if !decodeJSON(w, r, &content) {
		return
	}
	all, err := h.svc.ReplaceAll(r.Context(), content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}
