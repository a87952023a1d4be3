package handlers

import (
	"net/http"

	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/internal/services"
)

type ProjectsHandler struct {
	svc services.ProjectService
}

func NewProjectsHandler(svc services.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{svc: svc}
}

func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.svc.List(r.Context(), repository.ProjectFilter{
		Status:   q.Get("status"),
		Tag:      q.Get("tag"),
		Location: q.Get("location"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Project")
	if !ok {
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	p, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Project")
	if !ok {
		return
	}
	var in services.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	p, err := h.svc.Update(r.Context(), id, &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Project")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Project deleted successfully")
}

func (h *ProjectsHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Project")
	if !ok {
		return
	}
	fav, ok := decodeFavorite(w, r)
	if !ok {
		return
	}
	p, err := h.svc.SetFavorite(r.Context(), id, fav)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
