package handlers

import (
	"net/http"

	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/internal/services"
)

type AgentsHandler struct {
	svc services.AgentService
}

func NewAgentsHandler(svc services.AgentService) *AgentsHandler {
	return &AgentsHandler{svc: svc}
}

func (h *AgentsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), repository.AgentFilter{Name: r.URL.Query().Get("name")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *AgentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Agent")
	if !ok {
		return
	}
	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *AgentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.AgentInput
	if !decodeJSON(w, r, &in) {
		return
	}
	a, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *AgentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Agent")
	if !ok {
		return
	}
	var in services.AgentInput
	if !decodeJSON(w, r, &in) {
		return
	}
	a, err := h.svc.Update(r.Context(), id, &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *AgentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Agent")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Agent deleted successfully")
}

func (h *AgentsHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Agent")
	if !ok {
		return
	}
	fav, ok := decodeFavorite(w, r)
	if !ok {
		return
	}
	a, err := h.svc.SetFavorite(r.Context(), id, fav)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
