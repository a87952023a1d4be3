package handlers

import (
	"net/http"

	"github.com/megareality/estate/internal/api/types"
	"github.com/megareality/estate/internal/services"
)

type AdminsHandler struct {
	svc services.AdminService
}

func NewAdminsHandler(svc services.AdminService) *AdminsHandler {
	return &AdminsHandler{svc: svc}
}

func (h *AdminsHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   res.ExpiresAt,
		Admin: types.AdminSummary{
			ID:    res.Admin.ID,
			Name:  res.Admin.Name,
			Email: res.Admin.Email,
			Role:  res.Admin.Role,
		},
	})
}

func (h *AdminsHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in services.AdminInput
	if !decodeJSON(w, r, &in) {
		return
	}
	a, err := h.svc.Register(r.Context(), &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *AdminsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *AdminsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Admin")
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

func (h *AdminsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Admin")
	if !ok {
		return
	}
	var in services.AdminInput
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

func (h *AdminsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Admin")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Admin deleted successfully")
}
