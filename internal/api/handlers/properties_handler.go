package handlers

import (
	"net/http"

	"github.com/megareality/estate/internal/api/types"
	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/internal/services"
	appErr "github.com/megareality/estate/pkg/errors"
)

type PropertiesHandler struct {
	svc services.PropertyService
}

func NewPropertiesHandler(svc services.PropertyService) *PropertiesHandler {
	return &PropertiesHandler{svc: svc}
}

// List serves GET /properties?type=&status=&location=&min_price=&max_price=.
func (h *PropertiesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.PropertyFilter{
		PropertyType: q.Get("type"),
		Status:       q.Get("status"),
		Location:     q.Get("location"),
	}
	var ok bool
	if f.MinPrice, ok = floatQuery(w, r, "min_price"); !ok {
		return
	}
	if f.MaxPrice, ok = floatQuery(w, r, "max_price"); !ok {
		return
	}
	items, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *PropertiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Property")
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

func (h *PropertiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.PropertyInput
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

func (h *PropertiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Property")
	if !ok {
		return
	}
	var in services.PropertyInput
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

func (h *PropertiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Property")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Property deleted successfully")
}

func (h *PropertiesHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Property")
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

// decodeFavorite reads {"is_favorite": bool}; the field is mandatory.
func decodeFavorite(w http.ResponseWriter, r *http.Request) (bool, bool) {
	var req types.FavoriteRequest
	if !decodeJSON(w, r, &req) {
		return false, false
	}
	if req.IsFavorite == nil {
		writeErrorStr(w, http.StatusBadRequest, appErr.CodeInvalid, "is_favorite is required")
		return false, false
	}
	return *req.IsFavorite, true
}
