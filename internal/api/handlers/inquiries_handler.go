package handlers

import (
	"net/http"

	"github.com/megareality/estate/internal/api/types"
	"github.com/megareality/estate/internal/services"
)

type InquiriesHandler struct {
	svc services.InquiryService
}

func NewInquiriesHandler(svc services.InquiryService) *InquiriesHandler {
	return &InquiriesHandler{svc: svc}
}

// Create is the public contact form endpoint.
func (h *InquiriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.InquiryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	q, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.InquiryCreatedResponse{ID: q.ID, Message: "Inquiry submitted successfully"})
}

func (h *InquiriesHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *InquiriesHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Inquiry")
	if !ok {
		return
	}
	var req types.InquiryStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	q, err := h.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *InquiriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Inquiry")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Inquiry deleted successfully")
}
