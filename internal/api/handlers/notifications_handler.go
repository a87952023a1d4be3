package handlers

import (
	"net/http"

	"github.com/megareality/estate/internal/api/types"
	"github.com/megareality/estate/internal/services"
)

type NotificationsHandler struct {
	svc services.NotificationService
}

func NewNotificationsHandler(svc services.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{svc: svc}
}

func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Notification")
	if !ok {
		return
	}
	n, err := h.svc.MarkRead(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *NotificationsHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MarkAllRead(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "All notifications marked as read")
}

func (h *NotificationsHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.UnreadCount(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.CountResponse{Count: n})
}
