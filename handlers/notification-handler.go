package handlers

import (
	"net/http"

	"github.com/mohvmedezzvt/task-manager/middleware"
	"github.com/mohvmedezzvt/task-manager/services"
)

type NotificationHandler struct {
	service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications returns the caller's notifications, newest first.
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	notifications, err := h.service.ListForUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": notifications, "amount": len(notifications)})
}
