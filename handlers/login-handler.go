package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mohvmedezzvt/task-manager/models"
	"github.com/mohvmedezzvt/task-manager/services"
	"github.com/mohvmedezzvt/task-manager/validation"
)

type LoginHandler struct {
	service *services.UserService
}

func NewLoginHandler(service *services.UserService) *LoginHandler {
	return &LoginHandler{service: service}
}

// Login checks presence and format only; password complexity is enforced at
// registration, not here.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if verr := validation.Struct(req); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
