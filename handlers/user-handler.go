package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mohvmedezzvt/task-manager/middleware"
	"github.com/mohvmedezzvt/task-manager/models"
	"github.com/mohvmedezzvt/task-manager/repositories"
	"github.com/mohvmedezzvt/task-manager/services"
	"github.com/mohvmedezzvt/task-manager/validation"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if verr := validation.Struct(req); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"user": user})
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.service.GetByID(r.Context(), authUser.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User no longer exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if verr := validation.Struct(req); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), authUser.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repositories.ErrNotFound):
			writeError(w, http.StatusNotFound, "User no longer exists")
		default:
			writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), authUser.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User no longer exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Account deleted successfully"})
}
