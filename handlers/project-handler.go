package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohvmedezzvt/task-manager/middleware"
	"github.com/mohvmedezzvt/task-manager/models"
	"github.com/mohvmedezzvt/task-manager/repositories"
	"github.com/mohvmedezzvt/task-manager/services"
	"github.com/mohvmedezzvt/task-manager/validation"
)

type ProjectHandler struct {
	service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func projectNotFound(w http.ResponseWriter, id string) {
	writeError(w, http.StatusNotFound, fmt.Sprintf("No project with id: %s", id))
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.GetAllProjects(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": projects, "amount": len(projects)})
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	req.Name = strings.TrimSpace(req.Name)

	if verr := validation.Struct(req); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	project, err := h.service.CreateProject(r.Context(), req, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"project": project})
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["projectId"]
	projectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		projectNotFound(w, id)
		return
	}

	project, err := h.service.GetProjectByID(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			projectNotFound(w, id)
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"project": project})
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["projectId"]
	projectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		projectNotFound(w, id)
		return
	}

	var req models.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if verr := validation.Struct(req); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	project, err := h.service.UpdateProject(r.Context(), projectID, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			projectNotFound(w, id)
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"project": project})
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["projectId"]
	projectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		projectNotFound(w, id)
		return
	}

	if err := h.service.DeleteProject(r.Context(), projectID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			projectNotFound(w, id)
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Project deleted successfully"})
}

func (h *ProjectHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["projectId"]
	projectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		projectNotFound(w, id)
		return
	}

	members, err := h.service.GetMembers(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			projectNotFound(w, id)
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"members": members, "amount": len(members)})
}

func (h *ProjectHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["projectId"]
	projectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		projectNotFound(w, id)
		return
	}

	var req models.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if verr := validation.Struct(req); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	userID, _ := primitive.ObjectIDFromHex(req.UserID)
	if err := h.service.AddMember(r.Context(), projectID, userID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			projectNotFound(w, id)
		case errors.Is(err, services.ErrMemberNotFound):
			writeError(w, http.StatusNotFound, fmt.Sprintf("No user with id: %s", req.UserID))
		default:
			writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Member added successfully"})
}

func (h *ProjectHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["projectId"]
	projectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		projectNotFound(w, id)
		return
	}

	var req models.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if verr := validation.Struct(req); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	userID, _ := primitive.ObjectIDFromHex(req.UserID)
	if err := h.service.RemoveMember(r.Context(), projectID, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			projectNotFound(w, id)
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Member removed successfully"})
}
