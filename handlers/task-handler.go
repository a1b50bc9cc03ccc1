package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohvmedezzvt/task-manager/models"
	"github.com/mohvmedezzvt/task-manager/repositories"
	"github.com/mohvmedezzvt/task-manager/services"
	"github.com/mohvmedezzvt/task-manager/validation"
)

type TaskHandler struct {
	tasks    *services.TaskService
	projects *services.ProjectService
}

func NewTaskHandler(tasks *services.TaskService, projects *services.ProjectService) *TaskHandler {
	return &TaskHandler{tasks: tasks, projects: projects}
}

func taskNotFound(w http.ResponseWriter, id string) {
	writeError(w, http.StatusNotFound, fmt.Sprintf("No task with id: %s", id))
}

// GetAllTasks returns every task with its assignee expanded, plus a count.
func (h *TaskHandler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.GetAllTasks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks, "amount": len(tasks)})
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	h.createTask(w, r, nil)
}

func (h *TaskHandler) createTask(w http.ResponseWriter, r *http.Request, projectID *primitive.ObjectID) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	req.Title = strings.TrimSpace(req.Title)

	if verr := validation.Struct(req); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	task, err := h.tasks.CreateTask(r.Context(), req, projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"task": task})
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	taskID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		taskNotFound(w, id)
		return
	}

	task, err := h.tasks.GetTask(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			taskNotFound(w, id)
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	taskID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		taskNotFound(w, id)
		return
	}

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if verr := validation.Struct(req); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	task, err := h.tasks.UpdateTask(r.Context(), taskID, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			taskNotFound(w, id)
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

// DeleteTask responds with a plain JSON string on success. The asymmetry with
// the object-shaped responses elsewhere is part of the existing client
// contract.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	taskID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		taskNotFound(w, id)
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), taskID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			taskNotFound(w, id)
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, "Task deleted successfully")
}

// projectFromRequest resolves the {projectId} path variable to an existing
// project, writing the 404 itself when it cannot.
func (h *TaskHandler) projectFromRequest(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id := mux.Vars(r)["projectId"]
	projectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		projectNotFound(w, id)
		return primitive.NilObjectID, false
	}
	if _, err := h.projects.GetProjectByID(r.Context(), projectID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			projectNotFound(w, id)
		} else {
			writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		}
		return primitive.NilObjectID, false
	}
	return projectID, true
}

func (h *TaskHandler) ListProjectTasks(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.projectFromRequest(w, r)
	if !ok {
		return
	}

	tasks, err := h.tasks.GetTasksByProject(r.Context(), projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks, "amount": len(tasks)})
}

func (h *TaskHandler) CreateProjectTask(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.projectFromRequest(w, r)
	if !ok {
		return
	}
	h.createTask(w, r, &projectID)
}

func (h *TaskHandler) GetProjectTask(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.projectFromRequest(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["taskId"]
	taskID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		taskNotFound(w, id)
		return
	}

	task, err := h.tasks.GetTaskInProject(r.Context(), projectID, taskID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			taskNotFound(w, id)
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

func (h *TaskHandler) UpdateProjectTask(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.projectFromRequest(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["taskId"]
	taskID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		taskNotFound(w, id)
		return
	}

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if verr := validation.Struct(req); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	task, err := h.tasks.UpdateTaskInProject(r.Context(), projectID, taskID, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			taskNotFound(w, id)
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

func (h *TaskHandler) DeleteProjectTask(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.projectFromRequest(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["taskId"]
	taskID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		taskNotFound(w, id)
		return
	}

	if err := h.tasks.DeleteTaskInProject(r.Context(), projectID, taskID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			taskNotFound(w, id)
			return
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	writeJSON(w, http.StatusOK, "Task deleted successfully")
}
