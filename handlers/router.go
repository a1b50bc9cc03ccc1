package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouterConfig bundles the handlers and the auth middleware for NewRouter.
type RouterConfig struct {
	Tasks         *TaskHandler
	Projects      *ProjectHandler
	Users         *UserHandler
	Login         *LoginHandler
	Notifications *NotificationHandler
	Auth          func(http.Handler) http.Handler
}

// NewRouter builds the /api/v1 route table. Task reads are public; task
// creation, the user profile, notifications and everything under /projects
// require a bearer token.
func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/users/register", cfg.Users.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", cfg.Login.Login).Methods(http.MethodPost)
	api.Handle("/users/me", cfg.Auth(http.HandlerFunc(cfg.Users.Me))).Methods(http.MethodGet)
	api.Handle("/users/me", cfg.Auth(http.HandlerFunc(cfg.Users.UpdateMe))).Methods(http.MethodPatch)
	api.Handle("/users/me", cfg.Auth(http.HandlerFunc(cfg.Users.DeleteMe))).Methods(http.MethodDelete)

	api.Handle("/notifications", cfg.Auth(http.HandlerFunc(cfg.Notifications.ListNotifications))).Methods(http.MethodGet)

	api.HandleFunc("/tasks", cfg.Tasks.GetAllTasks).Methods(http.MethodGet)
	api.Handle("/tasks", cfg.Auth(http.HandlerFunc(cfg.Tasks.CreateTask))).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{id}", cfg.Tasks.GetTask).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{id}", cfg.Tasks.UpdateTask).Methods(http.MethodPatch)
	api.HandleFunc("/tasks/{id}", cfg.Tasks.DeleteTask).Methods(http.MethodDelete)

	projects := api.PathPrefix("/projects").Subrouter()
	projects.Use(mux.MiddlewareFunc(cfg.Auth))
	projects.HandleFunc("", cfg.Projects.ListProjects).Methods(http.MethodGet)
	projects.HandleFunc("", cfg.Projects.CreateProject).Methods(http.MethodPost)
	projects.HandleFunc("/{projectId}", cfg.Projects.GetProject).Methods(http.MethodGet)
	projects.HandleFunc("/{projectId}", cfg.Projects.UpdateProject).Methods(http.MethodPatch)
	projects.HandleFunc("/{projectId}", cfg.Projects.DeleteProject).Methods(http.MethodDelete)
	projects.HandleFunc("/{projectId}/members", cfg.Projects.GetMembers).Methods(http.MethodGet)
	projects.HandleFunc("/{projectId}/members", cfg.Projects.AddMember).Methods(http.MethodPost)
	projects.HandleFunc("/{projectId}/members", cfg.Projects.RemoveMember).Methods(http.MethodDelete)
	projects.HandleFunc("/{projectId}/tasks", cfg.Tasks.ListProjectTasks).Methods(http.MethodGet)
	projects.HandleFunc("/{projectId}/tasks", cfg.Tasks.CreateProjectTask).Methods(http.MethodPost)
	projects.HandleFunc("/{projectId}/tasks/{taskId}", cfg.Tasks.GetProjectTask).Methods(http.MethodGet)
	projects.HandleFunc("/{projectId}/tasks/{taskId}", cfg.Tasks.UpdateProjectTask).Methods(http.MethodPatch)
	projects.HandleFunc("/{projectId}/tasks/{taskId}", cfg.Tasks.DeleteProjectTask).Methods(http.MethodDelete)

	return r
}
