package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/require"

	"github.com/mohvmedezzvt/task-manager/handlers"
	"github.com/mohvmedezzvt/task-manager/middleware"
	"github.com/mohvmedezzvt/task-manager/models"
	"github.com/mohvmedezzvt/task-manager/repositories"
	"github.com/mohvmedezzvt/task-manager/services"
	"github.com/mohvmedezzvt/task-manager/utils"
)

// fixture wires the real router and services onto in-memory repositories.
type fixture struct {
	router        *mux.Router
	tasks         *repositories.MockTaskRepository
	users         *repositories.MockUserRepository
	projects      *repositories.MockProjectRepository
	notifications *repositories.MockNotificationRepository
	jwt           *utils.JWTManager
}

func newFixture() *fixture {
	tasks := repositories.NewMockTaskRepository()
	users := repositories.NewMockUserRepository()
	projects := repositories.NewMockProjectRepository()
	notifications := repositories.NewMockNotificationRepository()

	jwtManager := utils.NewJWTManager("test-secret")
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "notifications-cb", Timeout: time.Second})

	notificationService := services.NewNotificationService(notifications)
	taskService := services.NewTaskService(tasks, users, notificationService, breaker)
	userService := services.NewUserService(users, jwtManager)
	projectService := services.NewProjectService(projects, users)

	router := handlers.NewRouter(handlers.RouterConfig{
		Tasks:         handlers.NewTaskHandler(taskService, projectService),
		Projects:      handlers.NewProjectHandler(projectService),
		Users:         handlers.NewUserHandler(userService),
		Login:         handlers.NewLoginHandler(userService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Auth:          middleware.JWTAuth(jwtManager),
	})

	return &fixture{
		router:        router,
		tasks:         tasks,
		users:         users,
		projects:      projects,
		notifications: notifications,
		jwt:           jwtManager,
	}
}

func (f *fixture) addUser(t *testing.T, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: email, Password: "hash", Role: models.RoleUser}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func (f *fixture) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := f.jwt.GenerateToken(user.ID.Hex(), user.Role)
	require.NoError(t, err)
	return token
}

// do performs a request against the router. An empty token leaves the
// Authorization header off.
func (f *fixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
