package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohvmedezzvt/task-manager/models"
	"github.com/mohvmedezzvt/task-manager/repositories"
	"github.com/mohvmedezzvt/task-manager/services"
)

type taskServiceFixture struct {
	service       *services.TaskService
	tasks         *repositories.MockTaskRepository
	users         *repositories.MockUserRepository
	notifications *repositories.MockNotificationRepository
}

func newTaskServiceFixture() *taskServiceFixture {
	tasks := repositories.NewMockTaskRepository()
	users := repositories.NewMockUserRepository()
	notifications := repositories.NewMockNotificationRepository()
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "notifications-cb"})

	return &taskServiceFixture{
		service:       services.NewTaskService(tasks, users, services.NewNotificationService(notifications), breaker),
		tasks:         tasks,
		users:         users,
		notifications: notifications,
	}
}

func (f *taskServiceFixture) addUser(t *testing.T, username, email string) primitive.ObjectID {
	t.Helper()
	user := &models.User{Username: username, Email: email, Password: "hash", Role: models.RoleUser}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user.ID
}

func TestCreateTaskWithoutAssigneeCreatesNoNotification(t *testing.T) {
	f := newTaskServiceFixture()

	task, err := f.service.CreateTask(context.Background(), models.CreateTaskRequest{Title: "Write spec"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Write spec", task.Title)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.Nil(t, task.AssignedTo)
	assert.Empty(t, f.notifications.All())
}

func TestCreateTaskWithAssigneeCreatesExactlyOneNotification(t *testing.T) {
	f := newTaskServiceFixture()
	userID := f.addUser(t, "johndoe", "john@example.com")

	task, err := f.service.CreateTask(context.Background(), models.CreateTaskRequest{
		Title:      "Write spec",
		AssignedTo: userID.Hex(),
	}, nil)
	require.NoError(t, err)

	require.NotNil(t, task.AssignedTo)
	assert.Equal(t, "johndoe", task.AssignedTo.Username)
	assert.Equal(t, "john@example.com", task.AssignedTo.Email)

	all := f.notifications.All()
	require.Len(t, all, 1)
	assert.Equal(t, userID, all[0].UserID)
	assert.Equal(t, "You have been assigned a new task: Write spec", all[0].Message)
}

func TestCreateTaskRoundTrip(t *testing.T) {
	f := newTaskServiceFixture()

	created, err := f.service.CreateTask(context.Background(), models.CreateTaskRequest{
		Title:       "Write spec",
		Description: "Describe the CRUD contract",
		Status:      "in progress",
	}, nil)
	require.NoError(t, err)

	fetched, err := f.service.GetTask(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.Description, fetched.Description)
	assert.Equal(t, created.Status, fetched.Status)
}

func TestUpdateTaskNotifiesAssignee(t *testing.T) {
	f := newTaskServiceFixture()
	userID := f.addUser(t, "johndoe", "john@example.com")

	created, err := f.service.CreateTask(context.Background(), models.CreateTaskRequest{
		Title:      "Write spec",
		AssignedTo: userID.Hex(),
	}, nil)
	require.NoError(t, err)

	newTitle := "Rewrite spec"
	updated, err := f.service.UpdateTask(context.Background(), created.ID, models.UpdateTaskRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Rewrite spec", updated.Title)

	all := f.notifications.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Task: Rewrite spec has been updated", all[1].Message)
}

func TestUpdateTaskWithoutAssigneeCreatesNoNotification(t *testing.T) {
	f := newTaskServiceFixture()

	created, err := f.service.CreateTask(context.Background(), models.CreateTaskRequest{Title: "Write spec"}, nil)
	require.NoError(t, err)

	newTitle := "Rewrite spec"
	_, err = f.service.UpdateTask(context.Background(), created.ID, models.UpdateTaskRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Empty(t, f.notifications.All())
}

func TestCreateTaskSucceedsWhenNotificationStoreFails(t *testing.T) {
	f := newTaskServiceFixture()
	userID := f.addUser(t, "johndoe", "john@example.com")
	f.notifications.FailCreateWith(errors.New("store down"))

	task, err := f.service.CreateTask(context.Background(), models.CreateTaskRequest{
		Title:      "Write spec",
		AssignedTo: userID.Hex(),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, task.AssignedTo)
	assert.Equal(t, "johndoe", task.AssignedTo.Username)
	assert.Empty(t, f.notifications.All())

	// The task was persisted despite the failed notification.
	fetched, err := f.service.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write spec", fetched.Title)
}

func TestUpdateTaskSucceedsWhenNotificationStoreFails(t *testing.T) {
	f := newTaskServiceFixture()
	userID := f.addUser(t, "johndoe", "john@example.com")

	created, err := f.service.CreateTask(context.Background(), models.CreateTaskRequest{
		Title:      "Write spec",
		AssignedTo: userID.Hex(),
	}, nil)
	require.NoError(t, err)
	f.notifications.FailCreateWith(errors.New("store down"))

	newTitle := "Rewrite spec"
	updated, err := f.service.UpdateTask(context.Background(), created.ID, models.UpdateTaskRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Rewrite spec", updated.Title)

	// Only the notification from the original create is stored.
	all := f.notifications.All()
	require.Len(t, all, 1)
	assert.Equal(t, "You have been assigned a new task: Write spec", all[0].Message)
}

func TestGetTaskNotFound(t *testing.T) {
	f := newTaskServiceFixture()

	_, err := f.service.GetTask(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteTaskNotFound(t *testing.T) {
	f := newTaskServiceFixture()

	err := f.service.DeleteTask(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGetTaskInProjectRejectsForeignTask(t *testing.T) {
	f := newTaskServiceFixture()
	projectA := primitive.NewObjectID()
	projectB := primitive.NewObjectID()

	created, err := f.service.CreateTask(context.Background(), models.CreateTaskRequest{Title: "Write spec"}, &projectA)
	require.NoError(t, err)

	// Visible through its own project.
	_, err = f.service.GetTaskInProject(context.Background(), projectA, created.ID)
	require.NoError(t, err)

	// Invisible through another project.
	_, err = f.service.GetTaskInProject(context.Background(), projectB, created.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
