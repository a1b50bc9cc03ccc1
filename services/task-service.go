package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohvmedezzvt/task-manager/logging"
	"github.com/mohvmedezzvt/task-manager/models"
	"github.com/mohvmedezzvt/task-manager/repositories"
)

type TaskService struct {
	tasks         repositories.TaskRepository
	users         repositories.UserRepository
	notifications *NotificationService
	notifyBreaker *gobreaker.CircuitBreaker
}

func NewTaskService(
	tasks repositories.TaskRepository,
	users repositories.UserRepository,
	notifications *NotificationService,
	notifyBreaker *gobreaker.CircuitBreaker,
) *TaskService {
	return &TaskService{
		tasks:         tasks,
		users:         users,
		notifications: notifications,
		notifyBreaker: notifyBreaker,
	}
}

// CreateTask persists a validated task. A non-nil projectID nests the task
// under that project. If the task carries an assignee, a notification is
// created for them as a best-effort side effect.
func (s *TaskService) CreateTask(ctx context.Context, req models.CreateTaskRequest, projectID *primitive.ObjectID) (*models.TaskView, error) {
	status := models.TaskStatus(req.Status)
	if status == "" {
		status = models.StatusPending
	}

	task := &models.Task{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	if req.AssignedTo != "" {
		assigneeID, err := primitive.ObjectIDFromHex(req.AssignedTo)
		if err != nil {
			return nil, fmt.Errorf("invalid assignee ID format: %w", err)
		}
		task.AssignedTo = &assigneeID
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	if task.AssignedTo != nil {
		s.notify(ctx, *task.AssignedTo, fmt.Sprintf("You have been assigned a new task: %s", task.Title))
	}

	return s.expandOne(ctx, task)
}

// GetAllTasks returns every task with its assignee expanded.
func (s *TaskService) GetAllTasks(ctx context.Context) ([]models.TaskView, error) {
	tasks, err := s.tasks.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, tasks)
}

func (s *TaskService) GetTasksByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.TaskView, error) {
	tasks, err := s.tasks.GetByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, tasks)
}

func (s *TaskService) GetTask(ctx context.Context, id primitive.ObjectID) (*models.TaskView, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expandOne(ctx, task)
}

// GetTaskInProject fetches a task nested under a project. A task that exists
// but belongs elsewhere behaves as non-existent.
func (s *TaskService) GetTaskInProject(ctx context.Context, projectID, taskID primitive.ObjectID) (*models.TaskView, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.ProjectID == nil || *task.ProjectID != projectID {
		return nil, repositories.ErrNotFound
	}
	return s.expandOne(ctx, task)
}

// UpdateTask applies a validated partial update. If the updated task still
// carries an assignee, they get a notification about the change.
func (s *TaskService) UpdateTask(ctx context.Context, id primitive.ObjectID, req models.UpdateTaskRequest) (*models.TaskView, error) {
	update := models.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		update.Status = &status
	}
	if req.AssignedTo != nil {
		assigneeID, err := primitive.ObjectIDFromHex(*req.AssignedTo)
		if err != nil {
			return nil, fmt.Errorf("invalid assignee ID format: %w", err)
		}
		update.AssignedTo = &assigneeID
	}

	task, err := s.tasks.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	if task.AssignedTo != nil {
		s.notify(ctx, *task.AssignedTo, fmt.Sprintf("Task: %s has been updated", task.Title))
	}

	return s.expandOne(ctx, task)
}

func (s *TaskService) UpdateTaskInProject(ctx context.Context, projectID, taskID primitive.ObjectID, req models.UpdateTaskRequest) (*models.TaskView, error) {
	if _, err := s.GetTaskInProject(ctx, projectID, taskID); err != nil {
		return nil, err
	}
	return s.UpdateTask(ctx, taskID, req)
}

func (s *TaskService) DeleteTask(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.tasks.Delete(ctx, id)
	return err
}

func (s *TaskService) DeleteTaskInProject(ctx context.Context, projectID, taskID primitive.ObjectID) error {
	if _, err := s.GetTaskInProject(ctx, projectID, taskID); err != nil {
		return err
	}
	return s.DeleteTask(ctx, taskID)
}

// notify creates a notification through the circuit breaker. Failures are
// logged and never fail the surrounding request.
func (s *TaskService) notify(ctx context.Context, userID primitive.ObjectID, message string) {
	_, err := s.notifyBreaker.Execute(func() (interface{}, error) {
		return nil, s.notifications.Create(ctx, userID, message)
	})
	if err != nil {
		logging.Logger.Warnf("Event ID: NOTIFICATION_CREATE_FAILED, Description: Failed to create notification for user %s: %v", userID.Hex(), err)
	}
}

// expand replaces assignedTo references with the {id, username, email}
// projection of the referenced users. Passwords never leave this layer.
func (s *TaskService) expand(ctx context.Context, tasks []models.Task) ([]models.TaskView, error) {
	ids := []primitive.ObjectID{}
	seen := map[primitive.ObjectID]bool{}
	for _, task := range tasks {
		if task.AssignedTo != nil && !seen[*task.AssignedTo] {
			seen[*task.AssignedTo] = true
			ids = append(ids, *task.AssignedTo)
		}
	}

	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := map[primitive.ObjectID]models.User{}
	for _, user := range users {
		byID[user.ID] = user
	}

	views := make([]models.TaskView, 0, len(tasks))
	for _, task := range tasks {
		view := models.TaskView{
			ID:          task.ID,
			ProjectID:   task.ProjectID,
			Title:       task.Title,
			Description: task.Description,
			Status:      task.Status,
			CreatedAt:   task.CreatedAt,
		}
		if task.AssignedTo != nil {
			if user, ok := byID[*task.AssignedTo]; ok {
				view.AssignedTo = &models.Assignee{ID: user.ID, Username: user.Username, Email: user.Email}
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *TaskService) expandOne(ctx context.Context, task *models.Task) (*models.TaskView, error) {
	views, err := s.expand(ctx, []models.Task{*task})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}
