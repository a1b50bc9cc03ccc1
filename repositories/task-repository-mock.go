package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohvmedezzvt/task-manager/models"
)

// MockTaskRepository is an in-memory TaskRepository used by tests.
type MockTaskRepository struct {
	mu    sync.RWMutex
	tasks map[primitive.ObjectID]models.Task
}

func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{tasks: make(map[primitive.ObjectID]models.Task)}
}

func (r *MockTaskRepository) GetAll(ctx context.Context) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]models.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (r *MockTaskRepository) GetByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := []models.Task{}
	for _, t := range r.tasks {
		if t.ProjectID != nil && *t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (r *MockTaskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &task, nil
}

func (r *MockTaskRepository) Create(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	r.tasks[task.ID] = *task
	return nil
}

func (r *MockTaskRepository) Update(ctx context.Context, id primitive.ObjectID, update models.TaskUpdate) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.AssignedTo != nil {
		task.AssignedTo = update.AssignedTo
	}
	r.tasks[id] = task
	return &task, nil
}

func (r *MockTaskRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.tasks, id)
	return &task, nil
}
