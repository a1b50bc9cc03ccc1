package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohvmedezzvt/task-manager/models"
)

// MockProjectRepository is an in-memory ProjectRepository used by tests.
type MockProjectRepository struct {
	mu       sync.RWMutex
	projects map[primitive.ObjectID]models.Project
}

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{projects: make(map[primitive.ObjectID]models.Project)}
}

func (r *MockProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]models.Project, 0, len(r.projects))
	for _, p := range r.projects {
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *MockProjectRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &project, nil
}

func (r *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	r.projects[project.ID] = *project
	return nil
}

func (r *MockProjectRepository) Update(ctx context.Context, id primitive.ObjectID, update models.ProjectUpdate) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	r.projects[id] = project
	return &project, nil
}

func (r *MockProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *MockProjectRepository) AddMember(ctx context.Context, projectID, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[projectID]
	if !ok {
		return ErrNotFound
	}
	for _, member := range project.Members {
		if member == userID {
			return nil
		}
	}
	project.Members = append(project.Members, userID)
	r.projects[projectID] = project
	return nil
}

func (r *MockProjectRepository) RemoveMember(ctx context.Context, projectID, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[projectID]
	if !ok {
		return ErrNotFound
	}
	members := project.Members[:0]
	for _, member := range project.Members {
		if member != userID {
			members = append(members, member)
		}
	}
	project.Members = members
	r.projects[projectID] = project
	return nil
}
