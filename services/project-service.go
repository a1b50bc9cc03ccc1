package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohvmedezzvt/task-manager/models"
	"github.com/mohvmedezzvt/task-manager/repositories"
)

// ErrMemberNotFound is returned when the user referenced by a membership
// operation does not exist.
var ErrMemberNotFound = errors.New("member user not found")

type ProjectService struct {
	projects repositories.ProjectRepository
	users    repositories.UserRepository
}

func NewProjectService(projects repositories.ProjectRepository, users repositories.UserRepository) *ProjectService {
	return &ProjectService{projects: projects, users: users}
}

// CreateProject stores a validated project. The creator is recorded and
// becomes the first member.
func (s *ProjectService) CreateProject(ctx context.Context, req models.CreateProjectRequest, creatorID primitive.ObjectID) (*models.Project, error) {
	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   creatorID,
		Members:     []primitive.ObjectID{creatorID},
		CreatedAt:   time.Now(),
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	return s.projects.GetAll(ctx)
}

func (s *ProjectService) GetProjectByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id primitive.ObjectID, req models.UpdateProjectRequest) (*models.Project, error) {
	return s.projects.Update(ctx, id, models.ProjectUpdate{Name: req.Name, Description: req.Description})
}

func (s *ProjectService) DeleteProject(ctx context.Context, id primitive.ObjectID) error {
	return s.projects.Delete(ctx, id)
}

// GetMembers expands the member references to the {id, username, email}
// projection.
func (s *ProjectService) GetMembers(ctx context.Context, projectID primitive.ObjectID) ([]models.Member, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	users, err := s.users.GetByIDs(ctx, project.Members)
	if err != nil {
		return nil, err
	}

	members := make([]models.Member, 0, len(users))
	for _, user := range users {
		members = append(members, models.Member{ID: user.ID, Username: user.Username, Email: user.Email})
	}
	return members, nil
}

// AddMember adds an existing user to the project member list.
func (s *ProjectService) AddMember(ctx context.Context, projectID, userID primitive.ObjectID) error {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return s.projects.AddMember(ctx, projectID, userID)
}

func (s *ProjectService) RemoveMember(ctx context.Context, projectID, userID primitive.ObjectID) error {
	return s.projects.RemoveMember(ctx, projectID, userID)
}
