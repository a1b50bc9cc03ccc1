// Package repositories defines the data-access interfaces and their MongoDB
// implementations. The document store owns all authoritative state; the
// application keeps none of its own.
package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohvmedezzvt/task-manager/models"
)

// ErrNotFound is returned when no document matches the given id.
var ErrNotFound = errors.New("document not found")

type TaskRepository interface {
	GetAll(ctx context.Context) ([]models.Task, error)
	GetByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Task, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	// Update applies the non-nil fields and returns the updated document.
	Update(ctx context.Context, id primitive.ObjectID, update models.TaskUpdate) (*models.Task, error)
	// Delete removes the task and returns the deleted document.
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProjectRepository interface {
	GetAll(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, id primitive.ObjectID, update models.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddMember(ctx context.Context, projectID, userID primitive.ObjectID) error
	RemoveMember(ctx context.Context, projectID, userID primitive.ObjectID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error)
}
