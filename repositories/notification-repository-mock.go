package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohvmedezzvt/task-manager/models"
)

// MockNotificationRepository is an in-memory NotificationRepository used by
// tests.
type MockNotificationRepository struct {
	mu            sync.RWMutex
	notifications []models.Notification
	createErr     error
}

func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{notifications: []models.Notification{}}
}

// FailCreateWith makes every subsequent Create return err. Pass nil to
// restore normal behavior.
func (r *MockNotificationRepository) FailCreateWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createErr = err
}

func (r *MockNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *MockNotificationRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notifications := []models.Notification{}
	for _, n := range r.notifications {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

// All returns every stored notification regardless of user.
func (r *MockNotificationRepository) All() []models.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}
