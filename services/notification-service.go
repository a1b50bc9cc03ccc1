package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohvmedezzvt/task-manager/models"
	"github.com/mohvmedezzvt/task-manager/repositories"
)

type NotificationService struct {
	notifications repositories.NotificationRepository
}

func NewNotificationService(notifications repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) Create(ctx context.Context, userID primitive.ObjectID, message string) error {
	notification := &models.Notification{
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
	}
	return s.notifications.Create(ctx, notification)
}

func (s *NotificationService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	return s.notifications.GetByUser(ctx, userID)
}
