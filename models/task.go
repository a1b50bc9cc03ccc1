package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in progress"
	StatusCompleted  TaskStatus = "completed"
)

type Task struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ProjectID   *primitive.ObjectID `bson:"projectId,omitempty" json:"projectId,omitempty"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	Status      TaskStatus          `bson:"status" json:"status"`
	AssignedTo  *primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
}

// TaskUpdate carries the optional fields of a PATCH request.
// Nil means "leave unchanged".
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	AssignedTo  *primitive.ObjectID
}

// Assignee is the allow-listed projection of a User embedded in task
// responses in place of the raw assignedTo reference.
type Assignee struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Email    string             `json:"email"`
}

// TaskView is the wire shape of a task with its assignee expanded.
type TaskView struct {
	ID          primitive.ObjectID  `json:"id"`
	ProjectID   *primitive.ObjectID `json:"projectId,omitempty"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      TaskStatus          `json:"status"`
	AssignedTo  *Assignee           `json:"assignedTo,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}
