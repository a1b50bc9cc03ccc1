package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	Role     string             `bson:"role" json:"role"`
}

// UserUpdate carries the optional profile fields of a PATCH request.
// Nil means "leave unchanged".
type UserUpdate struct {
	Username *string
	Email    *string
}
