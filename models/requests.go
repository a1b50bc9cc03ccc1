package models

// Request bodies, schema-checked by the validation package before any
// repository call. Tag order determines which rule reports first.

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=20"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Status      string `json:"status" validate:"omitempty,oneof='pending' 'in progress' 'completed'"`
	AssignedTo  string `json:"assignedTo" validate:"omitempty,objectid"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Status      *string `json:"status" validate:"omitempty,oneof='pending' 'in progress' 'completed'"`
	AssignedTo  *string `json:"assignedTo" validate:"omitempty,objectid"`
}

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type MemberRequest struct {
	UserID string `json:"userId" validate:"required,objectid"`
}
