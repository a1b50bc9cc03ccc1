package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/mohvmedezzvt/task-manager/models"
	"github.com/mohvmedezzvt/task-manager/repositories"
	"github.com/mohvmedezzvt/task-manager/utils"
)

var (
	ErrUsernameTaken      = errors.New("user with username already exists")
	ErrEmailTaken         = errors.New("user with email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserService struct {
	users repositories.UserRepository
	jwt   *utils.JWTManager
}

func NewUserService(users repositories.UserRepository, jwt *utils.JWTManager) *UserService {
	return &UserService{users: users, jwt: jwt}
}

// Register hashes the password and stores the user with the default role.
// Username and email uniqueness are checked against the collection first.
func (s *UserService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, error) {
	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	}
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues an auth token carrying {id, role}.
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.GenerateToken(user.ID.Hex(), user.Role)
}

func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile applies a validated partial update, re-checking uniqueness
// for any field that changes.
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, req models.UpdateUserRequest) (*models.User, error) {
	if req.Username != nil {
		if existing, err := s.users.GetByUsername(ctx, *req.Username); err == nil && existing.ID != id {
			return nil, ErrUsernameTaken
		}
	}
	if req.Email != nil {
		if existing, err := s.users.GetByEmail(ctx, *req.Email); err == nil && existing.ID != id {
			return nil, ErrEmailTaken
		}
	}
	return s.users.Update(ctx, id, models.UserUpdate{Username: req.Username, Email: req.Email})
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.users.Delete(ctx, id)
}
