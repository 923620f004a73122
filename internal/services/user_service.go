package services

import (
	"errors"
	"fmt"

	"github.com/kiowoji/blog-api/internal/models"
	"github.com/kiowoji/blog-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already exists")
)

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Role      models.UserRole
	Age       int
}

// UpdateUserInput represents input for updating a user
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Age       int
}

// ListUsers returns all users sorted by age. Any direction other than
// "desc" sorts ascending.
func (s *UserService) ListUsers(sortBy string) ([]models.User, error) {
	users, err := s.userRepo.List(sortBy == "desc")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUserWithArticles returns a user with their owned articles preloaded
func (s *UserService) GetUserWithArticles(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id, "Articles")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateUser creates a new user. FullName and the lowercased email are
// derived by the model hooks on save.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	user := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Role:      input.Role,
		Age:       input.Age,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUser updates firstName/lastName/age of an existing user.
// The load-modify-save path runs the model hooks, so FullName is
// recomputed and UpdatedAt refreshed as part of the same write.
func (s *UserService) UpdateUser(id string, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Age = input.Age

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteUser removes a user together with their articles and all like
// edges referencing either side. A missing user performs no writes.
func (s *UserService) DeleteUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return user, nil
}
