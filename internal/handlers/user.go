package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiowoji/blog-api/internal/dto"
	apierrors "github.com/kiowoji/blog-api/internal/errors"
	"github.com/kiowoji/blog-api/internal/models"
	"github.com/kiowoji/blog-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers returns all users projected to id/fullName/email/age,
// sorted by age. sortBy=desc sorts descending; anything else ascending.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.DefaultQuery("sortBy", "asc"))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully retrieved users",
		"data":    dto.ToUserDTOs(users),
	})
}

// GetUser returns a single user with their owned articles joined
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUserWithArticles(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found.")
			return
		}
		apierrors.InternalError(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully retrieved user",
		"data":    dto.ToUserDetailDTO(*user),
	})
}

// CreateUser creates a new user
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		FirstName string          `json:"firstName" binding:"required,min=4,max=50"`
		LastName  string          `json:"lastName" binding:"required,min=3,max=60"`
		Email     string          `json:"email" binding:"required,email"`
		Role      models.UserRole `json:"role" binding:"omitempty,oneof=admin writer guest"`
		Age       int             `json:"age" binding:"lte=99"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
		Age:       req.Age,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			apierrors.Conflict(c, "Email already exists.")
			return
		}
		apierrors.InternalError(c, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"data":    user,
	})
}

// UpdateUser updates firstName/lastName/age; fullName and updatedAt
// are refreshed as part of the same write
func (h *UserHandler) UpdateUser(c *gin.Context) {
	type UpdateUserRequest struct {
		FirstName string `json:"firstName" binding:"required,min=4,max=50"`
		LastName  string `json:"lastName" binding:"required,min=3,max=60"`
		Age       int    `json:"age" binding:"lte=99"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(c.Param("id"), services.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found.")
			return
		}
		apierrors.InternalError(c, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully.",
		"data":    user,
	})
}

// DeleteUser removes a user and cascades to their articles and likes
func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, err := h.userService.DeleteUser(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found.")
			return
		}
		apierrors.InternalError(c, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted successfully.",
		"data":    user,
	})
}
