package dto

import (
	"time"

	"github.com/kiowoji/blog-api/internal/models"
)

// UserDTO is the public projection of a user used in list responses
// and when an owner is joined into an article.
type UserDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
}

// ArticleSummaryDTO is the minimal article projection embedded in a
// user detail response.
type ArticleSummaryDTO struct {
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	CreatedAt time.Time `json:"created_at"`
}

// UserDetailDTO represents a single user with their owned articles.
type UserDetailDTO struct {
	ID               string              `json:"id"`
	FirstName        string              `json:"firstName"`
	LastName         string              `json:"lastName"`
	FullName         string              `json:"fullName"`
	Email            string              `json:"email"`
	Role             models.UserRole     `json:"role,omitempty"`
	Age              int                 `json:"age"`
	NumberOfArticles int                 `json:"numberOfArticles"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	Articles         []ArticleSummaryDTO `json:"articles"`
}

// ToUserDTO converts a User model to its public projection
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Age:      user.Age,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}

// ToUserDetailDTO converts a user with preloaded articles to the detail projection
func ToUserDetailDTO(user models.User) UserDetailDTO {
	articles := make([]ArticleSummaryDTO, len(user.Articles))
	for i, article := range user.Articles {
		articles[i] = ArticleSummaryDTO{
			Title:     article.Title,
			Subtitle:  article.Subtitle,
			CreatedAt: article.CreatedAt,
		}
	}

	return UserDetailDTO{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		FullName:         user.FullName,
		Email:            user.Email,
		Role:             user.Role,
		Age:              user.Age,
		NumberOfArticles: user.NumberOfArticles,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
		Articles:         articles,
	}
}
