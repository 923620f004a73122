package repository

import (
	"github.com/kiowoji/blog-api/internal/models"
	"github.com/kiowoji/blog-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID with optional preloading
	FindByID(id string, preload ...string) (*models.User, error)

	// Exists reports whether a user with the given ID exists
	Exists(id string) (bool, error)

	// FindByEmail finds a user by email (emails are stored lowercased)
	FindByEmail(email string) (*models.User, error)

	// List retrieves all users sorted by age
	List(sortDesc bool) ([]models.User, error)

	// Update saves a modified user
	Update(user *models.User) error

	// Delete removes a user together with their articles and all like
	// edges referencing either side, in a single transaction
	Delete(id string) error
}

// ArticleFilter holds filtering options for listing articles
type ArticleFilter struct {
	// Title is matched as a case-insensitive substring when non-empty
	Title      string
	Pagination utils.PaginationParams
}

// ArticleRepository defines the interface for article data access
type ArticleRepository interface {
	// Create inserts the article and increments the owner's article
	// counter in a single transaction
	Create(article *models.Article) error

	// FindByID finds an article by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Article, error)

	// List retrieves articles matching the filter with owner and likes preloaded
	List(filter ArticleFilter) ([]models.Article, error)

	// Update saves a modified article
	Update(article *models.Article) error

	// Delete removes the article, its like edges, and decrements the
	// owner's article counter in a single transaction
	Delete(article *models.Article) error

	// HasLike reports whether the user currently likes the article
	HasLike(articleID, userID string) (bool, error)

	// AddLike inserts a like edge; inserting an existing edge is a no-op
	AddLike(articleID, userID string) error

	// RemoveLike deletes a like edge
	RemoveLike(articleID, userID string) error
}
