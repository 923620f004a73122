package dto

import (
	"time"

	"github.com/kiowoji/blog-api/internal/models"
	"github.com/kiowoji/blog-api/internal/utils"
)

// ArticleDTO represents an article in API responses. Owner is the
// joined public projection; LikedBy lists the IDs of users who liked
// the article.
type ArticleDTO struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	OwnerID     string    `json:"owner_id"`
	Owner       *UserDTO  `json:"owner,omitempty"`
	LikedBy     []string  `json:"likedBy,omitempty"`
	LikeCount   int       `json:"likeCount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArticleListResponse represents a paginated list of articles
type ArticleListResponse struct {
	Articles   []ArticleDTO             `json:"articles"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToArticleDTO converts an Article model to ArticleDTO
func ToArticleDTO(article models.Article) ArticleDTO {
	dto := ArticleDTO{
		ID:          article.ID,
		Slug:        article.Slug,
		Title:       article.Title,
		Subtitle:    article.Subtitle,
		Description: article.Description,
		Category:    article.Category,
		OwnerID:     article.OwnerID,
		LikeCount:   len(article.Likes),
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}

	// Include owner if preloaded
	if article.Owner.ID != "" {
		owner := ToUserDTO(article.Owner)
		dto.Owner = &owner
	}

	// Include liker IDs if preloaded
	if len(article.Likes) > 0 {
		dto.LikedBy = make([]string, len(article.Likes))
		for i, like := range article.Likes {
			dto.LikedBy[i] = like.UserID
		}
	}

	return dto
}

// ToArticleListResponse converts a slice of articles to a paginated response
func ToArticleListResponse(articles []models.Article, params utils.PaginationParams) ArticleListResponse {
	items := make([]ArticleDTO, len(articles))
	for i, article := range articles {
		items[i] = ToArticleDTO(article)
	}

	return ArticleListResponse{
		Articles: items,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
		},
	}
}
