package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiowoji/blog-api/internal/dto"
	apierrors "github.com/kiowoji/blog-api/internal/errors"
	"github.com/kiowoji/blog-api/internal/repository"
	"github.com/kiowoji/blog-api/internal/services"
	"github.com/kiowoji/blog-api/internal/utils"
)

type ArticleHandler struct {
	articleService *services.ArticleService
}

func NewArticleHandler(articleService *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ArticleRequest is the request body for creating and updating
// articles. On update, OwnerID is an authorization claim only.
type ArticleRequest struct {
	Title       string `json:"title" binding:"required"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Category    string `json:"category"`
	OwnerID     string `json:"ownerId" binding:"required"`
}

// ListArticles returns articles filtered by an optional title substring,
// paginated by page/limit
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	filter := repository.ArticleFilter{
		Title:      c.Query("title"),
		Pagination: utils.GetPaginationParams(c),
	}

	articles, err := h.articleService.ListArticles(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch articles")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Articles retrieved successfully",
		"data":    dto.ToArticleListResponse(articles, filter.Pagination),
	})
}

// GetArticle returns a single article with its owner joined
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetArticle(c.Param("articleId"))
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			apierrors.NotFound(c, "Article not found.")
			return
		}
		apierrors.InternalError(c, "Failed to fetch article")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Article retrieved successfully",
		"data":    dto.ToArticleDTO(*article),
	})
}

// CreateArticle creates an article for an existing owner
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	article, err := h.articleService.CreateArticle(services.ArticleInput{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Category:    req.Category,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		if errors.Is(err, services.ErrOwnerNotFound) {
			apierrors.NotFound(c, "Owner not found.")
			return
		}
		apierrors.InternalError(c, "Failed to create article")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Article created successfully",
		"data":    dto.ToArticleDTO(*article),
	})
}

// UpdateArticle updates the content fields of an article. Ownership is
// checked against the ownerId in the body and never reassigned.
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	article, err := h.articleService.UpdateArticle(c.Param("articleId"), services.ArticleInput{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Category:    req.Category,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrArticleNotFound):
			apierrors.NotFound(c, "Article not found.")
		case errors.Is(err, services.ErrOwnerNotFound):
			apierrors.NotFound(c, "Owner not found.")
		case errors.Is(err, services.ErrNotArticleOwner):
			apierrors.Forbidden(c, "You do not have permission to update this article.")
		default:
			apierrors.InternalError(c, "Failed to update article")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Article updated successfully",
		"data":    dto.ToArticleDTO(*article),
	})
}

// DeleteArticle removes an article along with its like edges and
// decrements the owner's article counter
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articleService.DeleteArticle(c.Param("articleId")); err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			apierrors.NotFound(c, "Article not found.")
			return
		}
		apierrors.InternalError(c, "Failed to delete article")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Article deleted successfully",
	})
}

// ToggleLike likes or unlikes an article for a user depending on the
// current state. The response is sent only after the write persisted.
func (h *ArticleHandler) ToggleLike(c *gin.Context) {
	liked, err := h.articleService.ToggleLike(c.Param("articleId"), c.Param("userId"))
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) || errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User or article not found.")
			return
		}
		apierrors.InternalError(c, "Failed to toggle like")
		return
	}

	message := "Article unliked successfully."
	if liked {
		message = "Article liked successfully."
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    gin.H{"liked": liked},
	})
}
