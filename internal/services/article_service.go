package services

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/kiowoji/blog-api/internal/models"
	"github.com/kiowoji/blog-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrOwnerNotFound   = errors.New("owner not found")
	ErrNotArticleOwner = errors.New("user does not have permission to update this article")
)

// ArticleService handles article business logic
type ArticleService struct {
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
}

// NewArticleService creates a new ArticleService
func NewArticleService(articleRepo repository.ArticleRepository, userRepo repository.UserRepository) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

// ArticleInput represents input for creating or updating an article
type ArticleInput struct {
	Title       string
	Subtitle    string
	Description string
	Category    string
	OwnerID     string
}

// ListArticles returns articles matching the filter with owners joined
func (s *ArticleService) ListArticles(filter repository.ArticleFilter) ([]models.Article, error) {
	articles, err := s.articleRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

// GetArticle returns an article with owner and likes preloaded
func (s *ArticleService) GetArticle(id string) (*models.Article, error) {
	article, err := s.articleRepo.FindByID(id, "Owner", "Likes")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	return article, nil
}

// CreateArticle creates an article for an existing owner. The insert
// and the owner's counter increment commit in one transaction.
func (s *ArticleService) CreateArticle(input ArticleInput) (*models.Article, error) {
	exists, err := s.userRepo.Exists(input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify owner: %w", err)
	}
	if !exists {
		return nil, ErrOwnerNotFound
	}

	article := &models.Article{
		Title:       input.Title,
		Subtitle:    input.Subtitle,
		Description: input.Description,
		Category:    input.Category,
		OwnerID:     input.OwnerID,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return s.articleRepo.FindByID(article.ID, "Owner")
}

// UpdateArticle updates the content fields of an article. The supplied
// OwnerID is an authorization claim only; ownership is never reassigned.
func (s *ArticleService) UpdateArticle(id string, input ArticleInput) (*models.Article, error) {
	article, err := s.articleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	exists, err := s.userRepo.Exists(input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify owner: %w", err)
	}
	if !exists {
		return nil, ErrOwnerNotFound
	}

	if article.OwnerID != input.OwnerID {
		return nil, ErrNotArticleOwner
	}

	article.Title = input.Title
	article.Subtitle = input.Subtitle
	article.Description = input.Description
	article.Category = input.Category
	article.Slug = slug.Make(input.Title) + "-" + article.ID[:8]

	if err := s.articleRepo.Update(article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	return s.articleRepo.FindByID(article.ID, "Owner")
}

// DeleteArticle removes an article, its like edges, and decrements the
// owner's counter. A missing article performs no writes.
func (s *ArticleService) DeleteArticle(id string) error {
	article, err := s.articleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("failed to find article: %w", err)
	}

	if err := s.articleRepo.Delete(article); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	return nil
}

// ToggleLike likes the article when no edge exists for the pair and
// unlikes it otherwise. It returns the resulting liked state after the
// write has been persisted.
func (s *ArticleService) ToggleLike(articleID, userID string) (bool, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, fmt.Errorf("failed to find user: %w", err)
	}

	if _, err := s.articleRepo.FindByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrArticleNotFound
		}
		return false, fmt.Errorf("failed to find article: %w", err)
	}

	liked, err := s.articleRepo.HasLike(articleID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	if liked {
		if err := s.articleRepo.RemoveLike(articleID, userID); err != nil {
			return false, fmt.Errorf("failed to unlike article: %w", err)
		}
		return false, nil
	}

	if err := s.articleRepo.AddLike(articleID, userID); err != nil {
		return false, fmt.Errorf("failed to like article: %w", err)
	}
	return true, nil
}
