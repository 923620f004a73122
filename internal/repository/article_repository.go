package repository

import (
	"strings"

	"github.com/kiowoji/blog-api/internal/database"
	"github.com/kiowoji/blog-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormArticleRepository is a GORM implementation of ArticleRepository
type GormArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &GormArticleRepository{db: db}
}

// Create inserts the article and increments the owner's denormalized
// article counter. Both writes commit atomically, so the counter is
// never observably out of step with the articles table.
func (r *GormArticleRepository) Create(article *models.Article) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(article).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", article.OwnerID).
			UpdateColumn("number_of_articles", gorm.Expr("number_of_articles + ?", 1)).Error
	})
}

// FindByID finds an article by ID with optional preloading
func (r *GormArticleRepository) FindByID(id string, preload ...string) (*models.Article, error) {
	var article models.Article
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&article, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// List retrieves articles matching the filter with owner and likes preloaded
func (r *GormArticleRepository) List(filter ArticleFilter) ([]models.Article, error) {
	query := r.db.Model(&models.Article{})

	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}

	var articles []models.Article
	err := query.
		Order("created_at DESC").
		Scopes(database.Paginate(filter.Pagination)).
		Preload("Owner").
		Preload("Likes").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}

	return articles, nil
}

// Update saves a modified article
func (r *GormArticleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// Delete removes the article, its like edges, and decrements the
// owner's article counter in a single transaction.
func (r *GormArticleRepository) Delete(article *models.Article) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", article.ID).Delete(&models.ArticleLike{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", article.OwnerID).
			UpdateColumn("number_of_articles", gorm.Expr("number_of_articles - ?", 1)).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Article{}, "id = ?", article.ID).Error
	})
}

// HasLike reports whether the user currently likes the article
func (r *GormArticleRepository) HasLike(articleID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ArticleLike{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddLike inserts a like edge. Two racing likes for the same pair
// collapse into one row via the conflict clause.
func (r *GormArticleRepository) AddLike(articleID, userID string) error {
	like := models.ArticleLike{
		ArticleID: articleID,
		UserID:    userID,
	}

	return r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
}

// RemoveLike deletes a like edge
func (r *GormArticleRepository) RemoveLike(articleID, userID string) error {
	return r.db.Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&models.ArticleLike{}).Error
}
