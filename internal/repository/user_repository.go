package repository

import (
	"strings"

	"github.com/kiowoji/blog-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID with optional preloading
func (r *GormUserRepository) FindByID(id string, preload ...string) (*models.User, error) {
	var user models.User
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Exists reports whether a user with the given ID exists
func (r *GormUserRepository) Exists(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByEmail finds a user by email (emails are stored lowercased)
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves all users sorted by age
func (r *GormUserRepository) List(sortDesc bool) ([]models.User, error) {
	order := "age ASC"
	if sortDesc {
		order = "age DESC"
	}

	var users []models.User
	if err := r.db.Order(order).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update saves a modified user. Save goes through the model hooks so
// FullName stays derived from FirstName/LastName.
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user and all dependent data in a transaction:
// the user's own like edges, the like edges on articles the user
// owns, the owned articles, and finally the user record.
func (r *GormUserRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.ArticleLike{}).Error; err != nil {
			return err
		}

		ownedArticles := tx.Model(&models.Article{}).Select("id").Where("owner_id = ?", id)
		if err := tx.Where("article_id IN (?)", ownedArticles).Delete(&models.ArticleLike{}).Error; err != nil {
			return err
		}

		if err := tx.Where("owner_id = ?", id).Delete(&models.Article{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.User{}).Error
	})
}
