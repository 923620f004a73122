package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Article struct {
	ID          string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex" json:"slug"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Subtitle    string    `gorm:"type:varchar(255)" json:"subtitle"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"type:varchar(100)" json:"category"`
	OwnerID     string    `gorm:"type:varchar(36);not null;index" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Owner User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Likes []ArticleLike `gorm:"foreignKey:ArticleID" json:"likes,omitempty"`
}

// BeforeCreate assigns a UUID and derives the slug from the title.
// A short random suffix keeps slugs unique across same-titled articles.
func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Slug == "" {
		a.Slug = slug.Make(a.Title) + "-" + a.ID[:8]
	}
	return nil
}
